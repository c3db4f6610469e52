package commands

import (
	"errors"
	"strings"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrSyncOrderCommandIsNotConstructed = errors.New(
	"SyncOrderCommand must be created via NewSyncOrderCommand constructor",
)

// SyncOrderCommand makes an order number available locally without starting
// a pack.
type SyncOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo string

	guard guard.ConstructorGuard
}

func NewSyncOrderCommand(orderNo string) (SyncOrderCommand, error) {
	cmd := SyncOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderNo(orderNo); err != nil {
		return SyncOrderCommand{}, err
	}

	return cmd, nil
}

func (c SyncOrderCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrderCommandIsNotConstructed)
}

func (c SyncOrderCommand) OrderNo() string {
	return c.orderNo
}

func (c *SyncOrderCommand) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order_no")
	}

	c.orderNo = orderNo
	return nil
}
