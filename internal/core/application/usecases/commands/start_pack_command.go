package commands

import (
	"errors"
	"strings"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrStartPackCommandIsNotConstructed = errors.New(
	"StartPackCommand must be created via NewStartPackCommand constructor",
)

// StartPackCommand opens packing for an order number.
//
// Example:
//
//	cmd, err := NewStartPackCommand("100234", principal)
//	packID, err := handler.Handle(ctx, cmd)
type StartPackCommand struct { //nolint:recvcheck //using for validation
	orderNo   string
	startedBy *int64

	guard guard.ConstructorGuard
}

// NewStartPackCommand trims the order number, which must not be empty.
// startedBy is optional.
func NewStartPackCommand(orderNo string, startedBy *int64) (StartPackCommand, error) {
	cmd := StartPackCommand{
		startedBy: startedBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNo(orderNo); err != nil {
		return StartPackCommand{}, err
	}

	return cmd, nil
}

func (c StartPackCommand) Validate() error {
	return c.guard.Validate(ErrStartPackCommandIsNotConstructed)
}

func (c StartPackCommand) OrderNo() string {
	return c.orderNo
}

func (c StartPackCommand) StartedBy() *int64 {
	return c.startedBy
}

func (c *StartPackCommand) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order_no")
	}

	c.orderNo = orderNo
	return nil
}
