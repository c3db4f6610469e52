package pairguard

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
)

var ErrPairRuleViolation = errors.New("pair rule violation")

// PairRuleViolationError is returned when two lines that already shared a box
// would be placed together in a different one. BoxNo is zero when the earlier
// box has since been deleted.
type PairRuleViolationError struct {
	ProductA string
	ProductB string
	BoxID    kernel.UUID
	BoxNo    int
}

func (e *PairRuleViolationError) Error() string {
	where := "an earlier box"
	if e.BoxNo > 0 {
		where = fmt.Sprintf("Box %d", e.BoxNo)
	}
	return fmt.Sprintf("%s: %s + %s were already packed together in %s", ErrPairRuleViolation, e.ProductA, e.ProductB, where)
}

func (e *PairRuleViolationError) Unwrap() error {
	return ErrPairRuleViolation
}
