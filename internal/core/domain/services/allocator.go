package services

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/domain/model/pairguard"
	"packing/internal/pkg/errs"
)

// Allocator is a domain service that places order-line quantities into boxes.
//
// Key responsibilities:
//   - Checking quantity limits through the pack
//   - Enforcing the pair rule across boxes of the order
//   - Recording newly co-located pairs in the order's pair index
//
// Business rules:
//   - A line never exceeds its ordered quantity across the pack
//   - Two lines share at most one box over the life of the order
//   - Nothing changes unless every check passes
//
// Example usage:
//
//	allocator := services.NewAllocator()
//	err := allocator.AssignOne(p, o, idx, boxID, lineID)
//	var violation *pairguard.PairRuleViolationError
//	if errors.As(err, &violation) {
//	    // lines were already packed together in violation.BoxNo
//	}
type Allocator struct{}

func NewAllocator() Allocator {
	return Allocator{}
}

// AssignOne adds one unit of a line to a box.
//
// Parameters:
//   - p: the pack, loaded under a row lock
//   - o: the pack's order with all lines
//   - idx: the order's pair history
//   - boxID, lineID: the target box and line
//
// Returns OverpackError, PairRuleViolationError, ErrObjectNotFound or
// ErrPackIsNotInProgress; on error none of the aggregates is changed.
func (a Allocator) AssignOne(p *pack.Pack, o *order.Order, idx *pairguard.Index, boxID, lineID kernel.UUID) error {
	line, err := a.line(p, o, idx, lineID)
	if err != nil {
		return err
	}

	box, err := p.ValidateAssignOne(boxID, line)
	if err != nil {
		return err
	}

	if err = a.enforcePairRule(p, o, idx, box, line); err != nil {
		return err
	}

	return p.AssignOne(boxID, line)
}

// SetQty sets the quantity of a line in a box. A zero quantity removes the
// item and skips the pair rule.
func (a Allocator) SetQty(p *pack.Pack, o *order.Order, idx *pairguard.Index, boxID, lineID kernel.UUID, qty int) error {
	line, err := a.line(p, o, idx, lineID)
	if err != nil {
		return err
	}

	box, err := p.ValidateSetQty(boxID, line, qty)
	if err != nil {
		return err
	}

	if qty > 0 {
		if err = a.enforcePairRule(p, o, idx, box, line); err != nil {
			return err
		}
	}

	return p.SetQty(boxID, line, qty)
}

func (a Allocator) line(p *pack.Pack, o *order.Order, idx *pairguard.Index, lineID kernel.UUID) (*order.Line, error) {
	if err := errors.Join(p.Validate(), o.Validate(), idx.Validate()); err != nil {
		return nil, err
	}
	if !p.OrderID().IsEqual(o.ID()) || !idx.OrderID().IsEqual(o.ID()) {
		return nil, errs.NewValueIsInvalidError("pack, order and pair index must belong to the same order")
	}
	return o.Line(lineID)
}

// enforcePairRule checks line against every other line already in box and, when
// all checks pass, records the new pairs with box as anchor. A line already held
// by box adds no co-location, so it passes unchecked.
func (a Allocator) enforcePairRule(p *pack.Pack, o *order.Order, idx *pairguard.Index, box *pack.Box, line *order.Line) error {
	if box.QtyOf(line.ID()) > 0 {
		return nil
	}

	mates := make([]kernel.UUID, 0)
	for _, existingID := range box.LineIDs() {
		if existingID.IsEqual(line.ID()) {
			continue
		}

		existing, err := o.Line(existingID)
		if err != nil {
			return err
		}

		if other, ok := p.BoxHoldingBoth(existingID, line.ID(), box.ID()); ok {
			return &pairguard.PairRuleViolationError{
				ProductA: existing.ProductCode(),
				ProductB: line.ProductCode(),
				BoxID:    other.ID(),
				BoxNo:    other.Number(),
			}
		}

		if anchor, ok := idx.Anchor(existingID, line.ID()); ok && !anchor.IsEqual(box.ID()) {
			violation := &pairguard.PairRuleViolationError{
				ProductA: existing.ProductCode(),
				ProductB: line.ProductCode(),
				BoxID:    anchor,
			}
			if anchorBox, err := p.Box(anchor); err == nil {
				violation.BoxNo = anchorBox.Number()
			}
			return violation
		}

		mates = append(mates, existingID)
	}

	for _, mate := range mates {
		if _, err := idx.Record(mate, line.ID(), box.ID()); err != nil {
			return err
		}
	}
	return nil
}
