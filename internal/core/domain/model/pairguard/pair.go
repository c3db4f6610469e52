package pairguard

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// Pair is an unordered pair of order lines, stored with the smaller id first.
type Pair struct {
	a kernel.UUID
	b kernel.UUID
}

// NewPair normalizes x and y so that NewPair(x, y) == NewPair(y, x).
func NewPair(x, y kernel.UUID) (Pair, error) {
	if err := errors.Join(x.Validate(), y.Validate()); err != nil {
		return Pair{}, err
	}
	if x.IsEqual(y) {
		return Pair{}, errs.NewValueIsInvalidError("a line cannot pair with itself")
	}
	if x.Compare(y) > 0 {
		x, y = y, x
	}
	return Pair{a: x, b: y}, nil
}

func (p Pair) A() kernel.UUID {
	return p.a
}

func (p Pair) B() kernel.UUID {
	return p.b
}

// Record remembers the box in which a pair was first co-located.
type Record struct {
	pair   Pair
	anchor kernel.UUID
}

func NewRecord(x, y, anchorBoxID kernel.UUID) (Record, error) {
	pair, err := NewPair(x, y)
	if err != nil {
		return Record{}, err
	}
	if err = anchorBoxID.Validate(); err != nil {
		return Record{}, err
	}
	return Record{pair: pair, anchor: anchorBoxID}, nil
}

func (r Record) Pair() Pair {
	return r.pair
}

// AnchorBoxID may name a box that no longer exists.
func (r Record) AnchorBoxID() kernel.UUID {
	return r.anchor
}
