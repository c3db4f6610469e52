package pairguard

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var ErrIndexIsNotConstructed = errors.New("Index must be created via NewIndex or RestoreIndex constructor")

// Index is the pair history of one order. It answers which box, if any, a pair
// of lines was first packed together in, and collects newly seen pairs until
// the repository persists them.
//
// A pair is recorded once; later records of the same pair keep the first anchor.
type Index struct {
	orderID kernel.UUID
	records map[Pair]Record
	pending []Record

	isConstructed bool
}

func NewIndex(orderID kernel.UUID) (*Index, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return &Index{
		orderID:       orderID,
		records:       make(map[Pair]Record),
		isConstructed: true,
	}, nil
}

// RestoreIndex rebuilds the history of an order from stored records.
func RestoreIndex(orderID kernel.UUID, records []Record) (*Index, error) {
	idx, err := NewIndex(orderID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if _, ok := idx.records[r.pair]; ok {
			return nil, errs.NewValueIsInvalidError("pair is recorded twice")
		}
		idx.records[r.pair] = r
	}
	return idx, nil
}

func (idx *Index) Validate() error {
	if idx == nil || !idx.isConstructed {
		return ErrIndexIsNotConstructed
	}
	return nil
}

func (idx *Index) OrderID() kernel.UUID {
	return idx.orderID
}

// Anchor returns the box in which x and y were first co-located.
func (idx *Index) Anchor(x, y kernel.UUID) (kernel.UUID, bool) {
	pair, err := NewPair(x, y)
	if err != nil {
		return kernel.UUID{}, false
	}
	r, ok := idx.records[pair]
	return r.anchor, ok
}

// Record stores the pair with boxID as anchor unless the pair is already known.
// It reports whether a new record was added.
func (idx *Index) Record(x, y, boxID kernel.UUID) (bool, error) {
	r, err := NewRecord(x, y, boxID)
	if err != nil {
		return false, err
	}
	if _, ok := idx.records[r.pair]; ok {
		return false, nil
	}

	idx.records[r.pair] = r
	idx.pending = append(idx.pending, r)
	return true, nil
}

// Len is the number of known pairs.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Pending lists records added since the index was loaded or last cleared.
func (idx *Index) Pending() []Record {
	pending := make([]Record, len(idx.pending))
	copy(pending, idx.pending)
	return pending
}

func (idx *Index) ClearPending() {
	idx.pending = nil
}
