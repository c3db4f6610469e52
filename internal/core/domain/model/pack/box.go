package pack

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// Item is a quantity of one order line inside one box. Qty is always positive;
// an item that reaches zero is removed.
type Item struct {
	id     kernel.UUID
	boxID  kernel.UUID
	lineID kernel.UUID
	qty    int

	isConstructed bool
}

func RestoreItem(id, boxID, lineID kernel.UUID, qty int) (*Item, error) {
	if err := errors.Join(id.Validate(), boxID.Validate(), lineID.Validate()); err != nil {
		return nil, err
	}
	if qty < 1 {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, 1, "ordered")
	}
	return &Item{id: id, boxID: boxID, lineID: lineID, qty: qty, isConstructed: true}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID     { return i.id }
func (i *Item) BoxID() kernel.UUID  { return i.boxID }
func (i *Item) LineID() kernel.UUID { return i.lineID }
func (i *Item) Qty() int            { return i.qty }

// Box is a physical shipping container in a pack. Boxes are owned by their
// Pack and only change through it.
type Box struct {
	id          kernel.UUID
	packID      kernel.UUID
	number      int
	spec        BoxSpec
	maxWeightLb int
	weight      *Weight
	items       []*Item

	isConstructed bool
}

// RestoreBox rebuilds a box from persistence.
func RestoreBox(
	id, packID kernel.UUID,
	number int,
	spec BoxSpec,
	maxWeightLb int,
	weight *Weight,
	items []*Item,
) (*Box, error) {
	if err := errors.Join(id.Validate(), packID.Validate()); err != nil {
		return nil, err
	}
	if number < 1 {
		return nil, errs.NewValueIsOutOfRangeError("box_no", number, 1, "unbounded")
	}
	if spec == nil {
		return nil, errs.NewValueIsRequiredError("box spec")
	}
	if maxWeightLb < 1 {
		return nil, errs.NewValueIsOutOfRangeError("max_weight_lb", maxWeightLb, 1, MaxPlausibleWeightLb)
	}

	b := &Box{
		id:            id,
		packID:        packID,
		number:        number,
		spec:          spec,
		maxWeightLb:   maxWeightLb,
		weight:        weight,
		items:         make([]*Item, 0, len(items)),
		isConstructed: true,
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if !it.boxID.IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("item belongs to another box")
		}
		if _, ok := b.item(it.lineID); ok {
			return nil, errs.NewValueIsInvalidError("box holds the same line twice")
		}
		b.items = append(b.items, it)
	}

	return b, nil
}

func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}
	return nil
}

func (b *Box) ID() kernel.UUID {
	return b.id
}

func (b *Box) PackID() kernel.UUID {
	return b.packID
}

// Number is the 1-based, pack-unique box number shown on labels.
func (b *Box) Number() int {
	return b.number
}

func (b *Box) Spec() BoxSpec {
	return b.spec
}

func (b *Box) MaxWeightLb() int {
	return b.maxWeightLb
}

// Weight is nil until the box is weighed.
func (b *Box) Weight() *Weight {
	if b.weight == nil {
		return nil
	}
	w := *b.weight
	return &w
}

func (b *Box) Items() []*Item {
	items := make([]*Item, len(b.items))
	copy(items, b.items)
	return items
}

func (b *Box) IsEmpty() bool {
	return len(b.items) == 0
}

// QtyOf returns how many units of the line this box holds.
func (b *Box) QtyOf(lineID kernel.UUID) int {
	if it, ok := b.item(lineID); ok {
		return it.qty
	}
	return 0
}

// LineIDs lists the distinct lines held by the box.
func (b *Box) LineIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.items))
	for _, it := range b.items {
		ids = append(ids, it.lineID)
	}
	return ids
}

func (b *Box) item(lineID kernel.UUID) (*Item, bool) {
	for _, it := range b.items {
		if it.lineID.IsEqual(lineID) {
			return it, true
		}
	}
	return nil, false
}

// setQty upserts or removes the line's item and returns the id of a removed item.
func (b *Box) setQty(lineID kernel.UUID, qty int) (removed *kernel.UUID) {
	it, ok := b.item(lineID)
	switch {
	case !ok && qty > 0:
		b.items = append(b.items, &Item{
			id:            kernel.NewUUID(),
			boxID:         b.id,
			lineID:        lineID,
			qty:           qty,
			isConstructed: true,
		})
	case ok && qty > 0:
		it.qty = qty
	case ok:
		for i := range b.items {
			if b.items[i] == it {
				b.items = append(b.items[:i], b.items[i+1:]...)
				break
			}
		}
		id := it.id
		return &id
	}
	return nil
}
