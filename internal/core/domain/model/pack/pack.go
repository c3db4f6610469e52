package pack

import (
	"errors"
	"slices"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"
)

// Pack is one packing session for one order and the aggregate root of its
// boxes and items.
//
// Pack follows these invariants:
//   - For every line, the quantity packed across all boxes never exceeds the
//     line's ordered quantity
//   - Box numbers are unique and, after a delete, dense 1..N
//   - Boxes and items change only while the pack is in progress
//
// The pair rule spans packs and is enforced by services.Allocator together
// with pairguard.Index.
type Pack struct {
	id          kernel.UUID
	orderID     kernel.UUID
	status      Status
	startedBy   *int64
	completedBy *int64
	startedAt   time.Time
	completedAt *time.Time
	boxes       []*Box

	removedBoxIDs  []kernel.UUID
	removedItemIDs []kernel.UUID

	isConstructed bool
}

// NewPack starts an in-progress pack without boxes.
//
//	p, err := pack.NewPack(kernel.NewUUID(), o.ID(), principal, time.Now().UTC())
//	box, err := p.AddBox(spec, pack.DefaultCustomMaxWeightLb)
func NewPack(id, orderID kernel.UUID, startedBy *int64, now time.Time) (*Pack, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Pack{
		id:            id,
		orderID:       orderID,
		status:        InProgress,
		startedBy:     startedBy,
		startedAt:     now,
		boxes:         make([]*Box, 0),
		isConstructed: true,
	}, nil
}

// RestorePack rebuilds a pack from persistence.
func RestorePack(
	id, orderID kernel.UUID,
	status Status,
	startedBy, completedBy *int64,
	startedAt time.Time,
	completedAt *time.Time,
	boxes []*Box,
) (*Pack, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPack(id, orderID, startedBy, startedAt)
	if err != nil {
		return nil, err
	}
	p.status = status
	p.completedBy = completedBy
	p.completedAt = completedAt

	numbers := make(map[int]struct{}, len(boxes))
	for _, b := range boxes {
		if err = b.Validate(); err != nil {
			return nil, err
		}
		if !b.packID.IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("box belongs to another pack")
		}
		if _, ok := numbers[b.number]; ok {
			return nil, errs.NewValueIsInvalidError("box number is duplicated")
		}
		numbers[b.number] = struct{}{}
		p.boxes = append(p.boxes, b)
	}

	return p, nil
}

// Validate ensures the Pack was built through a constructor.
func (p *Pack) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackIsNotConstructed
	}
	return nil
}

func (p *Pack) ID() kernel.UUID {
	return p.id
}

func (p *Pack) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Pack) Status() Status {
	return p.status
}

func (p *Pack) StartedBy() *int64 {
	return p.startedBy
}

func (p *Pack) CompletedBy() *int64 {
	return p.completedBy
}

func (p *Pack) StartedAt() time.Time {
	return p.startedAt
}

func (p *Pack) CompletedAt() *time.Time {
	return p.completedAt
}

// Boxes returns the boxes ordered by box number, then id.
func (p *Pack) Boxes() []*Box {
	boxes := make([]*Box, len(p.boxes))
	copy(boxes, p.boxes)
	sortBoxes(boxes)
	return boxes
}

// Box finds a box of this pack.
func (p *Pack) Box(id kernel.UUID) (*Box, error) {
	for _, b := range p.boxes {
		if b.id.IsEqual(id) {
			return b, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("box_id", id.String())
}

// BoxHoldingBoth returns a box other than exclude that holds both lines.
func (p *Pack) BoxHoldingBoth(a, b, exclude kernel.UUID) (*Box, bool) {
	for _, box := range p.Boxes() {
		if box.id.IsEqual(exclude) {
			continue
		}
		if box.QtyOf(a) > 0 && box.QtyOf(b) > 0 {
			return box, true
		}
	}
	return nil, false
}

// PackedQty sums a line's quantity over every box of the pack.
func (p *Pack) PackedQty(lineID kernel.UUID) int {
	total := 0
	for _, b := range p.boxes {
		total += b.QtyOf(lineID)
	}
	return total
}

// ValidateMutable reports ErrPackIsNotInProgress once the pack is complete.
func (p *Pack) ValidateMutable() error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.status.ValidateMutate()
}

// ValidateAssignOne checks that one more unit of line fits into the box.
func (p *Pack) ValidateAssignOne(boxID kernel.UUID, line *order.Line) (*Box, error) {
	box, err := p.mutableBox(boxID, line)
	if err != nil {
		return nil, err
	}

	if remaining := line.QtyOrdered() - p.PackedQty(line.ID()); remaining < 1 {
		return nil, &OverpackError{
			ProductCode: line.ProductCode(),
			Ordered:     line.QtyOrdered(),
			Remaining:   0,
			Requested:   1,
		}
	}

	return box, nil
}

// AssignOne adds one unit of line to the box.
func (p *Pack) AssignOne(boxID kernel.UUID, line *order.Line) error {
	box, err := p.ValidateAssignOne(boxID, line)
	if err != nil {
		return err
	}

	box.setQty(line.ID(), box.QtyOf(line.ID())+1)
	return nil
}

// ValidateSetQty checks that the box may hold exactly qty units of line.
func (p *Pack) ValidateSetQty(boxID kernel.UUID, line *order.Line, qty int) (*Box, error) {
	box, err := p.mutableBox(boxID, line)
	if err != nil {
		return nil, err
	}

	if qty < 0 {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, 0, line.QtyOrdered())
	}

	elsewhere := p.PackedQty(line.ID()) - box.QtyOf(line.ID())
	if allowed := line.QtyOrdered() - elsewhere; qty > allowed {
		return nil, &OverpackError{
			ProductCode: line.ProductCode(),
			Ordered:     line.QtyOrdered(),
			Remaining:   max(allowed, 0),
			Requested:   qty,
		}
	}

	return box, nil
}

// SetQty sets the quantity of line in the box. Zero removes the item.
func (p *Pack) SetQty(boxID kernel.UUID, line *order.Line, qty int) error {
	box, err := p.ValidateSetQty(boxID, line, qty)
	if err != nil {
		return err
	}

	p.trackItemRemoval(box.setQty(line.ID(), qty))
	return nil
}

// RemoveItem takes qty units of a line out of the box, deleting the item when
// nothing is left.
func (p *Pack) RemoveItem(boxID, lineID kernel.UUID, qty int) error {
	if err := p.ValidateMutable(); err != nil {
		return err
	}
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("qty", qty, 1, "item quantity")
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}

	current := box.QtyOf(lineID)
	if current == 0 {
		return errs.NewObjectNotFoundError("box item", lineID.String())
	}

	p.trackItemRemoval(box.setQty(lineID, max(current-qty, 0)))
	return nil
}

// AddBox appends an empty box numbered after the current highest number.
func (p *Pack) AddBox(spec BoxSpec, maxWeightLb int) (*Box, error) {
	if err := p.ValidateMutable(); err != nil {
		return nil, err
	}

	box, err := RestoreBox(kernel.NewUUID(), p.id, p.NextBoxNumber(), spec, maxWeightLb, nil, nil)
	if err != nil {
		return nil, err
	}

	p.boxes = append(p.boxes, box)
	return box, nil
}

// NextBoxNumber is max(box number) + 1, or 1 for a pack without boxes.
func (p *Pack) NextBoxNumber() int {
	highest := 0
	for _, b := range p.boxes {
		highest = max(highest, b.number)
	}
	return highest + 1
}

// SetBoxWeight records the weight of a box; nil clears it.
func (p *Pack) SetBoxWeight(boxID kernel.UUID, weight *Weight) error {
	if err := p.ValidateMutable(); err != nil {
		return err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}

	if weight == nil {
		box.weight = nil
		return nil
	}

	if weight.Pounds() > box.maxWeightLb {
		return &OverweightError{WeightLb: weight.Pounds(), MaxWeightLb: box.maxWeightLb}
	}

	w := *weight
	box.weight = &w
	return nil
}

// DeleteBoxIfEmpty removes an empty box and renumbers the rest densely.
func (p *Pack) DeleteBoxIfEmpty(boxID kernel.UUID) error {
	if err := p.ValidateMutable(); err != nil {
		return err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}
	if !box.IsEmpty() {
		return &BoxNotEmptyError{BoxNo: box.number, Items: len(box.items)}
	}

	p.boxes = slices.DeleteFunc(p.boxes, func(b *Box) bool { return b == box })
	p.removedBoxIDs = append(p.removedBoxIDs, box.id)

	sortBoxes(p.boxes)
	for i, b := range p.boxes {
		b.number = i + 1
	}

	return nil
}

// DuplicateBox clones a non-empty box and its items into a new box. Either
// every item fits within its line's remaining quantity or nothing changes.
func (p *Pack) DuplicateBox(boxID kernel.UUID, o *order.Order) (*Box, error) {
	if err := p.ValidateMutable(); err != nil {
		return nil, err
	}
	if err := p.validateOrder(o); err != nil {
		return nil, err
	}

	source, err := p.Box(boxID)
	if err != nil {
		return nil, err
	}
	if source.IsEmpty() {
		return nil, errs.NewValueIsInvalidError("cannot duplicate an empty box")
	}

	shortages := make([]Shortage, 0)
	for _, it := range source.items {
		line, err := o.Line(it.lineID)
		if err != nil {
			return nil, err
		}
		if remaining := line.QtyOrdered() - p.PackedQty(line.ID()); remaining < it.qty {
			shortages = append(shortages, Shortage{
				LineID:      line.ID(),
				ProductCode: line.ProductCode(),
				Required:    it.qty,
				Remaining:   max(remaining, 0),
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &DuplicateBoxError{SourceBoxNo: source.number, Shortages: shortages}
	}

	clone, err := RestoreBox(kernel.NewUUID(), p.id, p.NextBoxNumber(), source.spec, source.maxWeightLb, source.Weight(), nil)
	if err != nil {
		return nil, err
	}
	for _, it := range source.items {
		clone.setQty(it.lineID, it.qty)
	}

	p.boxes = append(p.boxes, clone)
	return clone, nil
}

// Complete finalizes the pack when every box is weighed and every line of the
// order is packed exactly.
func (p *Pack) Complete(o *order.Order, completedBy *int64, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := p.validateOrder(o); err != nil {
		return err
	}

	next, err := p.status.Complete()
	if err != nil {
		return err
	}

	report := &CompletionError{}
	for _, b := range p.Boxes() {
		if b.weight == nil {
			report.MissingWeights = append(report.MissingWeights, b.number)
		}
	}
	for _, line := range o.Lines() {
		d := LineDiscrepancy{
			LineID:      line.ID(),
			ProductCode: line.ProductCode(),
			Packed:      p.PackedQty(line.ID()),
			Ordered:     line.QtyOrdered(),
		}
		switch {
		case d.Packed < d.Ordered:
			report.Underpacked = append(report.Underpacked, d)
		case d.Packed > d.Ordered:
			report.Overpacked = append(report.Overpacked, d)
		}
	}
	if report.hasProblems() {
		return report
	}

	completedAt := now.UTC()
	p.status = next
	p.completedBy = completedBy
	p.completedAt = &completedAt
	return nil
}

// RemovedBoxIDs lists boxes deleted since the pack was loaded.
func (p *Pack) RemovedBoxIDs() []kernel.UUID {
	return slices.Clone(p.removedBoxIDs)
}

// RemovedItemIDs lists items deleted since the pack was loaded.
func (p *Pack) RemovedItemIDs() []kernel.UUID {
	return slices.Clone(p.removedItemIDs)
}

// ClearRemovals is called by the repository once removals are persisted.
func (p *Pack) ClearRemovals() {
	p.removedBoxIDs = nil
	p.removedItemIDs = nil
}

func (p *Pack) mutableBox(boxID kernel.UUID, line *order.Line) (*Box, error) {
	if err := p.ValidateMutable(); err != nil {
		return nil, err
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	if !line.OrderID().IsEqual(p.orderID) {
		return nil, errs.NewObjectNotFoundError("order_line_id", line.ID().String())
	}
	return p.Box(boxID)
}

func (p *Pack) validateOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.ID().IsEqual(p.orderID) {
		return errs.NewValueIsInvalidError("order does not match pack")
	}
	return nil
}

func (p *Pack) trackItemRemoval(id *kernel.UUID) {
	if id != nil {
		p.removedItemIDs = append(p.removedItemIDs, *id)
	}
}

func sortBoxes(boxes []*Box) {
	slices.SortFunc(boxes, func(a, b *Box) int {
		if a.number != b.number {
			return a.number - b.number
		}
		return a.id.Compare(b.id)
	})
}
