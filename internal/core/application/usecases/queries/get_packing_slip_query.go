package queries

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrGetPackingSlipQueryIsNotConstructed = errors.New(
		"GetPackingSlipQuery must be created via NewGetPackingSlipQuery constructor",
	)
)

// GetPackingSlipQuery assembles the printable packing slip of a pack.
type GetPackingSlipQuery struct {
	packID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPackingSlipQuery(packID kernel.UUID) (GetPackingSlipQuery, error) {
	if err := packID.Validate(); err != nil {
		return GetPackingSlipQuery{}, err
	}

	return GetPackingSlipQuery{
		packID: packID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackingSlipQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingSlipQueryIsNotConstructed)
}

func (q GetPackingSlipQuery) PackID() kernel.UUID {
	return q.packID
}

// PackingSlip is the renderer-neutral content of a packing slip.
type PackingSlip struct {
	Header PackingSlipHeader
	Boxes  []PackingSlipBox
	Items  []PackingSlipItemGroup
}

type PackingSlipHeader struct {
	PackID       kernel.UUID
	OrderNo      string
	CustomerName string
	ShipTo       string
	DueDate      *string
	LeadTimePlan string
	Status       string
	CompletedAt  *time.Time
}

type PackingSlipBox struct {
	BoxNo          *int
	Label          string
	CartonTypeName *string
	LengthIn       *int
	WidthIn        *int
	HeightIn       *int
	WeightLbs      *int
}

// PackingSlipItem is one box item joined with its order line.
type PackingSlipItem struct {
	BoxNo       *int
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	QtyShipped  int
	ProductTag  string
}

// PackingSlipItemGroup collapses identical items spread over several boxes.
type PackingSlipItemGroup struct {
	BoxDisplay  string
	ProductCode string
	LengthIn    int
	HeightIn    int
	Finish      string
	QtyOrdered  int
	QtyShipped  int
	ProductTag  string
}

type slipGroupKey struct {
	productCode string
	lengthIn    int
	heightIn    int
	finish      string
	qtyOrdered  int
	qtyPerBox   int
	productTag  string
}

// GroupPackingSlipItems merges items that share product, size, finish, ordered
// quantity, per-box quantity and tag. Groups keep the order of their first item;
// QtyShipped is the sum over the group.
func GroupPackingSlipItems(items []PackingSlipItem) []PackingSlipItemGroup {
	groups := make([]PackingSlipItemGroup, 0)
	boxes := make([][]int, 0)
	index := make(map[slipGroupKey]int)

	for _, it := range items {
		key := slipGroupKey{
			productCode: it.ProductCode,
			lengthIn:    it.LengthIn,
			heightIn:    it.HeightIn,
			finish:      it.Finish,
			qtyOrdered:  it.QtyOrdered,
			qtyPerBox:   it.QtyShipped,
			productTag:  it.ProductTag,
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, PackingSlipItemGroup{
				ProductCode: it.ProductCode,
				LengthIn:    it.LengthIn,
				HeightIn:    it.HeightIn,
				Finish:      it.Finish,
				QtyOrdered:  it.QtyOrdered,
				ProductTag:  it.ProductTag,
			})
			boxes = append(boxes, nil)
		}

		groups[i].QtyShipped += it.QtyShipped
		if it.BoxNo != nil {
			boxes[i] = append(boxes[i], *it.BoxNo)
		}
	}

	for i := range groups {
		groups[i].BoxDisplay = FormatBoxNumbers(boxes[i])
	}
	return groups
}

// FormatBoxNumbers renders "5" for one box, "5-9" for a consecutive run and
// "5, 7, 9" otherwise. Numbers are sorted first.
func FormatBoxNumbers(numbers []int) string {
	if len(numbers) == 0 {
		return ""
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	if len(sorted) == 1 {
		return strconv.Itoa(sorted[0])
	}

	consecutive := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] != 1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return strconv.Itoa(sorted[0]) + "-" + strconv.Itoa(sorted[len(sorted)-1])
	}

	parts := make([]string, 0, len(sorted))
	for _, n := range sorted {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ", ")
}
