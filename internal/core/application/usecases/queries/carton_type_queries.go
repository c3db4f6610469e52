package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrListCartonTypesQueryIsNotConstructed = errors.New(
		"ListCartonTypesQuery must be created via NewListCartonTypesQuery constructor",
	)
	ErrGetLowStockCartonsQueryIsNotConstructed = errors.New(
		"GetLowStockCartonsQuery must be created via NewGetLowStockCartonsQuery constructor",
	)
)

// ListCartonTypesQuery lists the catalog ordered by name, optionally only active types.
type ListCartonTypesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewListCartonTypesQuery(activeOnly bool) ListCartonTypesQuery {
	return ListCartonTypesQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListCartonTypesQuery) Validate() error {
	return q.guard.Validate(ErrListCartonTypesQueryIsNotConstructed)
}

func (q ListCartonTypesQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetLowStockCartonsQuery lists active carton types whose quantity on hand
// is below their minimum stock.
type GetLowStockCartonsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLowStockCartonsQuery() GetLowStockCartonsQuery {
	return GetLowStockCartonsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLowStockCartonsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockCartonsQueryIsNotConstructed)
}

// CartonTypeView is a catalog row. MaxWeightLb 0 means not configured.
type CartonTypeView struct {
	ID             kernel.UUID
	Name           string
	LengthIn       int
	WidthIn        int
	HeightIn       int
	MaxWeightLb    int
	Style          string
	Vendor         string
	QuantityOnHand int
	MinimumStock   int
	Active         bool
	UpdatedAt      time.Time
}

// Shortfall is how many cartons are needed to reach the minimum stock.
func (v CartonTypeView) Shortfall() int {
	return max(0, v.MinimumStock-v.QuantityOnHand)
}
