package pack

import (
	"errors"
	"fmt"
	"math"

	"packing/internal/pkg/errs"
)

const (
	// MaxPlausibleWeightLb rejects entries that cannot be a real box.
	MaxPlausibleWeightLb = 500
	// DefaultCustomMaxWeightLb is the ceiling of a custom box without an override.
	DefaultCustomMaxWeightLb = 40
	// DefaultCatalogMaxWeightLb is the ceiling of a catalog box whose carton type
	// configures none.
	DefaultCatalogMaxWeightLb = 99

	// weightScale matches the two decimal places the weight column keeps.
	weightScale = 100
)

var errWeightTooPrecise = errors.New("weight is recorded in hundredths of a pound")

// Weight is a recorded box weight: the raw entry and its rounded-up pound value.
type Weight struct {
	entered float64
	rounded int
}

// NewWeight accepts 0 < entered <= 500 in steps of 0.01 and rounds up to whole
// pounds.
//
//	w, _ := pack.NewWeight(12.1) // w.Pounds() == 13
func NewWeight(entered float64) (Weight, error) {
	if math.IsNaN(entered) || entered <= 0 || entered > MaxPlausibleWeightLb {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", entered, 0, MaxPlausibleWeightLb)
	}
	if scaled := entered * weightScale; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", errWeightTooPrecise)
	}
	return Weight{entered: entered, rounded: int(math.Ceil(entered))}, nil
}

// RestoreWeight rebuilds a stored weight. Rows written before the raw value was
// kept only carry the rounded pounds.
func RestoreWeight(rounded int, entered *float64) Weight {
	w := Weight{rounded: rounded, entered: float64(rounded)}
	if entered != nil {
		w.entered = *entered
	}
	return w
}

// Entered is the value the operator typed.
func (w Weight) Entered() float64 {
	return w.entered
}

// Pounds is the entered value rounded up.
func (w Weight) Pounds() int {
	return w.rounded
}

// ResolveMaxWeight picks a box ceiling: the requested override, else the carton
// type's configured maximum, else the per-variant default.
func ResolveMaxWeight(requested *int, spec BoxSpec, cartonMaxWeightLb int) (int, error) {
	if requested != nil {
		if *requested < 1 || *requested > MaxPlausibleWeightLb {
			return 0, errs.NewValueIsOutOfRangeError("max_weight_lb", *requested, 1, MaxPlausibleWeightLb)
		}
		return *requested, nil
	}

	switch spec.(type) {
	case CatalogSpec:
		if cartonMaxWeightLb > 0 {
			return cartonMaxWeightLb, nil
		}
		return DefaultCatalogMaxWeightLb, nil
	case CustomSpec:
		return DefaultCustomMaxWeightLb, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("box spec", fmt.Errorf("unsupported spec %T", spec))
	}
}
