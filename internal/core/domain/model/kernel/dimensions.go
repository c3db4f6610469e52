package kernel

import (
	"errors"
	"fmt"
	"math"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// MaxDimensionIn bounds every box side. Larger values are typos, not boxes.
const MaxDimensionIn = 240

var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions")

// Dimensions is a length x width x height triple in whole inches.
type Dimensions struct { //nolint:recvcheck //using for validation
	length int
	width  int
	height int
	guard  guard.ConstructorGuard
}

// NewDimensions validates that every side is in 1..MaxDimensionIn.
//
//	dims, err := kernel.NewDimensions(24, 18, 6)
func NewDimensions(length, width, height int) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setSide("length", &d.length, length),
		d.setSide("width", &d.width, width),
		d.setSide("height", &d.height, height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Length() int {
	return d.length
}

func (d Dimensions) Width() int {
	return d.width
}

func (d Dimensions) Height() int {
	return d.height
}

// String renders the dimensions the way box labels show them, e.g. "24x18x6".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.length, d.width, d.height)
}

func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height
}

func (d *Dimensions) setSide(name string, side *int, value int) error {
	if value < 1 || value > MaxDimensionIn {
		return errs.NewValueIsOutOfRangeError(name, value, 1, MaxDimensionIn)
	}

	*side = value
	return nil
}

// RoundInches rounds a source measurement to whole inches, half away from zero.
// Order-entry data carries fractional sizes; lines store integers.
func RoundInches(v float64) int {
	return int(math.Round(v))
}
