package pack

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var (
	errSpecIsAmbiguous = errors.New("carton_type_id and custom dimensions are mutually exclusive")
	errSpecIsMissing   = errors.New("either carton_type_id or length, width and height must be supplied")
	errSpecIsPartial   = errors.New("custom dimensions need length, width and height")
)

// BoxSpec says what a box physically is: a catalog carton or a custom size.
// The two variants are CatalogSpec and CustomSpec; no other type implements it.
type BoxSpec interface {
	isBoxSpec()
}

// CatalogSpec references a carton type from the catalog.
type CatalogSpec struct {
	cartonTypeID kernel.UUID
}

func NewCatalogSpec(cartonTypeID kernel.UUID) (CatalogSpec, error) {
	if err := cartonTypeID.Validate(); err != nil {
		return CatalogSpec{}, err
	}
	return CatalogSpec{cartonTypeID: cartonTypeID}, nil
}

func (s CatalogSpec) CartonTypeID() kernel.UUID {
	return s.cartonTypeID
}

func (CatalogSpec) isBoxSpec() {}

// CustomSpec carries operator-entered dimensions.
type CustomSpec struct {
	dimensions kernel.Dimensions
}

func NewCustomSpec(dimensions kernel.Dimensions) (CustomSpec, error) {
	if err := dimensions.Validate(); err != nil {
		return CustomSpec{}, err
	}
	return CustomSpec{dimensions: dimensions}, nil
}

func (s CustomSpec) Dimensions() kernel.Dimensions {
	return s.dimensions
}

func (CustomSpec) isBoxSpec() {}

// NewBoxSpec builds a spec from request fields. Exactly one of cartonTypeID or
// the full length/width/height triple must be present.
func NewBoxSpec(cartonTypeID *kernel.UUID, length, width, height *int) (BoxSpec, error) {
	anyDim := length != nil || width != nil || height != nil
	allDims := length != nil && width != nil && height != nil

	switch {
	case cartonTypeID != nil && anyDim:
		return nil, errs.NewValueIsInvalidErrorWithCause("box spec", errSpecIsAmbiguous)
	case cartonTypeID != nil:
		return NewCatalogSpec(*cartonTypeID)
	case !anyDim:
		return nil, errs.NewValueIsInvalidErrorWithCause("box spec", errSpecIsMissing)
	case !allDims:
		return nil, errs.NewValueIsInvalidErrorWithCause("box spec", errSpecIsPartial)
	}

	dims, err := kernel.NewDimensions(*length, *width, *height)
	if err != nil {
		return nil, err
	}
	return NewCustomSpec(dims)
}
