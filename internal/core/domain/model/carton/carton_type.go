package carton

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var (
	ErrNameIsRequired             = errs.NewValueIsRequiredError("name")
	ErrCartonTypeIsNotConstructed = errors.New("CartonType must be created via NewCartonType constructor")
	ErrCartonTypeIsInactive       = errors.New("carton type is inactive")
)

// Details are the editable catalog attributes of a carton type.
// MaxWeightLb of 0 means the catalog does not configure a ceiling.
type Details struct {
	Name         string
	Dimensions   kernel.Dimensions
	MaxWeightLb  int
	Style        string
	Vendor       string
	MinimumStock int
	Active       bool
}

// CartonType is a reusable box style from the catalog. Boxes reference it by
// id; the catalog never owns boxes.
type CartonType struct {
	id             kernel.UUID
	details        Details
	quantityOnHand int
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewCartonType creates a catalog entry with an empty inventory.
func NewCartonType(id kernel.UUID, details Details, now time.Time) (*CartonType, error) {
	c := &CartonType{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		c.setDetails(details),
	); err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// RestoreCartonType rebuilds a catalog entry from persistence.
func RestoreCartonType(
	id kernel.UUID,
	details Details,
	quantityOnHand int,
	createdAt, updatedAt time.Time,
) (*CartonType, error) {
	c, err := NewCartonType(id, details, createdAt)
	if err != nil {
		return nil, err
	}

	c.quantityOnHand = quantityOnHand
	c.updatedAt = updatedAt
	return c, nil
}

func (c *CartonType) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartonTypeIsNotConstructed
	}
	return nil
}

func (c *CartonType) ID() kernel.UUID {
	return c.id
}

func (c *CartonType) Name() string {
	return c.details.Name
}

func (c *CartonType) Dimensions() kernel.Dimensions {
	return c.details.Dimensions
}

func (c *CartonType) MaxWeightLb() int {
	return c.details.MaxWeightLb
}

func (c *CartonType) Style() string {
	return c.details.Style
}

func (c *CartonType) Vendor() string {
	return c.details.Vendor
}

func (c *CartonType) MinimumStock() int {
	return c.details.MinimumStock
}

func (c *CartonType) IsActive() bool {
	return c.details.Active
}

func (c *CartonType) QuantityOnHand() int {
	return c.quantityOnHand
}

func (c *CartonType) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CartonType) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *CartonType) Details() Details {
	return c.details
}

// IsLowStock reports an active carton whose inventory fell below its minimum.
func (c *CartonType) IsLowStock() bool {
	return c.details.Active && c.quantityOnHand < c.details.MinimumStock
}

// ValidateUsable is checked before a box is created from this carton type.
func (c *CartonType) ValidateUsable() error {
	if !c.details.Active {
		return errs.NewValueIsInvalidErrorWithCause("carton_type_id", fmt.Errorf("%w: %s", ErrCartonTypeIsInactive, c.details.Name))
	}
	return nil
}

// Update replaces the catalog attributes.
func (c *CartonType) Update(details Details, now time.Time) error {
	if err := c.setDetails(details); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

// AdjustInventory applies a signed delta to the on-hand counter. The counter
// may go negative; it mirrors what the floor reports, not a reservation.
func (c *CartonType) AdjustInventory(delta int, now time.Time) {
	c.quantityOnHand += delta
	c.updatedAt = now
}

func (c *CartonType) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)

	var problems []error
	if d.Name == "" {
		problems = append(problems, ErrNameIsRequired)
	}
	if err := d.Dimensions.Validate(); err != nil {
		problems = append(problems, err)
	}
	if d.MaxWeightLb < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"max weight is invalid", fmt.Errorf("%d is negative", d.MaxWeightLb)))
	}
	if d.MinimumStock < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"minimum stock is invalid", fmt.Errorf("%d is negative", d.MinimumStock)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.details = d
	return nil
}
