package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

type startPackRequest struct {
	OrderNo string `json:"order_no" validate:"required"`
}

type syncOrderRequest struct {
	OrderNo string `json:"order_no" validate:"required,max=64"`
}

type assignOneRequest struct {
	OrderLineID string `json:"order_line_id" validate:"required,uuid"`
	BoxID       string `json:"box_id" validate:"required,uuid"`
}

type setItemQtyRequest struct {
	Qty *int `json:"qty" validate:"required,min=0"`
}

// createBoxRequest carries either a catalog carton or custom dimensions.
// Mixing the two is rejected by the box spec.
type createBoxRequest struct {
	CartonTypeID *string `json:"carton_type_id" validate:"omitempty,uuid"`
	Length       *int    `json:"length" validate:"omitempty,min=1,max=240"`
	Width        *int    `json:"width" validate:"omitempty,min=1,max=240"`
	Height       *int    `json:"height" validate:"omitempty,min=1,max=240"`
	MaxWeightLb  *int    `json:"max_weight_lb" validate:"omitempty,min=1"`
}

// setBoxWeightRequest clears the weight when Weight is null.
type setBoxWeightRequest struct {
	Weight *float64 `json:"weight"`
}

type cartonTypeRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Length       int    `json:"length" validate:"min=1,max=240"`
	Width        int    `json:"width" validate:"min=1,max=240"`
	Height       int    `json:"height" validate:"min=1,max=240"`
	MaxWeightLb  int    `json:"max_weight_lb" validate:"min=0"`
	Style        string `json:"style" validate:"max=50"`
	Vendor       string `json:"vendor" validate:"max=100"`
	MinimumStock int    `json:"minimum_stock" validate:"min=0"`
	Active       *bool  `json:"active"`
}

type createCartonTypeRequest struct {
	cartonTypeRequest

	QuantityOnHand int `json:"quantity_on_hand" validate:"min=0"`
}

type adjustInventoryRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// RequestValidator plugs go-playground/validator into echo. Failures are
// reported as errs.ValueIsInvalidError naming the first offending JSON field.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(), errors.New("failed "+fe.Tag()+" check"))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", err)
}

// bindAndValidate decodes the JSON body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return c.Validate(req)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return parseUUID(name, c.Param(name))
}

func parseUUID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// queryBool reads an optional boolean query parameter.
func queryBool(c echo.Context, name string, fallback bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &d, nil
}
