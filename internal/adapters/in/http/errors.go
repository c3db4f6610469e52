package http

import (
	"errors"
	"net/http"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/domain/model/pairguard"
	"packing/internal/logger"
	"packing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in error bodies and as the result label of pack
// operation metrics.
const (
	kindOK                 = "ok"
	kindNotFound           = "not_found"
	kindInvalidInput       = "invalid_input"
	kindConflict           = "conflict"
	kindOverpack           = "overpack"
	kindPairRule           = "pair_rule_violation"
	kindOverweight         = "overweight"
	kindBoxNotEmpty        = "box_not_empty"
	kindDuplicateBox       = "duplicate_box"
	kindNotCompletable     = "validation_error"
	kindAllocationConflict = "allocation_conflict"
	kindNotInProgress      = "pack_not_in_progress"
	kindUnauthorized       = "unauthorized"
	kindInternal           = "internal"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type shortageResponse struct {
	LineID      string `json:"line_id"`
	ProductCode string `json:"product_code"`
	Required    int    `json:"required"`
	Remaining   int    `json:"remaining"`
}

// classify maps an error to its HTTP status and kind. NotFound is checked
// first so that a completion attempt on a missing pack reports 404.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case err == nil:
		return http.StatusOK, kindOK
	case errors.As(err, &httpErr):
		if httpErr.Code == http.StatusUnauthorized {
			return httpErr.Code, kindUnauthorized
		}
		if httpErr.Code == http.StatusNotFound {
			return httpErr.Code, kindNotFound
		}
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, kindInternal
		}
		return httpErr.Code, kindInvalidInput
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, pack.ErrPackNotCompletable):
		return http.StatusBadRequest, kindNotCompletable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, carton.ErrCartonTypeIsInactive):
		return http.StatusBadRequest, kindInvalidInput
	case errors.Is(err, pack.ErrOverpack):
		return http.StatusConflict, kindOverpack
	case errors.Is(err, pairguard.ErrPairRuleViolation):
		return http.StatusConflict, kindPairRule
	case errors.Is(err, pack.ErrOverweight):
		return http.StatusConflict, kindOverweight
	case errors.Is(err, pack.ErrBoxNotEmpty):
		return http.StatusConflict, kindBoxNotEmpty
	case errors.Is(err, pack.ErrDuplicateBox):
		return http.StatusConflict, kindDuplicateBox
	case errors.Is(err, pack.ErrAllocationConflict):
		return http.StatusConflict, kindAllocationConflict
	case errors.Is(err, pack.ErrPackIsNotInProgress):
		return http.StatusConflict, kindNotInProgress
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, kindConflict
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

// operationResult is the metrics label for the outcome of an operation.
func operationResult(err error) string {
	_, kind := classify(err)
	return kind
}

func errorDetails(err error) any {
	var (
		overpack   *pack.OverpackError
		overweight *pack.OverweightError
		notEmpty   *pack.BoxNotEmptyError
		duplicate  *pack.DuplicateBoxError
		completion *pack.CompletionError
		conflict   *pack.AllocationConflictError
		pairRule   *pairguard.PairRuleViolationError
	)

	switch {
	case errors.As(err, &overpack):
		return map[string]any{
			"product_code": overpack.ProductCode,
			"ordered":      overpack.Ordered,
			"remaining":    overpack.Remaining,
			"requested":    overpack.Requested,
		}
	case errors.As(err, &overweight):
		return map[string]any{
			"weight_lb":     overweight.WeightLb,
			"max_weight_lb": overweight.MaxWeightLb,
		}
	case errors.As(err, &notEmpty):
		return map[string]any{
			"box_no": notEmpty.BoxNo,
			"items":  notEmpty.Items,
		}
	case errors.As(err, &duplicate):
		shortages := make([]shortageResponse, 0, len(duplicate.Shortages))
		for _, s := range duplicate.Shortages {
			shortages = append(shortages, shortageResponse{
				LineID:      s.LineID.String(),
				ProductCode: s.ProductCode,
				Required:    s.Required,
				Remaining:   s.Remaining,
			})
		}
		return map[string]any{
			"source_box_no": duplicate.SourceBoxNo,
			"shortages":     shortages,
		}
	case errors.As(err, &completion):
		if completion.Cause != nil {
			return nil
		}
		return map[string]any{"problems": completion.Problems()}
	case errors.As(err, &conflict):
		return map[string]any{"attempts": conflict.Attempts}
	case errors.As(err, &pairRule):
		return map[string]any{
			"product_a": pairRule.ProductA,
			"product_b": pairRule.ProductB,
			"box_no":    pairRule.BoxNo,
		}
	}
	return nil
}

// ErrorHandler is the echo HTTPErrorHandler for the API. Business errors are
// reported with their message; anything unexpected is logged and hidden
// behind a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, kind := classify(err)
	body := ErrorResponse{Code: status, Kind: kind, Message: err.Error()}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		log := logger.Component("http")
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("Request failed")
		body.Message = "internal server error"
	} else {
		body.Details = errorDetails(err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		log := logger.Component("http")
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
