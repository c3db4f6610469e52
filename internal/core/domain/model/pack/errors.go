package pack

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

const maxListedProblems = 5

var (
	ErrPackIsNotConstructed = errors.New("Pack must be created via NewPack or RestorePack constructor")
	ErrBoxIsNotConstructed  = errors.New("Box must be created via its pack or RestoreBox constructor")
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")

	ErrPackIsNotInProgress = errors.New("pack is not in progress")
	ErrOverpack            = errors.New("overpacking not allowed")
	ErrOverweight          = errors.New("box is overweight")
	ErrBoxNotEmpty         = errors.New("box is not empty")
	ErrDuplicateBox        = errors.New("box cannot be duplicated")
	ErrPackNotCompletable  = errors.New("cannot complete pack")
	ErrAllocationConflict  = errors.New("box number allocation conflict")
)

// OverpackError is returned when a line would exceed its ordered quantity.
type OverpackError struct {
	ProductCode string
	Ordered     int
	Remaining   int
	Requested   int
}

func (e *OverpackError) Error() string {
	return fmt.Sprintf("%s: line %s has %d of %d remaining, requested %d",
		ErrOverpack, e.ProductCode, e.Remaining, e.Ordered, e.Requested)
}

func (e *OverpackError) Unwrap() error {
	return ErrOverpack
}

type OverweightError struct {
	WeightLb    int
	MaxWeightLb int
}

func (e *OverweightError) Error() string {
	return fmt.Sprintf("%s: %d lb exceeds max %d lb", ErrOverweight, e.WeightLb, e.MaxWeightLb)
}

func (e *OverweightError) Unwrap() error {
	return ErrOverweight
}

type BoxNotEmptyError struct {
	BoxNo int
	Items int
}

func (e *BoxNotEmptyError) Error() string {
	return fmt.Sprintf("%s: Box %d still holds %d item(s)", ErrBoxNotEmpty, e.BoxNo, e.Items)
}

func (e *BoxNotEmptyError) Unwrap() error {
	return ErrBoxNotEmpty
}

// Shortage describes one line that cannot be copied into a duplicate box.
type Shortage struct {
	LineID      kernel.UUID
	ProductCode string
	Required    int
	Remaining   int
}

type DuplicateBoxError struct {
	SourceBoxNo int
	Shortages   []Shortage
}

func (e *DuplicateBoxError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s needs %d, %d remaining", s.ProductCode, s.Required, s.Remaining))
	}
	return fmt.Sprintf("%s: Box %d: %s", ErrDuplicateBox, e.SourceBoxNo, strings.Join(parts, "; "))
}

func (e *DuplicateBoxError) Unwrap() error {
	return ErrDuplicateBox
}

// LineDiscrepancy is a line whose packed total differs from its ordered quantity.
type LineDiscrepancy struct {
	LineID      kernel.UUID
	ProductCode string
	Packed      int
	Ordered     int
}

// CompletionError lists everything that keeps a pack from completing. Cause is
// set when the pack could not be evaluated at all.
type CompletionError struct {
	MissingWeights []int
	Underpacked    []LineDiscrepancy
	Overpacked     []LineDiscrepancy
	Cause          error
}

// Problems renders the failures in reporting order: missing weights, then
// underpacked lines, then overpacked lines.
func (e *CompletionError) Problems() []string {
	problems := make([]string, 0, len(e.MissingWeights)+len(e.Underpacked)+len(e.Overpacked))
	for _, no := range e.MissingWeights {
		problems = append(problems, fmt.Sprintf("Box %d missing weight", no))
	}
	for _, d := range e.Underpacked {
		problems = append(problems, fmt.Sprintf("underpacked line %s (%d/%d)", d.ProductCode, d.Packed, d.Ordered))
	}
	for _, d := range e.Overpacked {
		problems = append(problems, fmt.Sprintf("overpacked line %s (%d/%d)", d.ProductCode, d.Packed, d.Ordered))
	}
	return problems
}

func (e *CompletionError) Error() string {
	if errors.Is(e.Cause, errs.ErrObjectNotFound) {
		return fmt.Sprintf("%s: pack not found", ErrPackNotCompletable)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", ErrPackNotCompletable, e.Cause)
	}

	problems := e.Problems()
	msg := strings.Join(problems[:min(len(problems), maxListedProblems)], "; ")
	if extra := len(problems) - maxListedProblems; extra > 0 {
		msg += fmt.Sprintf(" (+%d more)", extra)
	}
	return fmt.Sprintf("%s: %s", ErrPackNotCompletable, msg)
}

func (e *CompletionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPackNotCompletable, e.Cause}
	}
	return []error{ErrPackNotCompletable}
}

func (e *CompletionError) hasProblems() bool {
	return len(e.MissingWeights)+len(e.Underpacked)+len(e.Overpacked) > 0
}

// AllocationConflictError is returned when box creation keeps losing the race
// for the next box number.
type AllocationConflictError struct {
	Attempts int
}

func (e *AllocationConflictError) Error() string {
	return fmt.Sprintf("%s: gave up after %d attempts", ErrAllocationConflict, e.Attempts)
}

func (e *AllocationConflictError) Unwrap() error {
	return ErrAllocationConflict
}
