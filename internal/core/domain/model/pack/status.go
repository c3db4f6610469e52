package pack

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// Status is the lifecycle state of a pack.
//
// State transitions:
//
//	InProgress ──> Complete
//
// Allocation and box mutations are only legal while InProgress.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// InProgress is the state of a freshly started pack.
	InProgress

	// Complete is final: every line was packed exactly and every box weighed.
	Complete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		InProgress: "in_progress",
		Complete:   "complete",
	}
}

// ParseStatus converts the persisted representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is InProgress or Complete.
func (s Status) Validate() error {
	if s != InProgress && s != Complete {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name: "in_progress", "complete" or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateMutate reports ErrPackIsNotInProgress for any status other than InProgress.
func (s Status) ValidateMutate() error {
	if s != InProgress {
		return fmt.Errorf("%w: status is %s", ErrPackIsNotInProgress, s)
	}
	return nil
}

// Complete transitions InProgress -> Complete.
func (s Status) Complete() (Status, error) {
	if err := s.ValidateMutate(); err != nil {
		return Unknown, err
	}
	return Complete, nil
}
