package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict with current state")
	ErrPartialWrite = errors.New("write sequence partially applied")
	ErrAdvancement  = errors.New("knockout advancement failed")
)

// WriteError reports the step a multi-step write stopped at. Steps listed in Completed
// are committed and were not rolled back.
type WriteError struct {
	Operation string
	Step      string
	Completed []string
	// Keys holds ids of records written by completed steps, for reconciliation.
	Keys      map[string]string
	Err       error
}

func (e *WriteError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("%s: step %s failed: %v", e.Operation, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: step %s failed after [%s]: %v",
		e.Operation, e.Step, strings.Join(e.Completed, ","), e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is matches ErrPartialWrite only when something was committed before the failure.
func (e *WriteError) Is(target error) bool {
	return target == ErrPartialWrite && len(e.Completed) > 0
}

// LastCompleted is the cursor a retry resumes after. Empty when nothing committed.
func (e *WriteError) LastCompleted() string {
	if len(e.Completed) == 0 {
		return ""
	}
	return e.Completed[len(e.Completed)-1]
}

// AdvancementError is returned next to a committed knockout result whose winner or
// loser could not be moved on.
type AdvancementError struct {
	MatchID string
	Err     error
}

func (e *AdvancementError) Error() string {
	return fmt.Sprintf("advance knockout match %s: %v", e.MatchID, e.Err)
}

func (e *AdvancementError) Unwrap() error {
	return e.Err
}

func (e *AdvancementError) Is(target error) bool {
	return target == ErrAdvancement
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
