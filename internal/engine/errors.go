package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrInvalidGoal = errors.New("invalid goal")
	ErrNotFound    = errors.New("not found")
)

// ValidationError reports input that violates a ledger or simulator rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidGoalError is returned when a goal target is not positive.
type InvalidGoalError struct {
	Target decimal.Decimal
}

func (e *InvalidGoalError) Error() string {
	return fmt.Sprintf("goal target must be positive, got %s", e.Target.String())
}

func (e *InvalidGoalError) Is(target error) bool {
	return target == ErrInvalidGoal
}

// NotFoundError is reserved for lookups of a specific entity by id.
// Deletes never return it.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
