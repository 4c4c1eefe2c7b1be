// ABOUTME: Input validation for food and entry creation.
// ABOUTME: Distinguishes hard errors from advisory warnings (kcal mismatch).
package models

import (
	"fmt"
	"strings"
)

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationStatus summarizes a validation run.
type ValidationStatus string

const (
	StatusValid   ValidationStatus = "valid"
	StatusWarning ValidationStatus = "warning"
	StatusError   ValidationStatus = "error"
)

// ValidationError is a single validation finding.
type ValidationError struct {
	Severity Severity
	Message  string
}

// Validation is the outcome of validating user input. Warnings do not block
// the write; errors do.
type Validation struct {
	Status ValidationStatus
	Errors []ValidationError
}

// OK reports whether the input may be written.
func (v Validation) OK() bool {
	return v.Status != StatusError
}

// kcalMismatchMargin is the tolerated relative deviation between declared
// calories and the value derived from the macros (4/4/9 rule).
const kcalMismatchMargin = 0.05

// FoodInput holds the fields validated when creating a food with its first
// nutritional table.
type FoodInput struct {
	Name          string
	ExistingNames []string
	BaseMeasure   float64
	Kcals         float64
	ExpectedKcals float64
}

// ValidateFoodInput checks a new food's name, base measure, and declared
// calories. A kcal/macro mismatch beyond 5% is a warning, not an error.
func ValidateFoodInput(in FoodInput) Validation {
	var errs []ValidationError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, ValidationError{
			Severity: SeverityError,
			Message:  "name cannot be empty",
		})
	} else {
		for _, existing := range in.ExistingNames {
			if strings.EqualFold(existing, name) {
				errs = append(errs, ValidationError{
					Severity: SeverityError,
					Message:  fmt.Sprintf("there already is a food named %q; foods must be uniquely named", name),
				})
				break
			}
		}
	}

	if in.BaseMeasure <= 0 {
		errs = append(errs, ValidationError{
			Severity: SeverityError,
			Message:  "the base measure can neither be empty nor zero",
		})
	}

	margin := in.ExpectedKcals * kcalMismatchMargin
	if diff := in.ExpectedKcals - in.Kcals; diff > margin || diff < -margin {
		errs = append(errs, ValidationError{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("calories and macros mismatch: expected %.2f kcal from macros, got %.2f", in.ExpectedKcals, in.Kcals),
		})
	}

	return Validation{Status: statusFor(errs), Errors: errs}
}

// ValidateEntryInput checks a journal entry's amount.
func ValidateEntryInput(amount float64) Validation {
	var errs []ValidationError
	if amount <= 0 {
		errs = append(errs, ValidationError{
			Severity: SeverityError,
			Message:  "the amount can neither be empty nor zero",
		})
	}
	return Validation{Status: statusFor(errs), Errors: errs}
}

func statusFor(errs []ValidationError) ValidationStatus {
	status := StatusValid
	for _, e := range errs {
		switch e.Severity {
		case SeverityError:
			return StatusError
		case SeverityWarning:
			status = StatusWarning
		}
	}
	return status
}
