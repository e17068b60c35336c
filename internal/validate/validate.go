// Package validate holds the per-step rules of the build intake wizard.
//
// Validation never fails: every rule returns a possibly empty list of field
// errors, and an empty list means the step may advance.
package validate

import (
	"regexp"
	"strings"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/sanitize"
)

// Step numbers of the canonical wizard.
const (
	StepBudgetAndUse = 1
	StepPerformance  = 2
	StepPreferences  = 3
	StepPeripherals  = 4
	StepSummary      = 5
)

// Budget bounds.
const (
	MinBudget = 300
	MaxBudget = 50000
)

// Target FPS bounds.
const (
	MinTargetFPS = 30
	MaxTargetFPS = 240
)

// Error is a problem with one field of the draft. Field uses the JSON path of
// the draft, e.g. "budget.min".
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the result of one validation pass. It satisfies error so callers
// can return it directly when a transition is refused.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Message
	}
	return strings.Join(msgs, "; ")
}

// For returns the message for field, if any.
func (e Errors) For(field string) (string, bool) {
	for _, err := range e {
		if err.Field == field {
			return err.Message, true
		}
	}
	return "", false
}

// Fields lists the failing fields in order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Field
	}
	return out
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateBudget checks a budget range against the accepted bounds.
func ValidateBudget(min, max int) Errors {
	var errs Errors
	if min < MinBudget {
		errs = append(errs, Error{
			Field:   "budget.min",
			Message: "Minimum budget should be at least $300",
		})
	}
	if max > MaxBudget {
		errs = append(errs, Error{
			Field:   "budget.max",
			Message: "Maximum budget seems unrealistic. Please contact us for enterprise builds.",
		})
	}
	if min >= max {
		errs = append(errs, Error{
			Field:   "budget",
			Message: "Maximum budget must be higher than minimum budget",
		})
	}
	return errs
}

// Validate runs the rules of step against d. Steps without rules, including
// unknown step numbers, return nil.
//
// The summary step sanitizes d.AdditionalNotes in place before accepting it.
func Validate(d *buildform.Draft, step int) Errors {
	if d == nil {
		d = &buildform.Draft{}
	}
	switch step {
	case StepBudgetAndUse:
		return budgetAndUse(d)
	case StepPerformance:
		return performance(d)
	case StepSummary:
		return summary(d)
	default:
		return nil
	}
}

func budgetAndUse(d *buildform.Draft) Errors {
	var errs Errors
	if d.Budget == nil {
		errs = append(errs, Error{Field: "budget", Message: "Budget range is required"})
	} else {
		errs = append(errs, ValidateBudget(d.Budget.Min, d.Budget.Max)...)
	}
	if len(d.PrimaryUse) == 0 {
		errs = append(errs, Error{
			Field:   "primaryUse",
			Message: "Please select at least one primary use case",
		})
	}
	return errs
}

func performance(d *buildform.Draft) Errors {
	var errs Errors
	gp := d.GamingPerformance
	if d.NeedsGaming() && gp == nil {
		errs = append(errs, Error{
			Field:   "gamingPerformance",
			Message: "Gaming performance requirements are needed for gaming builds",
		})
	}
	if gp != nil && gp.TargetFPS != nil && (*gp.TargetFPS < MinTargetFPS || *gp.TargetFPS > MaxTargetFPS) {
		errs = append(errs, Error{
			Field:   "gamingPerformance.targetFPS",
			Message: "Target FPS should be between 30 and 240",
		})
	}
	return errs
}

func summary(d *buildform.Draft) Errors {
	var errs Errors
	if email := buildform.Text(d.Email); email != "" && !IsValidEmail(email) {
		errs = append(errs, Error{Field: "email", Message: "Please enter a valid email address"})
	}
	if buildform.Text(d.ExperienceLevel) == "" {
		errs = append(errs, Error{
			Field:   "experienceLevel",
			Message: "Please select your PC building experience level",
		})
	}
	if d.AdditionalNotes != nil && *d.AdditionalNotes != "" {
		d.AdditionalNotes = buildform.Ptr(sanitize.String(*d.AdditionalNotes))
	}
	return errs
}
