package service

import (
	"fmt"
	"strings"
	"time"
)

// FieldViolation is one broken field rule (required / min / enum).
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of an input, not just the
// first, so a client can fix a whole payload in one round trip.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// violations accumulates field rule checks and yields a *ValidationError
// only when at least one rule broke.
type violations struct {
	list []FieldViolation
}

func (v *violations) add(field, message string) {
	v.list = append(v.list, FieldViolation{Field: field, Message: message})
}

func (v *violations) required(field, label string, present bool) {
	if !present {
		v.add(field, label+" is required")
	}
}

func (v *violations) nonNegative(field, label string, value *float64) {
	if value != nil && *value < 0 {
		v.add(field, label+" must be a positive number")
	}
}

func (v *violations) err() *ValidationError {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

const dateLayout = "2006-01-02"

// parseDate accepts a plain calendar date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
}
