package service

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	d, err := parseDate("2024-01-15")
	if err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 15 {
		t.Fatalf("parsed %v", d)
	}

	if _, err := parseDate("2024-01-15T10:30:00Z"); err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if _, err := parseDate("15/01/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValidationErrorJoinsAllMessages(t *testing.T) {
	var v violations
	v.required("a", "A", false)
	v.add("b", "B must be either X or Y")
	err := v.err()
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Violations) != 2 {
		t.Fatalf("violations = %d, want 2", len(err.Violations))
	}
	if err.Error() != "A is required; B must be either X or Y" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestViolationsEmpty(t *testing.T) {
	var v violations
	v.required("a", "A", true)
	v.nonNegative("b", "B", f64(0))
	if err := v.err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
