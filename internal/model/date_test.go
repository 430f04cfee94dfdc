package model

import (
	"testing"
	"time"
)

func TestParseDate_Canonical(t *testing.T) {
	date, err := ParseDate("1991-02-17")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if date.String() != "1991-02-17" {
		t.Errorf("Expected canonical form 1991-02-17, got %q", date.String())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	invalid := []string{"17/02/1991", "1991-2-17", "not-a-date", "1991-02-17T10:00:00Z"}

	for _, value := range invalid {
		if _, err := ParseDate(value); err == nil {
			t.Errorf("Expected error for %q", value)
		}
	}
}

func TestDate_Display(t *testing.T) {
	date, err := ParseDate("1991-02-17")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if date.Display() != "17/02/1991" {
		t.Errorf("Expected display form 17/02/1991, got %q", date.Display())
	}
}

func TestDate_CalendarComparison(t *testing.T) {
	// Календарное сравнение, не текстовое: "1999-12-31" < "2000-01-01"
	earlier := NewDate(1999, time.December, 31)
	later := NewDate(2000, time.January, 1)

	if !earlier.Before(later) {
		t.Error("Expected 1999-12-31 to be before 2000-01-01")
	}

	if !later.After(earlier) {
		t.Error("Expected 2000-01-01 to be after 1999-12-31")
	}

	if !earlier.Equal(NewDate(1999, time.December, 31)) {
		t.Error("Expected equal dates to compare equal")
	}
}
