package core

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-01-15", true},
		{"2026-12-31", true},
		{"2026-02-30", false},
		{"2026-1-5", false},
		{"15-01-2026", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDate(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok {
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDate(%q): want ErrInvalidDate, got %v", tc.in, err)
			}
			continue
		}
		if d.String() != tc.in {
			t.Fatalf("ParseDate(%q).String() = %q", tc.in, d.String())
		}
	}
}

func TestValidateMonth(t *testing.T) {
	if err := ValidateMonth("2026-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"2026-13", "2026", "jan-2026", ""} {
		if !errors.Is(ValidateMonth(in), ErrInvalidMonth) {
			t.Fatalf("ValidateMonth(%q): want ErrInvalidMonth", in)
		}
	}
}

func TestDateInMonth(t *testing.T) {
	d := NewDate(2026, 1, 31)
	if !d.InMonth("2026-01") {
		t.Fatal("2026-01-31 should fall in 2026-01")
	}
	if d.InMonth("2026-02") {
		t.Fatal("2026-01-31 should not fall in 2026-02")
	}
}

func TestDateDaysUntil(t *testing.T) {
	from := NewDate(2026, 1, 1)
	if got := from.DaysUntil(from); got != 1 {
		t.Fatalf("same day span = %d, want 1", got)
	}
	if got := from.DaysUntil(NewDate(2026, 1, 31)); got != 31 {
		t.Fatalf("january span = %d, want 31", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Food", "food"},
		{"  Transport  ", "transport"},
		{"GROCERIES", "groceries"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCategory(tc.in); got != tc.want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:       "EXP-20260115-0001",
		Date:     NewDate(2026, 1, 15),
		Category: "food",
		Amount:   12.5,
		Currency: "BDT",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Expense)
		want   error
	}{
		{"zero amount", func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = -5 }, ErrInvalidAmount},
		{"empty category", func(e *Expense) { e.Category = "  " }, ErrEmptyCategory},
		{"zero date", func(e *Expense) { e.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := good
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	for _, err := range []error{ErrEmptyCategory, ErrInvalidAmount, ErrInvalidDate, ErrInvalidMonth, ErrInvalidSort, ErrInvalidLimit} {
		if !IsValidation(err) {
			t.Fatalf("%v should be a validation error", err)
		}
	}
	if IsValidation(ErrNotFound) {
		t.Fatal("ErrNotFound is not a validation error")
	}
}
