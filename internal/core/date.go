package core

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used everywhere: in the store,
// on the CLI and in log output.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format accepted by month filters.
const MonthLayout = "2006-01"

// Date is a calendar date (year-month-day) without a time component.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ValidateMonth checks a YYYY-MM filter string.
func ValidateMonth(s string) error {
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return ErrInvalidMonth
	}
	return nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// InMonth reports whether the date falls inside the given YYYY-MM month.
func (d Date) InMonth(month string) bool {
	return d.Format(MonthLayout) == month
}

// Compare orders dates chronologically: -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

// DaysUntil returns the inclusive number of calendar days from d to other.
// d itself counts, so DaysUntil of the same day is 1.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time).Hours()/24) + 1
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
