package core

import "testing"

func TestNextIDEmptySet(t *testing.T) {
	got := NextID(NewDate(2026, 1, 15), nil)
	if got != "EXP-20260115-0001" {
		t.Fatalf("NextID on empty set = %q", got)
	}
}

func TestNextIDIncrementsPerDay(t *testing.T) {
	records := map[string]Expense{
		"EXP-20260115-0001": {},
		"EXP-20260115-0007": {},
		"EXP-20260116-0003": {},
	}
	if got := NextID(NewDate(2026, 1, 15), records); got != "EXP-20260115-0008" {
		t.Fatalf("same-day id = %q, want EXP-20260115-0008", got)
	}
	if got := NextID(NewDate(2026, 1, 16), records); got != "EXP-20260116-0004" {
		t.Fatalf("next-day id = %q, want EXP-20260116-0004", got)
	}
	if got := NextID(NewDate(2026, 1, 17), records); got != "EXP-20260117-0001" {
		t.Fatalf("fresh-day id = %q, want EXP-20260117-0001", got)
	}
}

func TestNextIDIgnoresForeignIDs(t *testing.T) {
	records := map[string]Expense{
		"EXP-20260115-abcd": {},
		"OTHER-20260115-0002": {},
		"EXP-20260115-0002": {},
	}
	if got := NextID(NewDate(2026, 1, 15), records); got != "EXP-20260115-0003" {
		t.Fatalf("got %q, want EXP-20260115-0003", got)
	}
}
