package service

import (
	"context"
	"fmt"
	"sort"

	"tracker/internal/core"
	"tracker/internal/log"
)

// SortKey selects the list ordering.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// ParseSortKey maps a flag value onto a sort key; empty means date.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortByDate, nil
	case SortByDate, SortByAmount, SortByCategory:
		return SortKey(s), nil
	default:
		return "", core.ErrInvalidSort
	}
}

// Filter narrows the record set. All supplied predicates are ANDed;
// zero values mean "not supplied". From and To are inclusive bounds.
type Filter struct {
	Month     string
	Category  string
	MinAmount *float64
	MaxAmount *float64
	From      core.Date
	To        core.Date
}

func (f Filter) Validate() error {
	if f.Month != "" {
		if err := core.ValidateMonth(f.Month); err != nil {
			return err
		}
	}
	return nil
}

func (f Filter) matches(e core.Expense) bool {
	if f.Month != "" && !e.Date.InMonth(f.Month) {
		return false
	}
	if f.Category != "" && e.Category != core.NormalizeCategory(f.Category) {
		return false
	}
	if f.MinAmount != nil && e.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && e.Amount > *f.MaxAmount {
		return false
	}
	if !f.From.IsZero() && e.Date.Compare(f.From) < 0 {
		return false
	}
	if !f.To.IsZero() && e.Date.Compare(f.To) > 0 {
		return false
	}
	return true
}

// ListOptions combines a filter with ordering and truncation.
type ListOptions struct {
	Filter
	SortBy     SortKey
	Descending bool
	Limit      *int
}

// List returns the filtered records, sorted by the requested key with id
// as the deterministic tiebreak, reversed when descending, truncated to
// the limit. Pure read, no side effects.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]core.Expense, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	if opts.Limit != nil && *opts.Limit < 0 {
		return nil, s.fail(ctx, "list", core.ErrInvalidLimit)
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}
	switch sortBy {
	case SortByDate, SortByAmount, SortByCategory:
	default:
		return nil, s.fail(ctx, "list", core.ErrInvalidSort)
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", fmt.Errorf("load expenses: %w", err))
	}

	matched := filterRecords(records, opts.Filter)
	sortExpenses(matched, sortBy)
	if opts.Descending {
		reverse(matched)
	}
	if opts.Limit != nil && *opts.Limit < len(matched) {
		matched = matched[:*opts.Limit]
	}

	s.logger.InfoContext(ctx, "expenses listed",
		log.FieldOperation, "list",
		log.FieldCount, len(matched))
	return matched, nil
}

// CategoryTotal is one category's share of the summary.
type CategoryTotal struct {
	Category string
	Total    float64
	Percent  float64
}

// Summary aggregates the filtered record set.
type Summary struct {
	Count         int
	GrandTotal    float64
	ByCategory    []CategoryTotal
	AveragePerDay float64
	Top           *core.Expense
	Currency      string
}

// Summarize filters exactly like List and aggregates totals, per-category
// percentages, per-day average and the highest-amount record.
func (s *Service) Summarize(ctx context.Context, f Filter) (Summary, error) {
	if err := f.Validate(); err != nil {
		return Summary{}, s.fail(ctx, "summary", err)
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return Summary{}, s.fail(ctx, "summary", fmt.Errorf("load expenses: %w", err))
	}

	matched := filterRecords(records, f)
	summary := Summary{
		Count:    len(matched),
		Currency: s.defaultCurrency,
	}

	byCategory := make(map[string]float64)
	for i := range matched {
		e := matched[i]
		summary.GrandTotal += e.Amount
		byCategory[e.Category] += e.Amount
		if summary.Top == nil || higherRanked(e, *summary.Top) {
			summary.Top = &matched[i]
		}
	}

	for category, total := range byCategory {
		ct := CategoryTotal{Category: category, Total: total}
		if summary.GrandTotal > 0 {
			ct.Percent = total / summary.GrandTotal * 100
		}
		summary.ByCategory = append(summary.ByCategory, ct)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Category < b.Category
	})

	if days := spanDays(matched, f); days > 0 {
		summary.AveragePerDay = summary.GrandTotal / float64(days)
	}

	s.logger.InfoContext(ctx, "summary generated",
		log.FieldOperation, "summary",
		log.FieldCount, summary.Count,
		log.FieldAmount, summary.GrandTotal)
	return summary, nil
}

func filterRecords(records map[string]core.Expense, f Filter) []core.Expense {
	matched := make([]core.Expense, 0, len(records))
	for _, e := range records {
		if f.matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func sortExpenses(items []core.Expense, key SortKey) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortByAmount:
			if a.Amount != b.Amount {
				return a.Amount < b.Amount
			}
		case SortByCategory:
			if a.Category != b.Category {
				return a.Category < b.Category
			}
		default:
			if c := a.Date.Compare(b.Date); c != 0 {
				return c < 0
			}
		}
		return a.ID < b.ID
	})
}

func reverse(items []core.Expense) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// higherRanked reports whether a beats b for the "highest expense" slot:
// larger amount, ties broken by earlier date, then by id.
func higherRanked(a, b core.Expense) bool {
	if a.Amount != b.Amount {
		return a.Amount > b.Amount
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

// spanDays is the per-day average denominator: the requested range length
// when both bounds were supplied, otherwise the inclusive span between the
// earliest and latest matched dates. Zero when nothing matched.
func spanDays(matched []core.Expense, f Filter) int {
	if len(matched) == 0 {
		return 0
	}
	if !f.From.IsZero() && !f.To.IsZero() {
		return f.From.DaysUntil(f.To)
	}
	earliest, latest := matched[0].Date, matched[0].Date
	for _, e := range matched[1:] {
		if e.Date.Compare(earliest) < 0 {
			earliest = e.Date
		}
		if e.Date.Compare(latest) > 0 {
			latest = e.Date
		}
	}
	return earliest.DaysUntil(latest)
}
