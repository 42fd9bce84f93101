package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tracker/internal/core"
	"tracker/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	topStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

func renderExpenseLine(e core.Expense) string {
	return fmt.Sprintf("%s | %s | %s | %.2f %s | %s",
		e.ID, e.Date, e.Category, e.Amount, e.Currency, e.Note)
}

func renderExpenseTable(expenses []core.Expense) string {
	noteWidth := len("NOTE")
	categoryWidth := len("CATEGORY")
	for _, e := range expenses {
		if len(e.Category) > categoryWidth {
			categoryWidth = len(e.Category)
		}
		if len(e.Note) > noteWidth {
			noteWidth = len(e.Note)
		}
	}

	var b strings.Builder
	format := fmt.Sprintf("%%-17s  %%-10s  %%-%ds  %%12s  %%-8s  %%-%ds", categoryWidth, noteWidth)
	b.WriteString(headerStyle.Render(fmt.Sprintf(format, "ID", "DATE", "CATEGORY", "AMOUNT", "CURRENCY", "NOTE")))
	b.WriteString("\n")
	for _, e := range expenses {
		b.WriteString(fmt.Sprintf(format,
			e.ID, e.Date.String(), e.Category, fmt.Sprintf("%.2f", e.Amount), e.Currency, e.Note))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("Total: %d expense(s)", len(expenses))))
	return b.String()
}

func renderSummary(s service.Summary, f service.Filter) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("EXPENSE SUMMARY"))
	b.WriteString("\n")

	if f.Month != "" {
		b.WriteString(faintStyle.Render("Period: " + f.Month))
		b.WriteString("\n")
	} else if !f.From.IsZero() || !f.To.IsZero() {
		from, to := "start", "end"
		if !f.From.IsZero() {
			from = f.From.String()
		}
		if !f.To.IsZero() {
			to = f.To.String()
		}
		b.WriteString(faintStyle.Render(fmt.Sprintf("Period: %s to %s", from, to)))
		b.WriteString("\n")
	}
	if f.Category != "" {
		b.WriteString(faintStyle.Render("Category: " + core.NormalizeCategory(f.Category)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, ct := range s.ByCategory {
		b.WriteString(fmt.Sprintf("%-20s %12.2f %s (%5.1f%%)\n", ct.Category, ct.Total, s.Currency, ct.Percent))
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%-20s %12.2f %s", "GRAND TOTAL", s.GrandTotal, s.Currency)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-20s %12d\n", "Expenses", s.Count))
	b.WriteString(fmt.Sprintf("%-20s %12.2f %s\n", "Average per day", s.AveragePerDay, s.Currency))
	if s.Top != nil {
		b.WriteString(topStyle.Render("Highest: " + renderExpenseLine(*s.Top)))
	}
	return b.String()
}
