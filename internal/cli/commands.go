package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"tracker/internal/backend"
	"tracker/internal/core"
	"tracker/internal/log"
	"tracker/internal/service"
	"tracker/internal/storage"
)

const usage = `Usage: tracker <command> [flags]

Commands:
  add      Add a new expense
  list     List expenses with filters
  summary  Show expense summary
  edit     Edit an expense
  delete   Delete an expense

Run 'tracker <command> -h' for command flags.`

// Run executes one subcommand and returns the process exit code.
func Run(args []string) int {
	LoadEnvFile()
	cfg := LoadAndValidateConfig()
	logger := SetupLogger(cfg)

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	command := args[0]
	switch command {
	case "help", "-h", "--help":
		fmt.Println(usage)
		return 0
	case "add", "list", "summary", "edit", "delete":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n%s\n", command, usage)
		return 1
	}

	result, err := backend.NewFactory(logger).Create(backend.FromAppConfig(cfg))
	if err != nil {
		return fail(logger, err)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	svc := service.New(result.Repository, logger, cfg.DefaultCurrency)
	ctx := context.Background()

	switch command {
	case "add":
		return runAdd(ctx, svc, logger, args[1:])
	case "list":
		return runList(ctx, svc, logger, args[1:])
	case "summary":
		return runSummary(ctx, svc, logger, args[1:])
	case "edit":
		return runEdit(ctx, svc, logger, args[1:])
	default:
		return runDelete(ctx, svc, logger, args[1:])
	}
}

func runAdd(ctx context.Context, svc *service.Service, logger *log.Logger, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	category := fs.String("category", "", "expense category (required)")
	amount := fs.Float64("amount", 0, "expense amount, must be > 0 (required)")
	date := fs.String("date", "", "date in YYYY-MM-DD format (default: today)")
	note := fs.String("note", "", "optional note")
	currency := fs.String("currency", "", "currency label (default: configured default)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	expense, err := svc.Add(ctx, service.AddInput{
		Date:     *date,
		Category: *category,
		Amount:   *amount,
		Note:     *note,
		Currency: *currency,
	})
	if err != nil {
		return fail(logger, err)
	}
	fmt.Printf("Added: %s\n", renderExpenseLine(expense))
	return 0
}

func runList(ctx context.Context, svc *service.Service, logger *log.Logger, args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	month := fs.String("month", "", "filter by month (YYYY-MM)")
	category := fs.String("category", "", "filter by category")
	minAmount := fs.Float64("min", 0, "minimum amount (inclusive)")
	maxAmount := fs.Float64("max", 0, "maximum amount (inclusive)")
	sortBy := fs.String("sort", "date", "sort by field: date, amount or category")
	desc := fs.Bool("desc", false, "sort in descending order")
	limit := fs.Int("limit", 0, "limit number of results")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	opts := service.ListOptions{
		Filter: service.Filter{
			Month:    *month,
			Category: *category,
		},
		Descending: *desc,
	}
	var err error
	if opts.SortBy, err = service.ParseSortKey(*sortBy); err != nil {
		return fail(logger, err)
	}
	visited(fs, map[string]func(){
		"min":   func() { opts.MinAmount = minAmount },
		"max":   func() { opts.MaxAmount = maxAmount },
		"limit": func() { opts.Limit = limit },
	})

	expenses, err := svc.List(ctx, opts)
	if err != nil {
		return fail(logger, err)
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses found")
		return 0
	}
	fmt.Println(renderExpenseTable(expenses))
	return 0
}

func runSummary(ctx context.Context, svc *service.Service, logger *log.Logger, args []string) int {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	month := fs.String("month", "", "filter by month (YYYY-MM)")
	category := fs.String("category", "", "filter by category")
	from := fs.String("from", "", "start date (YYYY-MM-DD, inclusive)")
	to := fs.String("to", "", "end date (YYYY-MM-DD, inclusive)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	filter := service.Filter{
		Month:    *month,
		Category: *category,
	}
	if *from != "" {
		d, err := core.ParseDate(*from)
		if err != nil {
			return fail(logger, err)
		}
		filter.From = d
	}
	if *to != "" {
		d, err := core.ParseDate(*to)
		if err != nil {
			return fail(logger, err)
		}
		filter.To = d
	}

	summary, err := svc.Summarize(ctx, filter)
	if err != nil {
		return fail(logger, err)
	}
	if summary.Count == 0 {
		fmt.Println("No expenses found")
		return 0
	}
	fmt.Println(renderSummary(summary, filter))
	return 0
}

func runEdit(ctx context.Context, svc *service.Service, logger *log.Logger, args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.String("id", "", "expense id to edit (required)")
	amount := fs.Float64("amount", 0, "new amount")
	note := fs.String("note", "", "new note")
	category := fs.String("category", "", "new category")
	date := fs.String("date", "", "new date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return 1
	}

	// Only flags the user actually set become updates.
	var in service.EditInput
	visited(fs, map[string]func(){
		"amount":   func() { in.Amount = amount },
		"note":     func() { in.Note = note },
		"category": func() { in.Category = category },
		"date":     func() { in.Date = date },
	})
	if in.Amount == nil && in.Note == nil && in.Category == nil && in.Date == nil {
		fmt.Fprintln(os.Stderr, "Error: no fields to update")
		return 1
	}

	expense, err := svc.Edit(ctx, *id, in)
	if err != nil {
		return fail(logger, err)
	}
	fmt.Printf("Updated: %s\n", renderExpenseLine(expense))
	return 0
}

func runDelete(ctx context.Context, svc *service.Service, logger *log.Logger, args []string) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "expense id to delete (required)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return 1
	}

	expense, err := svc.Delete(ctx, *id)
	if err != nil {
		return fail(logger, err)
	}
	fmt.Printf("Deleted: %s\n", expense.ID)
	return 0
}

// visited runs the action for every flag the user explicitly set.
func visited(fs *flag.FlagSet, actions map[string]func()) {
	fs.Visit(func(f *flag.Flag) {
		if action, ok := actions[f.Name]; ok {
			action()
		}
	})
}

func fail(logger *log.Logger, err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	case core.IsValidation(err):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	case errors.Is(err, storage.ErrCorrupt):
		fmt.Fprintf(os.Stderr, "Error: %v\nThe data file could not be parsed; fix or remove it before retrying.\n", err)
	case errors.Is(err, storage.ErrWrite):
		fmt.Fprintf(os.Stderr, "Error: %v\nNothing was changed; check disk space and permissions.\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Error("command failed", log.FieldError, err.Error())
	return 1
}
