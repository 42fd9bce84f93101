// Package service implements the expense operations on top of a storage
// repository: create, query, summarize, edit and delete. Every mutating
// operation is a full load-modify-save cycle.
package service

import (
	"context"
	"fmt"
	"strings"

	"tracker/internal/core"
	"tracker/internal/log"
	"tracker/internal/storage"
)

type Service struct {
	repo            storage.Repository
	logger          *log.Logger
	defaultCurrency string
}

func New(repo storage.Repository, logger *log.Logger, defaultCurrency string) *Service {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Service{
		repo:            repo,
		logger:          logger.WithComponent("service"),
		defaultCurrency: defaultCurrency,
	}
}

// AddInput carries the raw add parameters. Date may be empty, meaning
// today; Currency may be empty, meaning the configured default.
type AddInput struct {
	Date     string
	Category string
	Amount   float64
	Note     string
	Currency string
}

// Add validates the input, assigns a fresh id and persists the new record.
func (s *Service) Add(ctx context.Context, in AddInput) (core.Expense, error) {
	s.logger.Debug("adding expense",
		log.FieldOperation, "add",
		log.FieldCategory, in.Category,
		log.FieldAmount, in.Amount)

	category := core.NormalizeCategory(in.Category)
	if category == "" {
		return core.Expense{}, s.fail(ctx, "add", core.ErrEmptyCategory)
	}
	if err := core.ValidateAmount(in.Amount); err != nil {
		return core.Expense{}, s.fail(ctx, "add", err)
	}

	date := core.Today()
	if in.Date != "" {
		var err error
		if date, err = core.ParseDate(in.Date); err != nil {
			return core.Expense{}, s.fail(ctx, "add", err)
		}
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return core.Expense{}, s.fail(ctx, "add", fmt.Errorf("load expenses: %w", err))
	}

	expense := core.Expense{
		ID:       core.NextID(date, records),
		Date:     date,
		Category: category,
		Amount:   in.Amount,
		Currency: currency,
		Note:     in.Note,
	}
	records[expense.ID] = expense

	if err := s.repo.Save(ctx, records); err != nil {
		return core.Expense{}, s.fail(ctx, "add", fmt.Errorf("save expenses: %w", err))
	}

	s.logger.InfoContext(ctx, "expense added",
		log.FieldOperation, "add",
		log.FieldExpenseID, expense.ID,
		log.FieldCategory, expense.Category,
		log.FieldAmount, expense.Amount,
		log.FieldCurrency, expense.Currency)
	return expense, nil
}

// EditInput carries partial updates: only non-nil fields change.
type EditInput struct {
	Date     *string
	Category *string
	Amount   *float64
	Note     *string
}

// Edit applies the supplied fields to an existing record. Each supplied
// field is validated exactly as in Add; unset fields are preserved.
func (s *Service) Edit(ctx context.Context, id string, in EditInput) (core.Expense, error) {
	s.logger.Debug("editing expense", log.FieldOperation, "edit", log.FieldExpenseID, id)

	// Validate everything up front so a bad input never reaches the store.
	var (
		newDate     core.Date
		newCategory string
		err         error
	)
	if in.Date != nil {
		if newDate, err = core.ParseDate(*in.Date); err != nil {
			return core.Expense{}, s.fail(ctx, "edit", err)
		}
	}
	if in.Category != nil {
		newCategory = core.NormalizeCategory(*in.Category)
		if newCategory == "" {
			return core.Expense{}, s.fail(ctx, "edit", core.ErrEmptyCategory)
		}
	}
	if in.Amount != nil {
		if err := core.ValidateAmount(*in.Amount); err != nil {
			return core.Expense{}, s.fail(ctx, "edit", err)
		}
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return core.Expense{}, s.fail(ctx, "edit", fmt.Errorf("load expenses: %w", err))
	}

	expense, ok := records[id]
	if !ok {
		return core.Expense{}, s.fail(ctx, "edit", fmt.Errorf("%s: %w", id, core.ErrNotFound))
	}

	if in.Date != nil {
		expense.Date = newDate
	}
	if in.Category != nil {
		expense.Category = newCategory
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.Note != nil {
		expense.Note = *in.Note
	}
	records[id] = expense

	if err := s.repo.Save(ctx, records); err != nil {
		return core.Expense{}, s.fail(ctx, "edit", fmt.Errorf("save expenses: %w", err))
	}

	s.logger.InfoContext(ctx, "expense edited",
		log.FieldOperation, "edit",
		log.FieldExpenseID, id)
	return expense, nil
}

// Delete removes a record and returns it.
func (s *Service) Delete(ctx context.Context, id string) (core.Expense, error) {
	s.logger.Debug("deleting expense", log.FieldOperation, "delete", log.FieldExpenseID, id)

	records, err := s.repo.Load(ctx)
	if err != nil {
		return core.Expense{}, s.fail(ctx, "delete", fmt.Errorf("load expenses: %w", err))
	}

	expense, ok := records[id]
	if !ok {
		return core.Expense{}, s.fail(ctx, "delete", fmt.Errorf("%s: %w", id, core.ErrNotFound))
	}
	delete(records, id)

	if err := s.repo.Save(ctx, records); err != nil {
		return core.Expense{}, s.fail(ctx, "delete", fmt.Errorf("save expenses: %w", err))
	}

	s.logger.InfoContext(ctx, "expense deleted",
		log.FieldOperation, "delete",
		log.FieldExpenseID, id)
	return expense, nil
}

func (s *Service) fail(ctx context.Context, operation string, err error) error {
	s.logger.ErrorContext(ctx, "operation failed",
		log.FieldOperation, operation,
		log.FieldError, err.Error())
	return err
}
