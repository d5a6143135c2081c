package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"budget/internal/core"
	applog "budget/internal/log"
	"budget/internal/report"
)

const (
	incomePrompt  = "Enter your Monthly Income (" + core.CurrencySymbol + "): "
	expensesIntro = "\nEnter monthly expenses (press Enter for 0):\n\n"
	msgTotalRange = "   ⚠ Total expenditure is too large. Enter a smaller value.\n\n"
)

// AmountReader supplies validated amounts for a prompt.
type AmountReader interface {
	ReadAmount(ctx context.Context, prompt string) (core.Money, error)
}

// BudgetSession runs one interactive budget: header, prompts, then reports.
type BudgetSession struct {
	in       AmountReader
	out      io.Writer
	renderer *report.Renderer
	logger   *applog.Logger
}

func NewBudgetSession(in AmountReader, out io.Writer, logger *applog.Logger) *BudgetSession {
	if logger == nil {
		logger = applog.Discard()
	}
	return &BudgetSession{
		in:       in,
		out:      out,
		renderer: report.NewRenderer(out),
		logger:   logger.WithComponent(applog.ComponentBudget),
	}
}

// Run collects income and every category amount, then renders the expense
// table and the summary. No report is written if collection fails.
func (s *BudgetSession) Run(ctx context.Context) (core.Budget, error) {
	if err := s.renderer.Header(); err != nil {
		return core.Budget{}, s.renderFailed(ctx, "header", err)
	}

	b, err := s.collect(ctx)
	if err != nil {
		return core.Budget{}, err
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("validate budget: %w", err)
	}

	outcome := core.Classify(b)
	s.logger.InfoContext(ctx, "Budget computed",
		applog.NewFields().
			WithOperation(applog.OpCompute).
			WithBudget(int64(b.Income), int64(b.Total()), int64(b.Saving()), outcome.String()).
			ToSlice()...)

	if err := s.renderer.ExpenseTable(b); err != nil {
		return b, s.renderFailed(ctx, "expense table", err)
	}
	if err := s.renderer.Summary(b); err != nil {
		return b, s.renderFailed(ctx, "summary", err)
	}
	return b, nil
}

// collect reads income and one amount per category. An amount that would push
// the total beyond the Money range is refused and asked for again.
func (s *BudgetSession) collect(ctx context.Context) (core.Budget, error) {
	income, err := s.in.ReadAmount(ctx, incomePrompt)
	if err != nil {
		return core.Budget{}, fmt.Errorf("read income: %w", err)
	}
	b := core.Budget{
		Income:   income,
		Expenses: make([]core.CategoryAmount, 0, len(core.Categories)),
	}

	if _, err := io.WriteString(s.out, expensesIntro); err != nil {
		return core.Budget{}, fmt.Errorf("write prompt: %w", err)
	}

	var total core.Money
	for _, c := range core.Categories {
		logger := s.logger.With(applog.FieldCategory, c.Name)
		for {
			amount, err := s.in.ReadAmount(ctx, c.Prompt())
			if err != nil {
				return core.Budget{}, fmt.Errorf("read %s: %w", c.Name, err)
			}

			next, err := total.Add(amount)
			if errors.Is(err, core.ErrAmountOverflow) {
				logger.Warn("Expense rejected",
					applog.FieldOperation, applog.OpValidate,
					applog.FieldAmount, int64(amount),
					applog.FieldTotal, int64(total),
					applog.FieldReason, err.Error())
				if _, err := io.WriteString(s.out, msgTotalRange); err != nil {
					return core.Budget{}, fmt.Errorf("write prompt: %w", err)
				}
				continue
			}

			logger.DebugContext(ctx, "Expense collected",
				applog.FieldOperation, applog.OpCollect,
				applog.FieldAmount, int64(amount))
			total = next
			b.Expenses = append(b.Expenses, core.CategoryAmount{Name: c.Name, Amount: amount})
			break
		}
	}
	return b, nil
}

func (s *BudgetSession) renderFailed(ctx context.Context, what string, err error) error {
	s.logger.WithComponent(applog.ComponentReport).ErrorContext(ctx, "Render failed",
		applog.NewFields().
			WithOperation(applog.OpRender).
			WithError(err).
			WithErrorType(applog.ErrorTypeInternal).
			ToSlice()...)
	return fmt.Errorf("render %s: %w", what, err)
}
