package report

import (
	"fmt"
	"io"
	"strings"

	"budget/internal/core"
)

const (
	headerTitle  = "PERSONAL MONTHLY BUDGET TRACKER"
	tableTitle   = "EXPENSE BREAKDOWN"
	summaryTitle = "SUMMARY"

	blankNote = " Note: Press ENTER to enter 0 for any item."
)

// Renderer writes the budget reports to an output stream.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Header writes the banner shown before the first prompt.
func (r *Renderer) Header() error {
	rule := strings.Repeat("═", PanelWidth)
	_, err := fmt.Fprintf(r.w, "\n%s\n%s\n%s\n\n", rule, center(" "+headerTitle+" ", PanelWidth), rule)
	return err
}

// ExpenseTable writes one row per category with its share of income and a
// fill-bar, followed by the total and the remaining saving.
func (r *Renderer) ExpenseTable(b core.Budget) error {
	p := newPanel().
		Top().
		Title(tableTitle).
		Separator().
		Row(fmt.Sprintf(" %-18s %12s   %8s   %-12s", "Category", "Amount", "%Income", "Usage")).
		Separator()

	for _, e := range b.Expenses {
		pct := b.PercentOfIncome(e.Amount)
		p.Row(fmt.Sprintf(" %-18s %12s   %7.1f%%   %-12s", e.Name, e.Amount, pct, Bar(pct)))
	}

	p.Separator().
		Row(fmt.Sprintf(" %-18s %12s", "Total Expenditure", b.Total())).
		Row(fmt.Sprintf(" %-18s %12s", "Remaining / Saving", b.Saving())).
		Bottom()

	_, err := p.WriteTo(r.w)
	return err
}

// Summary writes the verdict panel for the month.
func (r *Renderer) Summary(b core.Budget) error {
	p := newPanel().
		Top().
		Title(summaryTitle).
		Separator()

	saving := b.Saving()
	switch core.Classify(b) {
	case core.UnderBudget:
		pct := b.PercentOfIncome(saving)
		p.Row("  ✅  Well done — you're under budget!").
			Row(fmt.Sprintf("      Saved %s (%.1f%% of income).", saving, pct)).
			Blank().
			Row("  💡 " + core.TierFor(pct).Tip())
	case core.BrokeEven:
		p.Row("  ⚠  You broke even — no savings this month.").
			Row("  💡 Try cutting small recurring expenses.")
	default:
		p.Row(fmt.Sprintf("  ❌  Overspent by %s.", -saving)).
			Row("  💡 Reduce non-essential expenses.")
	}

	p.Separator().
		Row(blankNote).
		Bottom()

	_, err := p.WriteTo(r.w)
	return err
}
