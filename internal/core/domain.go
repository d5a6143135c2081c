package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type (
	// Money is an amount in whole currency units.
	Money int64

	Category struct {
		Name string
		Icon string
	}

	Budget struct {
		Income   Money
		Expenses []CategoryAmount // in Categories order
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrAmountOverflow = errors.New("amount out of range")
	ErrEmptyCategory  = errors.New("empty category name")
)

// Categories is the fixed, ordered set of monthly expense buckets.
var Categories = []Category{
	{Name: "Rent", Icon: "🏠"},
	{Name: "Clothing", Icon: "👕"},
	{Name: "Child Education", Icon: "📚"},
	{Name: "Salon", Icon: "💇"},
	{Name: "Electricity", Icon: "💡"},
	{Name: "Mobile Recharge", Icon: "📱"},
	{Name: "Gas", Icon: "⛽"},
	{Name: "Food", Icon: "🍽"},
}

// Prompt returns the interactive prompt for the category, e.g. "🏠 Rent (₹): ".
func (c Category) Prompt() string {
	return c.Icon + " " + c.Name + " (" + CurrencySymbol + "): "
}

func (m Money) Validate() error {
	if m < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Add returns m+n, or ErrAmountOverflow when the sum does not fit in int64.
func (m Money) Add(n Money) (Money, error) {
	if (n > 0 && m > math.MaxInt64-n) || (n < 0 && m < math.MinInt64-n) {
		return 0, ErrAmountOverflow
	}
	return m + n, nil
}

// Validate checks every amount and that the total fits in Money. A valid
// budget has Total and Saving free of overflow.
func (b Budget) Validate() error {
	if err := b.Income.Validate(); err != nil {
		return fmt.Errorf("invalid income: %w", err)
	}
	var total Money
	for _, e := range b.Expenses {
		if strings.TrimSpace(e.Name) == "" {
			return ErrEmptyCategory
		}
		if err := e.Amount.Validate(); err != nil {
			return fmt.Errorf("invalid amount for %s: %w", e.Name, err)
		}
		var err error
		if total, err = total.Add(e.Amount); err != nil {
			return fmt.Errorf("total expenditure: %w", err)
		}
	}
	return nil
}

// Total returns the sum of all expense amounts. Call Validate first when the
// amounts are untrusted.
func (b Budget) Total() Money {
	var total Money
	for _, e := range b.Expenses {
		total += e.Amount
	}
	return total
}

// Saving returns income minus total. Negative means overspent.
func (b Budget) Saving() Money {
	return b.Income - b.Total()
}

// PercentOfIncome returns m as a percentage of income, or 0 when there is no income.
func (b Budget) PercentOfIncome(m Money) float64 {
	if b.Income <= 0 {
		return 0
	}
	return float64(m) / float64(b.Income) * 100
}
