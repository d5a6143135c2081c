package core

// CategoryAmount represents an amount spent in a named category.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Outcome classifies a month by the sign of its saving.
type Outcome int

const (
	Overspent Outcome = iota - 1
	BrokeEven
	UnderBudget
)

func (o Outcome) String() string {
	switch o {
	case Overspent:
		return "overspent"
	case BrokeEven:
		return "broke_even"
	case UnderBudget:
		return "under_budget"
	}
	return "unknown"
}

// Classify returns the outcome for the budget's saving.
func Classify(b Budget) Outcome {
	switch s := b.Saving(); {
	case s > 0:
		return UnderBudget
	case s == 0:
		return BrokeEven
	default:
		return Overspent
	}
}

// SavingTier grades a positive saving rate.
type SavingTier int

const (
	TierLow       SavingTier = iota // below 10%
	TierFair                        // 10% up to 20%
	TierExcellent                   // 20% and above
)

// TierFor returns the tier for a saving rate expressed in percent.
func TierFor(percent float64) SavingTier {
	switch {
	case percent < 10:
		return TierLow
	case percent < 20:
		return TierFair
	default:
		return TierExcellent
	}
}

// Tip is the advice shown for the tier.
func (t SavingTier) Tip() string {
	switch t {
	case TierLow:
		return "Tip: Try to save at least 10% of your income."
	case TierFair:
		return "Good! Aim for 20% savings if possible."
	default:
		return "Excellent! You are saving very well."
	}
}
