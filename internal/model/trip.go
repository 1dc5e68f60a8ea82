package model

// BudgetTier is the trip budget bracket selected in the planning form.
type BudgetTier string

const (
	BudgetTierBudget BudgetTier = "budget"
	BudgetTierMid    BudgetTier = "mid"
	BudgetTierLuxury BudgetTier = "luxury"
)

// Wording returns the budget phrasing used inside the agent prompt.
// Unknown tiers map to "flexible" rather than erroring: the prompt builder
// performs presence checks only.
func (b BudgetTier) Wording() string {
	switch b {
	case BudgetTierBudget:
		return "under ₹50,000"
	case BudgetTierMid:
		return "₹50,000-1,50,000"
	case BudgetTierLuxury:
		return "over ₹1,50,000"
	default:
		return "flexible"
	}
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
