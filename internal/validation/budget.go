package validation

import (
	"fmt"

	"planning-backend/internal/model"
)

// BudgetError rejects funding that exceeds the authoritative estimated cost.
type BudgetError struct {
	TotalFunding  float64
	EstimatedCost float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("total funding (%g) cannot exceed estimated cost (%g)", e.TotalFunding, e.EstimatedCost)
}

// ValidateBudget enforces funding <= estimated cost on an activity budget.
// The derived values themselves (estimated cost, total funding, funding gap)
// are computed on the model and never stored.
func ValidateBudget(b *model.ActivityBudget) error {
	if b.CalculationType != model.BudgetWithTool && b.CalculationType != model.BudgetWithoutTool {
		return fmt.Errorf("unknown budget calculation type %q", b.CalculationType)
	}
	if b.TotalFunding() > b.EstimatedCost() {
		return &BudgetError{
			TotalFunding:  b.TotalFunding(),
			EstimatedCost: b.EstimatedCost(),
		}
	}
	return nil
}
