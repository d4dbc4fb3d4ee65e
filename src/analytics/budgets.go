package analytics

import "fintrack-server/src/models"

// BudgetStatus reports one budget joined against actual spend for its month.
type BudgetStatus struct {
	BudgetID     string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CategoryIcon string  `json:"category_icon"`
	MonthlyLimit float64 `json:"monthly_limit"`
	Spent        float64 `json:"spent"`
	IsOver       bool    `json:"is_over"`
	Percentage   float64 `json:"percentage"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

// EvaluateBudgets joins each budget with the actual spend of its category.
// Categories without a budget are not reported. Percentage is capped at 100
// and is 0 for a zero limit, so it never divides by zero.
func EvaluateBudgets(budgets []models.Budget, spentByCategory map[string]float64) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := Round2(spentByCategory[b.CategoryID])
		status := BudgetStatus{
			BudgetID:     b.ID,
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			CategoryIcon: b.CategoryIcon,
			MonthlyLimit: b.MonthlyLimit,
			Spent:        spent,
			IsOver:       spent > b.MonthlyLimit,
			Month:        b.Month,
			Year:         b.Year,
		}
		if b.MonthlyLimit > 0 {
			pct := spent / b.MonthlyLimit * 100
			if pct > 100 {
				pct = 100
			}
			status.Percentage = Round2(pct)
		}
		out = append(out, status)
	}
	return out
}
