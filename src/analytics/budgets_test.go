package analytics

import (
	"testing"

	"fintrack-server/src/models"
)

func TestEvaluateBudgets(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", CategoryID: "food", MonthlyLimit: 500, Month: 6, Year: 2025},
		{ID: "b2", CategoryID: "rent", MonthlyLimit: 1000, Month: 6, Year: 2025},
		{ID: "b3", CategoryID: "fun", MonthlyLimit: 100, Month: 6, Year: 2025},
	}
	spent := map[string]float64{
		"food": 250,
		"rent": 1200,
		// "fun" has no spend this month.
		// "transport" has spend but no budget and must not be reported.
		"transport": 300,
	}

	got := EvaluateBudgets(budgets, spent)
	if len(got) != 3 {
		t.Fatalf("got %d statuses, want 3", len(got))
	}

	food := got[0]
	if food.Spent != 250 || food.IsOver || food.Percentage != 50 {
		t.Errorf("food status = %+v", food)
	}

	rent := got[1]
	if !rent.IsOver {
		t.Errorf("rent should be over budget")
	}
	if rent.Percentage != 100 {
		t.Errorf("rent percentage = %v, want capped 100", rent.Percentage)
	}

	fun := got[2]
	if fun.Spent != 0 || fun.IsOver || fun.Percentage != 0 {
		t.Errorf("fun status = %+v", fun)
	}
}

func TestEvaluateBudgetsZeroLimit(t *testing.T) {
	budgets := []models.Budget{{ID: "b1", CategoryID: "food", MonthlyLimit: 0}}
	got := EvaluateBudgets(budgets, map[string]float64{"food": 50})
	if got[0].Percentage != 0 {
		t.Errorf("zero-limit percentage = %v, want 0", got[0].Percentage)
	}
	if !got[0].IsOver {
		t.Errorf("spend above a zero limit should report over")
	}
}

func TestEvaluateBudgetsPercentageBounds(t *testing.T) {
	budgets := []models.Budget{{ID: "b", CategoryID: "c", MonthlyLimit: 100}}
	for _, spend := range []float64{0, 1, 50, 99.99, 100, 100.01, 100000} {
		got := EvaluateBudgets(budgets, map[string]float64{"c": spend})
		pct := got[0].Percentage
		if pct < 0 || pct > 100 {
			t.Errorf("spend %v: percentage %v out of [0,100]", spend, pct)
		}
	}
}
