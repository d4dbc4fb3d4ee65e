package analytics

import (
	"testing"
	"time"
)

func TestForecastProjection(t *testing.T) {
	// 300 spent by day 10 of a 30-day month projects to 900.
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	rollup := []MonthTotal{
		{Month: "2025-03", Expenses: 1000, Income: 4000},
		{Month: "2025-04", Expenses: 1100, Income: 4000},
		{Month: "2025-05", Expenses: 1200, Income: 4000},
		{Month: "2025-06", Expenses: 300, Income: 2000},
	}

	got := Forecast(rollup, now)
	if got.ProjectedExpenses != 900 {
		t.Errorf("projected = %v, want 900", got.ProjectedExpenses)
	}
	if got.AvgMonthlyExpenses != 1100 {
		t.Errorf("avg expenses = %v, want 1100", got.AvgMonthlyExpenses)
	}
	if got.AvgMonthlyIncome != 4000 {
		t.Errorf("avg income = %v, want 4000", got.AvgMonthlyIncome)
	}
	if got.CurrentMonthExpenses != 300 || got.CurrentMonthIncome != 2000 {
		t.Errorf("current actuals = %v/%v", got.CurrentMonthExpenses, got.CurrentMonthIncome)
	}
}

func TestForecastUsesOnlyLastThreeCompletedMonths(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	rollup := []MonthTotal{
		{Month: "2025-01", Expenses: 9999},
		{Month: "2025-02", Expenses: 9999},
		{Month: "2025-03", Expenses: 300},
		{Month: "2025-04", Expenses: 600},
		{Month: "2025-05", Expenses: 900},
		{Month: "2025-06", Expenses: 100},
	}
	got := Forecast(rollup, now)
	if got.AvgMonthlyExpenses != 600 {
		t.Errorf("avg = %v, want 600 (last three completed months only)", got.AvgMonthlyExpenses)
	}
}

func TestForecastPartialHistory(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("single completed month", func(t *testing.T) {
		rollup := []MonthTotal{
			{Month: "2025-05", Expenses: 500, Income: 2000},
			{Month: "2025-06", Expenses: 100},
		}
		got := Forecast(rollup, now)
		if got.AvgMonthlyExpenses != 500 || got.AvgMonthlyIncome != 2000 {
			t.Errorf("avg = %v/%v, want 500/2000", got.AvgMonthlyExpenses, got.AvgMonthlyIncome)
		}
	})

	t.Run("no completed months", func(t *testing.T) {
		rollup := []MonthTotal{{Month: "2025-06", Expenses: 100}}
		got := Forecast(rollup, now)
		if got.AvgMonthlyExpenses != 0 || got.AvgMonthlyIncome != 0 {
			t.Errorf("avg = %v/%v, want zeros", got.AvgMonthlyExpenses, got.AvgMonthlyIncome)
		}
	})

	t.Run("empty rollup", func(t *testing.T) {
		got := Forecast(nil, now)
		if got != (ForecastResult{}) {
			t.Errorf("empty rollup should forecast zeros, got %+v", got)
		}
	})
}

func TestForecastOverPace(t *testing.T) {
	tests := []struct {
		name string
		f    ForecastResult
		want bool
	}{
		{"well over", ForecastResult{AvgMonthlyExpenses: 1000, ProjectedExpenses: 1200}, true},
		{"exactly at threshold", ForecastResult{AvgMonthlyExpenses: 1000, ProjectedExpenses: 1100}, false},
		{"under", ForecastResult{AvgMonthlyExpenses: 1000, ProjectedExpenses: 900}, false},
		{"no baseline", ForecastResult{AvgMonthlyExpenses: 0, ProjectedExpenses: 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.OverPace(); got != tt.want {
				t.Errorf("OverPace() = %v, want %v", got, tt.want)
			}
		})
	}
}
