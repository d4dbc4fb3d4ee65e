package analytics

import "time"

const (
	// trailingMonths is how many completed months feed the moving average.
	trailingMonths = 3

	// OveragePace is the multiple of the trailing average beyond which the
	// current month's projection counts as over pace.
	OveragePace = 1.1
)

// ForecastResult carries the trailing-average baseline, the in-progress
// month's actuals, and a linear day-of-month projection of its expenses.
type ForecastResult struct {
	AvgMonthlyExpenses   float64 `json:"avg_monthly_expenses"`
	AvgMonthlyIncome     float64 `json:"avg_monthly_income"`
	CurrentMonthExpenses float64 `json:"current_month_expenses"`
	CurrentMonthIncome   float64 `json:"current_month_income"`
	ProjectedExpenses    float64 `json:"projected_expenses"`
}

// Forecast derives expense and income forecasts from a monthly rollup whose
// final entry is the current, in-progress month. The incomplete month is
// excluded from the averages; with fewer than three completed months the
// average covers whatever is available, and with none it is zero.
func Forecast(rollup []MonthTotal, now time.Time) ForecastResult {
	var f ForecastResult
	if len(rollup) == 0 {
		return f
	}

	completed := rollup[:len(rollup)-1]
	if len(completed) > trailingMonths {
		completed = completed[len(completed)-trailingMonths:]
	}
	var sumExpenses, sumIncome float64
	for _, m := range completed {
		sumExpenses += m.Expenses
		sumIncome += m.Income
	}
	if n := len(completed); n > 0 {
		f.AvgMonthlyExpenses = Round2(sumExpenses / float64(n))
		f.AvgMonthlyIncome = Round2(sumIncome / float64(n))
	}

	current := rollup[len(rollup)-1]
	f.CurrentMonthExpenses = current.Expenses
	f.CurrentMonthIncome = current.Income

	// Day of month is >= 1 for any valid date; the guard keeps the zero
	// division short-circuit explicit regardless.
	if day := now.Day(); day > 0 {
		f.ProjectedExpenses = Round2(current.Expenses / float64(day) * float64(DaysInMonth(now)))
	}
	return f
}

// OverPace reports whether the projection exceeds the trailing average by the
// fixed overage threshold.
func (f ForecastResult) OverPace() bool {
	return f.AvgMonthlyExpenses > 0 && f.ProjectedExpenses > f.AvgMonthlyExpenses*OveragePace
}
