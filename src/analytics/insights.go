package analytics

import (
	"fmt"
	"math"
)

const (
	InsightUp   = "up"
	InsightDown = "down"
	InsightInfo = "info"

	// categoryDeltaThreshold is the month-over-month percent change beyond
	// which a category earns an insight.
	categoryDeltaThreshold = 20.0
)

// Insight is one rule-triggered observation about the current month.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// GenerateInsights evaluates the fixed insight rules over the current and
// prior month's per-category expense totals and the current month's income
// and expense totals. Each rule emits independently:
//
//   - per-category deltas beyond the threshold, only for categories with a
//     positive prior-month baseline;
//   - the single top spending category, when any expenses exist;
//   - the savings rate, only when income is positive (a non-positive rate
//     becomes an overspend warning instead).
//
// Figures in messages are rounded to whole numbers for readability.
func GenerateInsights(current, prior []CategoryTotal, income, expenses float64, currency string) []Insight {
	insights := []Insight{}

	priorByID := make(map[string]CategoryTotal, len(prior))
	for _, c := range prior {
		priorByID[c.CategoryID] = c
	}

	for _, cur := range current {
		last, ok := priorByID[cur.CategoryID]
		if !ok || last.Amount <= 0 {
			// No baseline: skip rather than claim an infinite change.
			continue
		}
		change := (cur.Amount - last.Amount) / last.Amount * 100
		switch {
		case change > categoryDeltaThreshold:
			insights = append(insights, Insight{
				Type: InsightUp,
				Message: fmt.Sprintf("%s %s: spending up %d%% vs last month (%d vs %d %s)",
					cur.Icon, cur.Name, round(change), round(cur.Amount), round(last.Amount), currency),
			})
		case change < -categoryDeltaThreshold:
			insights = append(insights, Insight{
				Type: InsightDown,
				Message: fmt.Sprintf("%s %s: spending down %d%% vs last month (%d vs %d %s)",
					cur.Icon, cur.Name, round(-change), round(cur.Amount), round(last.Amount), currency),
			})
		}
	}

	if top, ok := topCategory(current); ok {
		insights = append(insights, Insight{
			Type: InsightInfo,
			Message: fmt.Sprintf("%s %s is your top spending category this month (%d %s)",
				top.Icon, top.Name, round(top.Amount), currency),
		})
	}

	if income > 0 {
		rate := (income - expenses) / income * 100
		if rate > 0 {
			insights = append(insights, Insight{
				Type:    InsightInfo,
				Message: fmt.Sprintf("Your savings rate this month is %d%%", round(rate)),
			})
		} else {
			insights = append(insights, Insight{
				Type: InsightUp,
				Message: fmt.Sprintf("You're spending more than you earn this month - expenses exceed income by %d %s",
					round(expenses-income), currency),
			})
		}
	}

	return insights
}

// topCategory returns the highest-total entry without assuming the slice is
// pre-sorted.
func topCategory(totals []CategoryTotal) (CategoryTotal, bool) {
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}
	top := totals[0]
	for _, c := range totals[1:] {
		if c.Amount > top.Amount {
			top = c
		}
	}
	return top, true
}

func round(v float64) int {
	return int(math.Round(v))
}
