package analytics

import (
	"sort"
	"time"

	"fintrack-server/src/models"
)

// MonthTotal is one calendar-month bucket of a rollup.
type MonthTotal struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}

// MonthlyRollup buckets expense and income amounts into the last n calendar
// months ending at now's month. Every bucket appears in the result, ascending
// by month key, even when it holds no transactions. Transactions dated
// outside the window are ignored.
func MonthlyRollup(txns []models.Transaction, now time.Time, n int) []MonthTotal {
	keys := LastMonthKeys(now, n)
	idx := make(map[string]int, len(keys))
	out := make([]MonthTotal, len(keys))
	for i, key := range keys {
		idx[key] = i
		out[i].Month = key
		out[i].Label = monthLabel(key)
	}

	for _, t := range txns {
		i, ok := idx[MonthKey(t.Date)]
		if !ok {
			continue
		}
		if t.Type == models.TypeExpense {
			out[i].Expenses += t.Amount
		} else {
			out[i].Income += t.Amount
		}
	}

	for i := range out {
		out[i].Expenses = Round2(out[i].Expenses)
		out[i].Income = Round2(out[i].Income)
	}
	return out
}

// monthLabel renders a YYYY-MM key as a short chart label like "Feb 25".
func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 06")
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Amount     float64 `json:"amount"`
}

// CategoryBreakdown sums expense amounts per category over transactions dated
// in [from, to), sorted by amount descending. Ties keep first-seen order.
// Income transactions never contribute.
func CategoryBreakdown(txns []models.Transaction, from, to time.Time) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var order []string

	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		if t.Date.Before(from) || !t.Date.Before(to) {
			continue
		}
		ct, ok := totals[t.CategoryID]
		if !ok {
			ct = &CategoryTotal{CategoryID: t.CategoryID, Name: t.CategoryName, Icon: t.CategoryIcon}
			totals[t.CategoryID] = ct
			order = append(order, t.CategoryID)
		}
		ct.Amount += t.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		ct := totals[id]
		ct.Amount = Round2(ct.Amount)
		out = append(out, *ct)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

// SpendByCategory sums raw expense amounts per category id over all given
// transactions. Used to join budget limits against actual spend.
func SpendByCategory(txns []models.Transaction) map[string]float64 {
	spent := make(map[string]float64)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		spent[t.CategoryID] += t.Amount
	}
	return spent
}
