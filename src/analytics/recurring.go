package analytics

import (
	"sort"
	"strings"
	"time"

	"fintrack-server/src/models"
)

const (
	// MinRecurringOccurrences is the smallest cluster size reported as
	// recurring.
	MinRecurringOccurrences = 2

	// RecurringTopN caps how many clusters are reported.
	RecurringTopN = 10
)

// RecurringCharge is a cluster of expense transactions sharing a normalized
// description and amount, read as repeated instances of the same charge.
type RecurringCharge struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Occurrences int       `json:"occurrences"`
	LastDate    time.Time `json:"last_date"`
}

// chargeKey is a composite cluster key. A struct key avoids the delimiter
// collisions a concatenated string key would have with descriptions that
// contain the separator.
type chargeKey struct {
	description string
	amount      float64
}

// DetectRecurring clusters expense transactions with non-empty descriptions
// by case-folded description plus amount rounded to cents, keeps clusters
// with at least minOccurrences members, and returns the topN largest by
// occurrence count. Input order does not matter: the latest date per cluster
// is tracked explicitly. Exact description+amount matching is deliberately
// conservative; charges with varying amounts form separate clusters.
func DetectRecurring(txns []models.Transaction, minOccurrences, topN int) []RecurringCharge {
	clusters := make(map[chargeKey]*RecurringCharge)
	var order []chargeKey

	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		raw := strings.TrimSpace(t.Description)
		if raw == "" {
			continue
		}
		key := chargeKey{
			description: strings.ToLower(raw),
			amount:      Round2(t.Amount),
		}
		c, ok := clusters[key]
		if !ok {
			c = &RecurringCharge{Description: raw, Amount: key.amount, LastDate: t.Date}
			clusters[key] = c
			order = append(order, key)
		}
		c.Occurrences++
		if t.Date.After(c.LastDate) {
			c.LastDate = t.Date
		}
	}

	out := make([]RecurringCharge, 0, len(order))
	for _, key := range order {
		if c := clusters[key]; c.Occurrences >= minOccurrences {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Occurrences > out[j].Occurrences })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
