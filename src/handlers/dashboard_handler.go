package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type currencySummary struct {
	Currency     string  `json:"currency"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Balance      float64 `json:"balance"`
	Transactions int     `json:"transactions"`
}

func periodBounds(period string, now time.Time) (time.Time, time.Time) {
	switch period {
	case "last-month":
		start, _ := analytics.MonthBounds(now.Year(), now.Month())
		return start.AddDate(0, -1, 0), start
	case "this-year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	default: // this-month
		return analytics.MonthBounds(now.Year(), now.Month())
	}
}

// GetDashboard returns one summary per currency the user holds accounts in.
// Summaries for different currencies are independent, so they are computed
// in parallel.
func GetDashboard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		period := r.URL.Query().Get("period")
		if period == "" {
			period = "this-month"
		}
		if period != "this-month" && period != "last-month" && period != "this-year" {
			http.Error(w, "period must be this-month, last-month or this-year", http.StatusBadRequest)
			return
		}
		start, end := periodBounds(period, time.Now())

		accounts, err := db.GetAccountsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get accounts for user %s: %v", userID, err)
			http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
			return
		}

		seen := map[string]bool{}
		currencies := []string{}
		for _, a := range accounts {
			if !seen[a.Currency] {
				seen[a.Currency] = true
				currencies = append(currencies, a.Currency)
			}
		}
		sort.Strings(currencies)

		summaries := make([]currencySummary, len(currencies))
		g, ctx := errgroup.WithContext(r.Context())
		for i, currency := range currencies {
			i, currency := i, currency
			g.Go(func() error {
				s, err := db.GetPeriodSummary(ctx, pool, userID, currency, start, end)
				if err != nil {
					return err
				}
				summaries[i] = currencySummary{
					Currency:     currency,
					Income:       analytics.Round2(s.Income),
					Expenses:     analytics.Round2(s.Expenses),
					Balance:      analytics.Round2(s.Balance),
					Transactions: s.Count,
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Printf("ERROR: Failed to summarize dashboard for user %s: %v", userID, err)
			http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"period":    period,
			"summaries": summaries,
		})
	}
}
