package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GetAnalytics returns the monthly spending series, the current month's
// category breakdown and the income versus expenses series, optionally
// restricted to one currency.
func GetAnalytics(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		months := queryInt(r, "months", 6)
		if months > 24 {
			months = 24
		}
		currency := r.URL.Query().Get("currency")

		now := time.Now()
		since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
		txns, err := db.GetTransactionsSince(r.Context(), pool, userID, since, currency)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %s: %v", userID, err)
			http.Error(w, "failed to get analytics", http.StatusInternalServerError)
			return
		}

		rollup := analytics.MonthlyRollup(txns, now, months)

		type monthAmount struct {
			Month  string  `json:"month"`
			Amount float64 `json:"amount"`
		}
		monthlySpending := make([]monthAmount, len(rollup))
		for i, m := range rollup {
			monthlySpending[i] = monthAmount{Month: m.Label, Amount: m.Expenses}
		}

		start, end := analytics.MonthBounds(now.Year(), now.Month())
		breakdown := analytics.CategoryBreakdown(txns, start, end)
		if breakdown == nil {
			breakdown = []analytics.CategoryTotal{}
		}

		currencies, err := userCurrencies(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get accounts for user %s: %v", userID, err)
			http.Error(w, "failed to get analytics", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"monthly_spending":   monthlySpending,
			"category_breakdown": breakdown,
			"income_vs_expenses": rollup,
			"currencies":         currencies,
		})
	}
}

func userCurrencies(r *http.Request, pool *pgxpool.Pool, userID string) ([]string, error) {
	accounts, err := db.GetAccountsForUser(r.Context(), pool, userID)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	currencies := []string{}
	for _, a := range accounts {
		if !seen[a.Currency] {
			seen[a.Currency] = true
			currencies = append(currencies, a.Currency)
		}
	}
	return currencies, nil
}
