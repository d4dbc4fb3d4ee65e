package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insightsLookbackMonths = 6

type forecastResponse struct {
	analytics.ForecastResult
	Currency string `json:"currency"`
}

// GetInsights builds the full insights feed: the six-month trend, the spend
// forecast for the current month, detected recurring charges and the
// month-over-month insight messages. Everything is computed over the user's
// primary currency so amounts are comparable.
func GetInsights(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		accounts, err := db.GetAccountsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get accounts for user %s: %v", userID, err)
			http.Error(w, "failed to get insights", http.StatusInternalServerError)
			return
		}
		if len(accounts) == 0 {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"trend":     []analytics.MonthTotal{},
				"forecast":  nil,
				"recurring": []analytics.RecurringCharge{},
				"insights":  []analytics.Insight{},
			})
			return
		}
		currency := accounts[0].Currency

		now := time.Now()
		since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(insightsLookbackMonths - 1), 0)
		txns, err := db.GetTransactionsSince(r.Context(), pool, userID, since, currency)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %s: %v", userID, err)
			http.Error(w, "failed to get insights", http.StatusInternalServerError)
			return
		}

		trend := analytics.MonthlyRollup(txns, now, insightsLookbackMonths)
		forecast := analytics.Forecast(trend, now)
		recurring := analytics.DetectRecurring(txns, analytics.MinRecurringOccurrences, analytics.RecurringTopN)
		if recurring == nil {
			recurring = []analytics.RecurringCharge{}
		}

		curStart, curEnd := analytics.MonthBounds(now.Year(), now.Month())
		priorStart, _ := analytics.MonthBounds(curStart.AddDate(0, -1, 0).Year(), curStart.AddDate(0, -1, 0).Month())
		current := analytics.CategoryBreakdown(txns, curStart, curEnd)
		prior := analytics.CategoryBreakdown(txns, priorStart, curStart)

		var income, expenses float64
		if len(trend) > 0 {
			last := trend[len(trend)-1]
			income, expenses = last.Income, last.Expenses
		}

		insights := analytics.GenerateInsights(current, prior, income, expenses, currency)
		if forecast.OverPace() {
			insights = append(insights, analytics.Insight{
				Type:    analytics.InsightUp,
				Message: fmt.Sprintf("On pace to spend %d %s this month, above your recent average of %d %s", int(forecast.ProjectedExpenses), currency, int(forecast.AvgMonthlyExpenses), currency),
			})
		}
		if insights == nil {
			insights = []analytics.Insight{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"trend":     trend,
			"forecast":  forecastResponse{ForecastResult: forecast, Currency: currency},
			"recurring": recurring,
			"insights":  insights,
		})
	}
}
