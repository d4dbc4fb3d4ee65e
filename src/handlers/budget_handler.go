package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetRequest struct {
	CategoryID   string  `json:"category_id"`
	MonthlyLimit float64 `json:"monthly_limit"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

// GetBudgets returns the budgets for the requested month together with the
// amount already spent against each one.
func GetBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		now := time.Now()
		month := queryInt(r, "month", int(now.Month()))
		year := queryInt(r, "year", now.Year())
		if month < 1 || month > 12 {
			http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}

		budgets, err := db.GetBudgetsForMonth(r.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %s: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		start, end := analytics.MonthBounds(year, time.Month(month))
		expenses, err := db.GetExpensesForMonth(r.Context(), pool, userID, start, end)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %s: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		statuses := analytics.EvaluateBudgets(budgets, analytics.SpendByCategory(expenses))
		if statuses == nil {
			statuses = []analytics.BudgetStatus{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statuses)
	}
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.CategoryID == "" {
			http.Error(w, "category is required", http.StatusBadRequest)
			return
		}
		if req.MonthlyLimit <= 0 {
			http.Error(w, "monthly limit must be positive", http.StatusBadRequest)
			return
		}
		now := time.Now()
		if req.Month == 0 {
			req.Month = int(now.Month())
		}
		if req.Year == 0 {
			req.Year = now.Year()
		}
		if req.Month < 1 || req.Month > 12 {
			http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}

		category, err := db.GetCategoryByID(r.Context(), pool, req.CategoryID)
		if err != nil {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		if !category.IsDefault && (category.UserID == nil || *category.UserID != userID) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		budget := &models.Budget{
			UserID:       userID,
			CategoryID:   req.CategoryID,
			MonthlyLimit: req.MonthlyLimit,
			Month:        req.Month,
			Year:         req.Year,
		}
		created, err := db.UpsertBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to upsert budget for user %s: %v", userID, err)
			http.Error(w, "failed to save budget", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Saved budget %s for user %s (%d/%d, limit %.2f)", created.ID, userID, created.Month, created.Year, created.MonthlyLimit)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		budget, err := db.GetBudgetByID(r.Context(), pool, userID, budgetID)
		if err != nil {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		var req struct {
			MonthlyLimit float64 `json:"monthly_limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.MonthlyLimit <= 0 {
			http.Error(w, "monthly limit must be positive", http.StatusBadRequest)
			return
		}

		budget, err := db.UpdateBudget(r.Context(), pool, &models.Budget{
			ID:           budgetID,
			UserID:       userID,
			MonthlyLimit: req.MonthlyLimit,
		})
		if err != nil {
			log.Printf("ERROR: Failed to update budget %s for user %s: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated budget %s for user %s", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		if err := db.DeleteBudget(r.Context(), pool, userID, budgetID); err != nil {
			log.Printf("ERROR: Failed to delete budget %s for user %s: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted budget %s for user %s", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "budget deleted"})
	}
}
