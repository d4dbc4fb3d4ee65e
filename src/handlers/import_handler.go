package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

type importRow struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
}

type importRequest struct {
	AccountID    string      `json:"account_id"`
	Transactions []importRow `json:"transactions"`
}

// ImportTransactions bulk-inserts rows into one account. Rows without a
// category are matched against category keywords before falling back to the
// catch-all category.
func ImportTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode import request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.AccountID == "" {
			http.Error(w, "account is required", http.StatusBadRequest)
			return
		}
		if len(req.Transactions) == 0 {
			http.Error(w, "no transactions to import", http.StatusBadRequest)
			return
		}

		if _, err := db.GetAccountByID(r.Context(), pool, userID, req.AccountID); err != nil {
			log.Printf("ERROR: Account %s not found for user %s: %v", req.AccountID, userID, err)
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		categories, err := db.GetCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, "import failed", http.StatusInternalServerError)
			return
		}
		known := make(map[string]bool, len(categories))
		for _, c := range categories {
			known[c.ID] = true
		}
		fallback := analytics.FallbackCategory(categories)

		txns := make([]models.Transaction, 0, len(req.Transactions))
		for i, row := range req.Transactions {
			if row.Amount <= 0 {
				http.Error(w, fmt.Sprintf("row %d: amount must be positive", i+1), http.StatusBadRequest)
				return
			}
			if !util.ValidateTransactionType(row.Type) {
				http.Error(w, fmt.Sprintf("row %d: type must be INCOME or EXPENSE", i+1), http.StatusBadRequest)
				return
			}
			date, err := time.Parse("2006-01-02", row.Date)
			if err != nil {
				http.Error(w, fmt.Sprintf("row %d: date must be YYYY-MM-DD", i+1), http.StatusBadRequest)
				return
			}
			categoryID := row.CategoryID
			if categoryID == "" {
				categoryID = analytics.AutoCategorize(row.Description, categories)
				if categoryID == "" {
					categoryID = fallback
				}
			} else if !known[categoryID] {
				http.Error(w, fmt.Sprintf("row %d: category not found", i+1), http.StatusBadRequest)
				return
			}
			if categoryID == "" {
				http.Error(w, fmt.Sprintf("row %d: no category could be assigned", i+1), http.StatusBadRequest)
				return
			}
			txns = append(txns, models.Transaction{
				CategoryID:  categoryID,
				Amount:      row.Amount,
				Type:        row.Type,
				Description: row.Description,
				Date:        date,
			})
		}

		count, err := db.BulkInsertTransactions(r.Context(), pool, req.AccountID, txns)
		if err != nil {
			log.Printf("ERROR: Failed to import transactions for user %s: %v", userID, err)
			http.Error(w, "import failed", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Imported %d transactions into account %s for user %s", count, req.AccountID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"imported": count,
		})
	}
}

// CategorizeDescriptions previews the keyword match for a batch of
// descriptions without writing anything.
func CategorizeDescriptions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Descriptions []string `json:"descriptions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode categorize request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if len(req.Descriptions) == 0 {
			http.Error(w, "no descriptions given", http.StatusBadRequest)
			return
		}

		categories, err := db.GetCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, "failed to categorize", http.StatusInternalServerError)
			return
		}
		fallback := analytics.FallbackCategory(categories)

		matches := make(map[string]string, len(req.Descriptions))
		for _, desc := range req.Descriptions {
			id := analytics.AutoCategorize(desc, categories)
			if id == "" {
				id = fallback
			}
			matches[desc] = id
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matches)
	}
}
