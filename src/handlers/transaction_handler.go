package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	AccountID   string  `json:"account_id"`
	CategoryID  string  `json:"category_id"`
}

func (req *transactionRequest) validate() (time.Time, string) {
	if req.Amount <= 0 {
		return time.Time{}, "amount must be positive"
	}
	if !util.ValidateTransactionType(req.Type) {
		return time.Time{}, "type must be INCOME or EXPENSE"
	}
	if req.AccountID == "" {
		return time.Time{}, "account is required"
	}
	if req.CategoryID == "" {
		return time.Time{}, "category is required"
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return time.Time{}, "date must be YYYY-MM-DD"
	}
	return date, ""
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		date, msg := req.validate()
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		// The account must belong to the requesting user.
		if _, err := db.GetAccountByID(r.Context(), pool, userID, req.AccountID); err != nil {
			log.Printf("ERROR: Account %s not found for user %s: %v", req.AccountID, userID, err)
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		txn := &models.Transaction{
			AccountID:   req.AccountID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Type:        req.Type,
			Description: req.Description,
			Date:        date,
		}
		created, err := db.CreateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created transaction %s for user %s, amount %.2f %s", created.ID, userID, created.Amount, created.Type)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		filters := models.TransactionFilters{
			CategoryID: r.URL.Query().Get("category_id"),
			Type:       r.URL.Query().Get("type"),
			Search:     r.URL.Query().Get("search"),
			Page:       queryInt(r, "page", 1),
			PageSize:   queryInt(r, "page_size", 10),
		}
		if from := r.URL.Query().Get("date_from"); from != "" {
			if t, err := time.Parse("2006-01-02", from); err == nil {
				filters.DateFrom = &t
			}
		}
		if to := r.URL.Query().Get("date_to"); to != "" {
			if t, err := time.Parse("2006-01-02", to); err == nil {
				filters.DateTo = &t
			}
		}

		txns, total, err := db.ListTransactions(r.Context(), pool, userID, filters)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %s: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}

		totalPages := (total + filters.PageSize - 1) / filters.PageSize
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": txns,
			"total":        total,
			"page":         filters.Page,
			"page_size":    filters.PageSize,
			"total_pages":  totalPages,
		})
	}
}

func GetTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		txnID := chi.URLParam(r, "transaction_id")

		txn, err := db.GetTransactionByID(r.Context(), pool, userID, txnID)
		if err != nil {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(txn)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		txnID := chi.URLParam(r, "transaction_id")

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		date, msg := req.validate()
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		if _, err := db.GetAccountByID(r.Context(), pool, userID, req.AccountID); err != nil {
			log.Printf("ERROR: Account %s not found for user %s: %v", req.AccountID, userID, err)
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		txn := &models.Transaction{
			ID:          txnID,
			AccountID:   req.AccountID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Type:        req.Type,
			Description: req.Description,
			Date:        date,
		}
		updated, err := db.UpdateTransaction(r.Context(), pool, userID, txn)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", txnID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated transaction %s for user %s", txnID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		txnID := chi.URLParam(r, "transaction_id")

		if err := db.DeleteTransaction(r.Context(), pool, userID, txnID); err != nil {
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", txnID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", txnID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "transaction deleted"})
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
