package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		var req struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Currency string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create account request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "account name is required", http.StatusBadRequest)
			return
		}
		if !util.ValidateAccountType(req.Type) {
			http.Error(w, "invalid account type", http.StatusBadRequest)
			return
		}
		if !util.ValidateCurrency(req.Currency) {
			http.Error(w, "unsupported currency", http.StatusBadRequest)
			return
		}

		account := &models.Account{
			UserID:   userID,
			Name:     req.Name,
			Type:     req.Type,
			Currency: req.Currency,
		}
		created, err := db.CreateAccount(r.Context(), pool, account)
		if err != nil {
			log.Printf("ERROR: Failed to create account for user %s: %v", userID, err)
			http.Error(w, "failed to create account", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created account %s for user %s, currency %s", created.ID, userID, created.Currency)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		accounts, err := db.GetAccountsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get accounts for user %s: %v", userID, err)
			http.Error(w, "failed to get accounts", http.StatusInternalServerError)
			return
		}
		if accounts == nil {
			accounts = []models.Account{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

func UpdateAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		accountID := chi.URLParam(r, "account_id")

		var req struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Currency string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update account request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || !util.ValidateAccountType(req.Type) || !util.ValidateCurrency(req.Currency) {
			http.Error(w, "invalid account fields", http.StatusBadRequest)
			return
		}

		account := &models.Account{
			ID:       accountID,
			UserID:   userID,
			Name:     req.Name,
			Type:     req.Type,
			Currency: req.Currency,
		}
		updated, err := db.UpdateAccount(r.Context(), pool, account)
		if err != nil {
			log.Printf("ERROR: Failed to update account %s for user %s: %v", accountID, userID, err)
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated account %s for user %s", accountID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		accountID := chi.URLParam(r, "account_id")

		if err := db.DeleteAccount(r.Context(), pool, userID, accountID); err != nil {
			log.Printf("ERROR: Failed to delete account %s for user %s: %v", accountID, userID, err)
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted account %s for user %s", accountID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "account deleted"})
	}
}
