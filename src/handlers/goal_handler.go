package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type goalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Currency     string  `json:"currency"`
	Deadline     string  `json:"deadline"`
}

func CreateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.TargetAmount <= 0 {
			http.Error(w, "target amount must be positive", http.StatusBadRequest)
			return
		}
		if req.Currency == "" {
			req.Currency = "RON"
		}
		if !util.ValidateCurrency(req.Currency) {
			http.Error(w, "unsupported currency", http.StatusBadRequest)
			return
		}

		var deadline *time.Time
		if req.Deadline != "" {
			t, err := time.Parse("2006-01-02", req.Deadline)
			if err != nil {
				http.Error(w, "deadline must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			deadline = &t
		}

		goal := &models.SavingsGoal{
			UserID:       userID,
			Name:         req.Name,
			TargetAmount: req.TargetAmount,
			Currency:     req.Currency,
			Deadline:     deadline,
		}
		created, err := db.CreateGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to create goal for user %s: %v", userID, err)
			http.Error(w, "failed to create goal", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created goal %s (%s) for user %s", created.ID, created.Name, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		goals, err := db.GetGoalsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goals for user %s: %v", userID, err)
			http.Error(w, "failed to get goals", http.StatusInternalServerError)
			return
		}
		if goals == nil {
			goals = []models.SavingsGoal{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}

func GetGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		goal, err := db.GetGoalByID(r.Context(), pool, userID, goalID)
		if err != nil {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	}
}

// UpdateGoal edits the goal's fields, or when "operation" is given moves
// money in or out of it.
func UpdateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		var req struct {
			goalRequest
			Operation string  `json:"operation"`
			Amount    float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Operation != "" {
			if req.Operation != "deposit" && req.Operation != "withdraw" {
				http.Error(w, "operation must be deposit or withdraw", http.StatusBadRequest)
				return
			}
			if req.Amount <= 0 {
				http.Error(w, "amount must be positive", http.StatusBadRequest)
				return
			}
			delta := req.Amount
			if req.Operation == "withdraw" {
				delta = -req.Amount
			}
			goal, err := db.AdjustGoalAmount(r.Context(), pool, userID, goalID, delta)
			if err != nil {
				log.Printf("ERROR: Failed to adjust goal %s for user %s: %v", goalID, userID, err)
				http.Error(w, "goal not found", http.StatusNotFound)
				return
			}
			log.Printf("INFO: %s %.2f on goal %s for user %s", req.Operation, req.Amount, goalID, userID)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(goal)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.TargetAmount <= 0 {
			http.Error(w, "target amount must be positive", http.StatusBadRequest)
			return
		}

		var deadline *time.Time
		if req.Deadline != "" {
			t, err := time.Parse("2006-01-02", req.Deadline)
			if err != nil {
				http.Error(w, "deadline must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			deadline = &t
		}

		goal, err := db.UpdateGoal(r.Context(), pool, &models.SavingsGoal{
			ID:           goalID,
			UserID:       userID,
			Name:         req.Name,
			TargetAmount: req.TargetAmount,
			Deadline:     deadline,
		})
		if err != nil {
			log.Printf("ERROR: Failed to update goal %s for user %s: %v", goalID, userID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated goal %s for user %s", goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		if err := db.DeleteGoal(r.Context(), pool, userID, goalID); err != nil {
			log.Printf("ERROR: Failed to delete goal %s for user %s: %v", goalID, userID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted goal %s for user %s", goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "goal deleted"})
	}
}
