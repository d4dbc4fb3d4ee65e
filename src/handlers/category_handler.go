package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRequest struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Keywords []string `json:"keywords"`
}

func GetCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		categories, err := db.GetCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.Icon == "" {
			req.Icon = "📦"
		}

		category, err := db.CreateCategory(r.Context(), pool, &models.Category{
			Name:     req.Name,
			Icon:     req.Icon,
			Keywords: req.Keywords,
			UserID:   &userID,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create category for user %s: %v", userID, err)
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created category %s (%s) for user %s", category.ID, category.Name, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	}
}

func UpdateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		existing, err := db.GetCategoryByID(r.Context(), pool, categoryID)
		if err != nil {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		if existing.IsDefault {
			http.Error(w, "cannot edit default categories", http.StatusForbidden)
			return
		}
		if existing.UserID == nil || *existing.UserID != userID {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		category, err := db.UpdateCategory(r.Context(), pool, &models.Category{
			ID:       categoryID,
			Name:     req.Name,
			Icon:     req.Icon,
			Keywords: req.Keywords,
			UserID:   &userID,
		})
		if err != nil {
			log.Printf("ERROR: Failed to update category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated category %s for user %s", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(category)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		existing, err := db.GetCategoryByID(r.Context(), pool, categoryID)
		if err != nil {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		if existing.IsDefault {
			http.Error(w, "cannot delete default categories", http.StatusForbidden)
			return
		}
		if existing.UserID == nil || *existing.UserID != userID {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		count, err := db.CountTransactionsForCategory(r.Context(), pool, categoryID)
		if err != nil {
			log.Printf("ERROR: Failed to count transactions for category %s: %v", categoryID, err)
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}
		if count > 0 {
			http.Error(w, fmt.Sprintf("category is used by %d transactions", count), http.StatusBadRequest)
			return
		}

		if err := db.DeleteCategory(r.Context(), pool, userID, categoryID); err != nil {
			log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted category %s for user %s", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "category deleted"})
	}
}
