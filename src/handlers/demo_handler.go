package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@fintrack.app"
	demoPassword = "demo123456"
)

// GetDemo logs into the shared demo user, creating and seeding it on first
// use so the insights feed has something to show.
func GetDemo(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := db.GetUserByEmail(r.Context(), pool, demoEmail)
		if err != nil {
			user, err = seedDemoUser(r.Context(), pool)
			if err != nil {
				log.Printf("ERROR: Failed to seed demo user: %v", err)
				http.Error(w, "demo unavailable", http.StatusInternalServerError)
				return
			}
			log.Printf("INFO: Seeded demo user %s", user.ID)
		}

		token, err := generateToken(user)
		if err != nil {
			log.Printf("ERROR: Failed to generate demo token: %v", err)
			http.Error(w, "demo unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": token,
			"user":  user,
		})
	}
}

func seedDemoUser(ctx context.Context, pool *pgxpool.Pool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := db.CreateUser(ctx, pool, "Demo User", demoEmail, hash)
	if err != nil {
		return nil, err
	}

	main, err := db.CreateAccount(ctx, pool, &models.Account{
		UserID: user.ID, Name: "Main Account", Type: "CHECKING", Currency: "RON",
	})
	if err != nil {
		return nil, err
	}
	if _, err := db.CreateAccount(ctx, pool, &models.Account{
		UserID: user.ID, Name: "Euro Savings", Type: "SAVINGS", Currency: "EUR",
	}); err != nil {
		return nil, err
	}

	categories, err := db.GetCategoriesForUser(ctx, pool, user.ID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	now := time.Now()
	txns := []models.Transaction{}
	add := func(monthsAgo, day int, category string, amount float64, typ, desc string) {
		id, ok := byName[category]
		if !ok {
			return
		}
		date := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthsAgo, day-1)
		if date.After(now) {
			return
		}
		txns = append(txns, models.Transaction{
			CategoryID: id, Amount: amount, Type: typ, Description: desc, Date: date,
		})
	}

	for m := 3; m >= 0; m-- {
		add(m, 1, "Salary", 8500, models.TypeIncome, "Monthly salary")
		add(m, 2, "Rent", 2200, models.TypeExpense, "Apartment rent")
		add(m, 5, "Utilities", 340, models.TypeExpense, "Electricity and gas")
		add(m, 8, "Entertainment", 55.99, models.TypeExpense, "Netflix subscription")
		add(m, 12, "Entertainment", 25.99, models.TypeExpense, "Spotify Premium")
		add(m, 4, "Food", 312.40, models.TypeExpense, "Mega Image groceries")
		add(m, 11, "Food", 268.75, models.TypeExpense, "Kaufland weekly shop")
		add(m, 18, "Food", 89.50, models.TypeExpense, "Glovo delivery")
		add(m, 6, "Transport", 120, models.TypeExpense, "Uber rides")
		add(m, 15, "Transport", 80, models.TypeExpense, "Metro pass")
		add(m, 20, "Shopping", 245.30, models.TypeExpense, "Emag order")
		add(m, 25, "Health", 95, models.TypeExpense, "Pharmacy")
	}
	add(1, 22, "Freelance", 1500, models.TypeIncome, "Freelance project")
	add(2, 14, "Education", 199, models.TypeExpense, "Online course")

	if _, err := db.BulkInsertTransactions(ctx, pool, main.ID, txns); err != nil {
		return nil, err
	}
	return user, nil
}
