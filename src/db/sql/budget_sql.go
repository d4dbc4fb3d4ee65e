package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UpsertBudget creates a budget or, when one already exists for the same
// (user, category, month, year), updates its limit in place.
func UpsertBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (id, user_id, category_id, monthly_limit, month, year)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category_id, month, year)
		DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit
		RETURNING id, user_id, category_id, monthly_limit, month, year, created_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), budget.UserID, budget.CategoryID, budget.MonthlyLimit, budget.Month, budget.Year).
		Scan(&b.ID, &b.UserID, &b.CategoryID, &b.MonthlyLimit, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, userID, budgetID string) (*models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.monthly_limit, b.month, b.year, b.created_at,
		       c.name, COALESCE(c.icon, '')
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1 AND b.user_id = $2
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budgetID, userID).
		Scan(&b.ID, &b.UserID, &b.CategoryID, &b.MonthlyLimit, &b.Month, &b.Year, &b.CreatedAt,
			&b.CategoryName, &b.CategoryIcon)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBudgetsForMonth returns the user's budgets for one (month, year) with
// category names joined in, in creation order.
func GetBudgetsForMonth(ctx context.Context, pool *pgxpool.Pool, userID string, month, year int) ([]models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.monthly_limit, b.month, b.year, b.created_at,
		       c.name, COALESCE(c.icon, '')
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
		ORDER BY b.created_at ASC
	`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.MonthlyLimit, &b.Month, &b.Year, &b.CreatedAt,
			&b.CategoryName, &b.CategoryIcon)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET monthly_limit = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, category_id, monthly_limit, month, year, created_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.MonthlyLimit, budget.ID, budget.UserID).
		Scan(&b.ID, &b.UserID, &b.CategoryID, &b.MonthlyLimit, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
