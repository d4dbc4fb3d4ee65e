package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	query := `
		INSERT INTO savings_goals (id, user_id, name, target_amount, currency, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, target_amount, current_amount, currency, deadline, created_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), goal.UserID, goal.Name, goal.TargetAmount, goal.Currency, goal.Deadline).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency, &g.Deadline, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func GetGoalsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, currency, deadline, created_at
		FROM savings_goals WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency, &g.Deadline, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func GetGoalByID(ctx context.Context, pool *pgxpool.Pool, userID, goalID string) (*models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, currency, deadline, created_at
		FROM savings_goals WHERE id = $1 AND user_id = $2
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, goalID, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency, &g.Deadline, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	query := `
		UPDATE savings_goals
		SET name = $1, target_amount = $2, deadline = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, target_amount, current_amount, currency, deadline, created_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, goal.Name, goal.TargetAmount, goal.Deadline, goal.ID, goal.UserID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency, &g.Deadline, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// AdjustGoalAmount applies a deposit (positive delta) or withdrawal (negative
// delta) in a single statement so concurrent requests cannot lose updates.
// The balance is clamped at zero on withdrawal.
func AdjustGoalAmount(ctx context.Context, pool *pgxpool.Pool, userID, goalID string, delta float64) (*models.SavingsGoal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = GREATEST(0, current_amount + $1)
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, target_amount, current_amount, currency, deadline, created_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, delta, goalID, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency, &g.Deadline, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}
