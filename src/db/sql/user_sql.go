package db

import (
	"context"
	"errors"
	"fmt"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateUser(ctx context.Context, pool *pgxpool.Pool, name, email string, passwordHash []byte) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, created_at
	`
	var u models.User
	var hash string
	err := pool.QueryRow(ctx, query, uuid.NewString(), name, email, string(passwordHash)).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE id = $1
	`
	var u models.User
	var hash string
	err := pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE LOWER(email) = LOWER($1)
	`
	var u models.User
	var hash string
	err := pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}

func UpdateUserName(ctx context.Context, pool *pgxpool.Pool, userID, name string) (*models.User, error) {
	query := `
		UPDATE users SET name = $1 WHERE id = $2
		RETURNING id, name, email, created_at
	`
	var u models.User
	err := pool.QueryRow(ctx, query, name, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func UpdateUserPassword(ctx context.Context, pool *pgxpool.Pool, userID string, passwordHash []byte) error {
	cmd, err := pool.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, string(passwordHash), userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
