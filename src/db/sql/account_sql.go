package db

import (
	"context"
	"fmt"

	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateAccount(ctx context.Context, pool *pgxpool.Pool, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, user_id, name, type, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, type, currency, created_at
	`
	var a models.Account
	err := pool.QueryRow(ctx, query, uuid.NewString(), account.UserID, account.Name, account.Type, account.Currency).
		Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	db.DelAccountCache(accountCacheKey(account.UserID))
	return &a, nil
}

func GetAccountsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Account, error) {
	cacheKey := accountCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if accounts, ok := cached.([]models.Account); ok {
			return accounts, nil
		}
	}

	query := `
		SELECT id, user_id, name, type, currency, created_at
		FROM accounts WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	db.SetAccountCache(cacheKey, accounts)
	return accounts, nil
}

func GetAccountByID(ctx context.Context, pool *pgxpool.Pool, userID, accountID string) (*models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, created_at
		FROM accounts WHERE id = $1 AND user_id = $2
	`
	var a models.Account
	err := pool.QueryRow(ctx, query, accountID, userID).
		Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func UpdateAccount(ctx context.Context, pool *pgxpool.Pool, account *models.Account) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, currency = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, type, currency, created_at
	`
	var a models.Account
	err := pool.QueryRow(ctx, query, account.Name, account.Type, account.Currency, account.ID, account.UserID).
		Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	db.DelAccountCache(accountCacheKey(account.UserID))
	return &a, nil
}

// DeleteAccount removes an account; its transactions go with it via the
// ON DELETE CASCADE constraint.
func DeleteAccount(ctx context.Context, pool *pgxpool.Pool, userID, accountID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, accountID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("account not found")
	}
	db.DelAccountCache(accountCacheKey(userID))
	return nil
}

func accountCacheKey(userID string) string {
	return "accounts:" + userID
}
