package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	t.id, t.account_id, t.category_id, t.amount, t.type,
	COALESCE(t.description, ''), t.date, t.created_at,
	c.name, COALESCE(c.icon, ''), a.name, a.currency
`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.CategoryID,
		&t.Amount,
		&t.Type,
		&t.Description,
		&t.Date,
		&t.CreatedAt,
		&t.CategoryName,
		&t.CategoryIcon,
		&t.AccountName,
		&t.Currency,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	id := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO transactions (id, account_id, category_id, amount, type, description, date)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
	`, id, txn.AccountID, txn.CategoryID, txn.Amount, txn.Type, txn.Description, txn.Date)
	if err != nil {
		return nil, err
	}
	return getTransaction(ctx, pool, id)
}

func getTransaction(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1
	`
	return scanTransaction(pool.QueryRow(ctx, query, id))
}

// GetTransactionByID returns a transaction only when its account belongs to
// the given user.
func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, txnID string) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1 AND a.user_id = $2
	`
	return scanTransaction(pool.QueryRow(ctx, query, txnID, userID))
}

// ListTransactions returns one page of the user's transactions, newest first,
// plus the total row count for the filter.
func ListTransactions(ctx context.Context, pool *pgxpool.Pool, userID string, f models.TransactionFilters) ([]models.Transaction, int, error) {
	where := "a.user_id = $1"
	args := []interface{}{userID}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		where += fmt.Sprintf(" AND "+clause, len(args))
	}
	if f.CategoryID != "" {
		addArg("t.category_id = $%d", f.CategoryID)
	}
	if f.Type == models.TypeIncome || f.Type == models.TypeExpense {
		addArg("t.type = $%d", f.Type)
	}
	if f.Search != "" {
		addArg("t.description ILIKE $%d", "%"+f.Search+"%")
	}
	if f.DateFrom != nil {
		addArg("t.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		addArg("t.date <= $%d", *f.DateTo)
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE ` + where
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT `+transactionColumns+`
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		JOIN categories c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		txns = append(txns, *t)
	}
	return txns, total, rows.Err()
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID string, txn *models.Transaction) (*models.Transaction, error) {
	cmd, err := pool.Exec(ctx, `
		UPDATE transactions t
		SET amount = $1, type = $2, description = NULLIF($3, ''), date = $4, category_id = $5, account_id = $6
		FROM accounts a
		WHERE t.id = $7 AND a.id = t.account_id AND a.user_id = $8
	`, txn.Amount, txn.Type, txn.Description, txn.Date, txn.CategoryID, txn.AccountID, txn.ID, userID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("transaction not found")
	}
	return getTransaction(ctx, pool, txn.ID)
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, txnID string) error {
	cmd, err := pool.Exec(ctx, `
		DELETE FROM transactions t
		USING accounts a
		WHERE t.id = $1 AND a.id = t.account_id AND a.user_id = $2
	`, txnID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}

// GetTransactionsSince returns the user's transactions dated on or after
// since, joined with category and account data for the aggregators. An empty
// currency means all currencies.
func GetTransactionsSince(ctx context.Context, pool *pgxpool.Pool, userID string, since time.Time, currency string) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		JOIN categories c ON c.id = t.category_id
		WHERE a.user_id = $1 AND t.date >= $2
	`
	args := []interface{}{userID, since}
	if currency != "" {
		args = append(args, currency)
		query += " AND a.currency = $3"
	}
	query += " ORDER BY t.date DESC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// GetExpensesForMonth returns the user's expense transactions with
// start <= date < end across all accounts, for budget evaluation.
func GetExpensesForMonth(ctx context.Context, pool *pgxpool.Pool, userID string, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		JOIN categories c ON c.id = t.category_id
		WHERE a.user_id = $1 AND t.type = 'EXPENSE' AND t.date >= $2 AND t.date < $3
	`
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// PeriodSummary aggregates one currency's activity over start <= date < end,
// plus the running balance across all time.
type PeriodSummary struct {
	Income   float64
	Expenses float64
	Count    int
	Balance  float64
}

func GetPeriodSummary(ctx context.Context, pool *pgxpool.Pool, userID, currency string, start, end time.Time) (PeriodSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'INCOME' AND t.date >= $3 AND t.date < $4), 0),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'EXPENSE' AND t.date >= $3 AND t.date < $4), 0),
			COUNT(*) FILTER (WHERE t.date >= $3 AND t.date < $4),
			COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE -t.amount END), 0)
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = $1 AND a.currency = $2
	`
	var s PeriodSummary
	err := pool.QueryRow(ctx, query, userID, currency, start, end).Scan(&s.Income, &s.Expenses, &s.Count, &s.Balance)
	return s, err
}

// BulkInsertTransactions copies imported rows into one account using the
// postgres COPY protocol and returns how many were written.
func BulkInsertTransactions(ctx context.Context, pool *pgxpool.Pool, accountID string, txns []models.Transaction) (int, error) {
	rows := make([][]interface{}, 0, len(txns))
	for _, t := range txns {
		var desc interface{}
		if t.Description != "" {
			desc = t.Description
		}
		rows = append(rows, []interface{}{
			uuid.NewString(), accountID, t.CategoryID, t.Amount, t.Type, desc, t.Date,
		})
	}

	copied, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"transactions"},
		[]string{"id", "account_id", "category_id", "amount", "type", "description", "date"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, err
	}
	return int(copied), nil
}
