package db

import (
	"context"
	"fmt"

	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetCategoriesForUser returns the system defaults plus the user's custom
// categories, ascending by name. That ordering is canonical: the
// auto-categorizer's first-match-wins scan depends on it.
func GetCategoriesForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Category, error) {
	cacheKey := categoryCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if categories, ok := cached.([]models.Category); ok {
			return categories, nil
		}
	}

	query := `
		SELECT id, name, icon, keywords, is_default, user_id
		FROM categories
		WHERE is_default = TRUE OR user_id = $1
		ORDER BY name ASC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Keywords, &c.IsDefault, &c.UserID)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	db.SetCategoryCache(cacheKey, categories)
	return categories, nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, categoryID string) (*models.Category, error) {
	query := `
		SELECT id, name, icon, keywords, is_default, user_id
		FROM categories WHERE id = $1
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, categoryID).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Keywords, &c.IsDefault, &c.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (id, name, icon, keywords, is_default, user_id)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id, name, icon, keywords, is_default, user_id
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, uuid.NewString(), category.Name, category.Icon, category.Keywords, category.UserID).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Keywords, &c.IsDefault, &c.UserID)
	if err != nil {
		return nil, err
	}
	db.ClearAllCategoryCaches()
	return &c, nil
}

func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, icon = $2, keywords = $3
		WHERE id = $4 AND user_id = $5 AND is_default = FALSE
		RETURNING id, name, icon, keywords, is_default, user_id
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, category.Name, category.Icon, category.Keywords, category.ID, category.UserID).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Keywords, &c.IsDefault, &c.UserID)
	if err != nil {
		return nil, err
	}
	db.ClearAllCategoryCaches()
	return &c, nil
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2 AND is_default = FALSE`
	cmd, err := pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category not found")
	}
	db.ClearAllCategoryCaches()
	return nil
}

// CountTransactionsForCategory reports how many transactions reference a
// category. Deletion is blocked while the count is non-zero.
func CountTransactionsForCategory(ctx context.Context, pool *pgxpool.Pool, categoryID string) (int, error) {
	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func categoryCacheKey(userID string) string {
	return "categories:" + userID
}
