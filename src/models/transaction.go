package models

import "time"

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Transaction amounts are always stored positive; the sign is carried by Type.
// The category and account fields after CreatedAt are filled by list queries
// that join the related tables.
type Transaction struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	CategoryID   string    `json:"category_id"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryName string    `json:"category_name,omitempty"`
	CategoryIcon string    `json:"category_icon,omitempty"`
	AccountName  string    `json:"account_name,omitempty"`
	Currency     string    `json:"currency,omitempty"`
}

// TransactionFilters narrows list queries. Zero values mean no filter.
type TransactionFilters struct {
	CategoryID string
	Type       string
	Search     string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}
