package models

import "time"

// Budget is unique per (user, category, month, year); creating a duplicate
// updates the existing limit instead. CategoryName/Icon are filled by the
// list query join.
type Budget struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CategoryID   string    `json:"category_id"`
	MonthlyLimit float64   `json:"monthly_limit"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryName string    `json:"category_name,omitempty"`
	CategoryIcon string    `json:"category_icon,omitempty"`
}
