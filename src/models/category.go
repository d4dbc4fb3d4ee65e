package models

// Category is either a system default (IsDefault, UserID nil, shared by every
// user, immutable) or a user-owned custom category. Keywords drive
// auto-categorization of imported transactions.
type Category struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Keywords  []string `json:"keywords"`
	IsDefault bool     `json:"is_default"`
	UserID    *string  `json:"user_id,omitempty"`
}
