package models

import "time"

// SavingsGoal tracks progress toward a target. CurrentAmount only changes via
// deposit/withdraw operations and is clamped at zero on withdrawal; it may
// exceed TargetAmount.
type SavingsGoal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Currency      string     `json:"currency"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
