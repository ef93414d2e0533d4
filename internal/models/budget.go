package models

import "fintrack/internal/money"

// Budget represents a monthly spending limit for a category. At most one row
// exists per (user, category, month); repeated submissions for the same key
// replace the amount in place.
type Budget struct {
	Base
	UserID   uint        `gorm:"not null;uniqueIndex:idx_budgets_user_category_month" json:"user_id"`
	Category string      `gorm:"size:50;not null;uniqueIndex:idx_budgets_user_category_month" json:"category"`
	Amount   money.Cents `gorm:"column:amount_cents;type:bigint;not null" json:"amount"`
	Month    string      `gorm:"size:7;not null;uniqueIndex:idx_budgets_user_category_month" json:"month"`
}
