package models

import (
	"time"

	"fintrack/internal/money"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      money.Cents     `gorm:"column:amount_cents;type:bigint;not null" json:"amount"`
	Category    string          `gorm:"size:50;not null" json:"category"`
	Description string          `gorm:"size:255" json:"description"`
	Type        TransactionType `gorm:"column:transaction_type;size:10;not null" json:"transaction_type"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
}
