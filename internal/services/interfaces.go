package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/money"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password, email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
}

// TransactionServicer defines the contract for transaction-related business
// logic. Every operation is scoped to the calling user; rows owned by other
// users are structurally unreachable.
type TransactionServicer interface {
	ListTransactions(userID uint) ([]models.Transaction, error)
	CreateTransaction(userID uint, amount money.Cents, category, description string, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, amount money.Cents, category, description string, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	ListBudgets(userID uint, month string) ([]models.Budget, error)
	UpsertBudget(userID uint, category string, amount money.Cents, month string) ([]models.Budget, error)
}

// CategoryAmount is a per-category expense total.
type CategoryAmount struct {
	Category string      `json:"category"`
	Amount   money.Cents `json:"amount"`
}

// DashboardStats summarizes a user's finances: income and expenses for the
// current calendar month, the all-time balance, and the current month's
// expense breakdown by category.
type DashboardStats struct {
	Income            money.Cents      `json:"income"`
	Expenses          money.Cents      `json:"expenses"`
	Balance           money.Cents      `json:"balance"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	GetStats(userID uint) (*DashboardStats, error)
}
