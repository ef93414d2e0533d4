package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
)

// monthLayout is the ISO year-month key used for budgets, e.g. "2024-03".
const monthLayout = "2006-01"

// CurrentMonth returns the current calendar month as an ISO year-month key.
func CurrentMonth() string {
	return time.Now().UTC().Format(monthLayout)
}

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// ListBudgets returns the user's budgets for the given month. An empty month
// defaults to the current calendar month.
func (s *budgetService) ListBudgets(userID uint, month string) ([]models.Budget, error) {
	if month == "" {
		month = CurrentMonth()
	}

	budgets := make([]models.Budget, 0)
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// UpsertBudget inserts a budget for (user, category, month) or replaces its
// amount if the row already exists. The write is a single conditional insert
// resolved by the unique key, so concurrent upserts for the same key cannot
// produce duplicates. Returns the user's full budget set for the month so
// callers can refresh their view atomically.
func (s *budgetService) UpsertBudget(userID uint, category string, amount money.Cents, month string) ([]models.Budget, error) {
	if category == "" || amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category and amount are required")
	}
	if month == "" {
		month = CurrentMonth()
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount_cents": int64(amount),
			"updated_at":   time.Now(),
		}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.ListBudgets(userID, month)
}
