package services

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
)

// dashboardService composes read-only aggregates over the transaction set.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// monthRange returns the half-open [start, end) range covering the calendar
// month of t.
func monthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// GetStats computes the current month's income and expense totals, the
// all-time balance, and the current month's expense breakdown by category.
// The three aggregates are independent reads and run concurrently; all sums
// are integer cents, so totals carry no floating-point drift. A kind with no
// matching rows contributes zero, never a missing field.
func (s *dashboardService) GetStats(userID uint) (*DashboardStats, error) {
	monthStart, monthEnd := monthRange(time.Now().UTC())

	stats := &DashboardStats{
		CategoryBreakdown: make([]CategoryAmount, 0),
	}

	var g errgroup.Group

	g.Go(func() error {
		type typeTotal struct {
			TransactionType models.TransactionType
			Total           int64
		}
		var rows []typeTotal
		err := s.db.Model(&models.Transaction{}).
			Select("transaction_type, SUM(amount_cents) AS total").
			Where("user_id = ? AND date >= ? AND date < ?", userID, monthStart, monthEnd).
			Group("transaction_type").
			Scan(&rows).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, row := range rows {
			switch row.TransactionType {
			case models.TransactionTypeIncome:
				stats.Income = money.Cents(row.Total)
			case models.TransactionTypeExpense:
				stats.Expenses = money.Cents(row.Total)
			}
		}
		return nil
	})

	g.Go(func() error {
		type categoryTotal struct {
			Category string
			Total    int64
		}
		var rows []categoryTotal
		err := s.db.Model(&models.Transaction{}).
			Select("category, SUM(amount_cents) AS total").
			Where("user_id = ? AND transaction_type = ? AND date >= ? AND date < ?",
				userID, models.TransactionTypeExpense, monthStart, monthEnd).
			Group("category").
			Order("category ASC").
			Scan(&rows).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		breakdown := make([]CategoryAmount, 0, len(rows))
		for _, row := range rows {
			breakdown = append(breakdown, CategoryAmount{Category: row.Category, Amount: money.Cents(row.Total)})
		}
		stats.CategoryBreakdown = breakdown
		return nil
	})

	g.Go(func() error {
		// Lifetime balance, not month-scoped.
		var balance int64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount_cents ELSE -amount_cents END), 0)",
				models.TransactionTypeIncome).
			Where("user_id = ?", userID).
			Scan(&balance).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		stats.Balance = money.Cents(balance)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
