package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestListBudgets(t *testing.T) {
	t.Run("scoped_to_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, "food", 10000, "2024-03")
		testutil.CreateTestBudget(t, db, user.ID, "rent", 80000, "2024-03")
		testutil.CreateTestBudget(t, db, user.ID, "food", 12000, "2024-04")

		budgets, err := svc.ListBudgets(user.ID, "2024-03")
		testutil.AssertNoError(t, err)
		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
	})

	t.Run("empty_month_defaults_to_current", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, "food", 10000, CurrentMonth())
		testutil.CreateTestBudget(t, db, user.ID, "food", 10000, "2000-01")

		budgets, err := svc.ListBudgets(user.ID, "")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget for the current month, got %d", len(budgets))
		}
		if budgets[0].Month != CurrentMonth() {
			t.Errorf("expected month %s, got %s", CurrentMonth(), budgets[0].Month)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, "food", 10000, "2024-03")
		testutil.CreateTestBudget(t, db, user2.ID, "food", 20000, "2024-03")

		budgets, err := svc.ListBudgets(user1.ID, "2024-03")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		if budgets[0].Amount != 10000 {
			t.Errorf("expected amount 10000, got %d", budgets[0].Amount)
		}
	})
}

func TestUpsertBudget(t *testing.T) {
	t.Run("insert_then_replace_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertBudget(user.ID, "food", 10000, "2024-03")
		testutil.AssertNoError(t, err)

		budgets, err := svc.UpsertBudget(user.ID, "food", 15000, "2024-03")
		testutil.AssertNoError(t, err)

		if len(budgets) != 1 {
			t.Fatalf("expected exactly 1 budget row, got %d", len(budgets))
		}
		if budgets[0].Amount != 15000 {
			t.Errorf("expected amount 15000, got %d", budgets[0].Amount)
		}

		var count int64
		db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 row in table, got %d", count)
		}
	})

	t.Run("returns_full_month_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, "rent", 80000, "2024-03")

		budgets, err := svc.UpsertBudget(user.ID, "food", 10000, "2024-03")
		testutil.AssertNoError(t, err)
		if len(budgets) != 2 {
			t.Fatalf("expected the full set of 2 budgets, got %d", len(budgets))
		}
	})

	t.Run("same_category_different_month_inserts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertBudget(user.ID, "food", 10000, "2024-03")
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertBudget(user.ID, "food", 12000, "2024-04")
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 rows, got %d", count)
		}
	})

	t.Run("same_category_other_user_inserts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertBudget(user1.ID, "food", 10000, "2024-03")
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertBudget(user2.ID, "food", 20000, "2024-03")
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Budget{}).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 rows, got %d", count)
		}
	})

	t.Run("missing_category_or_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertBudget(user.ID, "", 10000, "2024-03")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.UpsertBudget(user.ID, "food", 0, "2024-03")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_month_defaults_to_current", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budgets, err := svc.UpsertBudget(user.ID, "food", 10000, "")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		if budgets[0].Month != CurrentMonth() {
			t.Errorf("expected month %s, got %s", CurrentMonth(), budgets[0].Month)
		}
	})
}
