package sessions

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestIssueAndResolve(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, time.Hour)
		user := testutil.CreateTestUser(t, db)

		token, err := store.Issue(user.ID)
		testutil.AssertNoError(t, err)
		if token == "" {
			t.Fatal("expected non-empty token")
		}

		session, err := store.Resolve(token)
		testutil.AssertNoError(t, err)
		if session.UserID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, session.UserID)
		}
	})

	t.Run("raw_token_never_stored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, time.Hour)
		user := testutil.CreateTestUser(t, db)

		token, err := store.Issue(user.ID)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Session{}).Where("token_hash = ?", token).Count(&count)
		if count != 0 {
			t.Error("raw token must not appear in the database")
		}
		db.Model(&models.Session{}).Where("token_hash = ?", HashToken(token)).Count(&count)
		if count != 1 {
			t.Error("expected the token digest to be stored")
		}
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, time.Hour)

		_, err := store.Resolve("no-such-token")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("expired_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, -time.Minute) // already expired at issue time
		user := testutil.CreateTestUser(t, db)

		token, err := store.Issue(user.ID)
		testutil.AssertNoError(t, err)

		_, err = store.Resolve(token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}

func TestRevoke(t *testing.T) {
	t.Run("revoked_token_stops_resolving", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, time.Hour)
		user := testutil.CreateTestUser(t, db)

		token, err := store.Issue(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, store.Revoke(token))

		_, err = store.Resolve(token)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("unknown_token_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewStore(db, time.Hour)

		testutil.AssertNoError(t, store.Revoke("no-such-token"))
	})
}

func TestDeleteExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)

	expired := NewStore(db, -time.Minute)
	live := NewStore(db, time.Hour)

	if _, err := expired.Issue(user.ID); err != nil {
		t.Fatalf("failed to issue expired session: %v", err)
	}
	if _, err := expired.Issue(user.ID); err != nil {
		t.Fatalf("failed to issue expired session: %v", err)
	}
	liveToken, err := live.Issue(user.ID)
	testutil.AssertNoError(t, err)

	deleted, err := live.DeleteExpired()
	testutil.AssertNoError(t, err)
	if deleted != 2 {
		t.Errorf("expected 2 deleted sessions, got %d", deleted)
	}

	_, err = live.Resolve(liveToken)
	testutil.AssertNoError(t, err)
}
