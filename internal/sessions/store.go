// Package sessions implements the server-side session store. A session is a
// database row keyed by the SHA-256 digest of an opaque token; the raw token
// travels only in an http-only cookie.
package sessions

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// CookieName is the name of the session cookie.
const CookieName = "fintrack_session"

// Storer defines the contract for session persistence.
type Storer interface {
	Issue(userID uint) (string, error)
	Resolve(token string) (*models.Session, error)
	Revoke(token string) error
	DeleteExpired() (int64, error)
}

// store persists sessions in the database.
type store struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewStore creates a Storer with the given session lifetime.
func NewStore(db *gorm.DB, ttl time.Duration) Storer {
	return &store{db: db, ttl: ttl}
}

// HashToken returns the SHA-256 hex digest of a token string.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// Issue creates a new session for the user and returns the raw token.
func (s *store) Issue(userID uint) (string, error) {
	token := uuid.NewString()

	session := &models.Session{
		TokenHash: HashToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return token, nil
}

// Resolve maps a raw token to its session. An unknown or expired token
// yields ErrUnauthorized.
func (s *store) Resolve(token string) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("token_hash = ?", HashToken(token)).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if time.Now().After(session.ExpiresAt) {
		// Expired rows are removed eagerly; the sweeper catches the rest.
		s.db.Delete(&session)
		return nil, apperrors.ErrUnauthorized
	}

	return &session, nil
}

// Revoke deletes the session for the given token. Revoking an unknown token
// is a no-op.
func (s *store) Revoke(token string) error {
	if err := s.db.Where("token_hash = ?", HashToken(token)).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
// rows were deleted.
func (s *store) DeleteExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}
