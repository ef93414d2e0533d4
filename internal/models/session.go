package models

import "time"

// Session is a server-side login session keyed by the SHA-256 digest of the
// opaque token stored in the client cookie. The raw token is never persisted.
type Session struct {
	Base
	TokenHash string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}
