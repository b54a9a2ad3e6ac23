package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session is a persisted refresh session. Only the SHA-256 hash of the
// refresh token is stored.
type Session struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	RefreshTokenHash string    `gorm:"uniqueIndex" json:"-"`
	ExpiresAt        time.Time `json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
