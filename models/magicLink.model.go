package models

import (
	"time"

	"gorm.io/gorm"
)

// MagicLink is a single-use, time-limited sign-in code bound to a user.
// Consumption is recorded rather than deleting the row, so a reused code can be
// told apart from an unknown one (410 vs 404).
type MagicLink struct {
	gorm.Model
	Code         string     `json:"code" gorm:"uniqueIndex;not null"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	RedirectPath string     `json:"redirect_path" gorm:"default:'/'"`
	ExpiresAt    time.Time  `json:"expires_at"`
	ConsumedAt   *time.Time `json:"consumed_at"`
}

// Expired reports whether the link is past its validity window.
func (m *MagicLink) Expired(now time.Time) bool {
	return now.After(m.ExpiresAt)
}

// Consumed reports whether the link has already been used.
func (m *MagicLink) Consumed() bool {
	return m.ConsumedAt != nil
}
