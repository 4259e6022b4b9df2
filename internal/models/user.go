package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "user" or "admin"
	CreatedAt    time.Time `json:"created_at"`
}

// Subscription statuses.
const (
	SubStatusActive    = "active"
	SubStatusCancelled = "cancelled"
	SubStatusExpired   = "expired"
)

// Subscription ties a user to a billing plan. The latest row per user is
// the current one; entitlement falls back to the free plan when it is
// absent or inactive.
type Subscription struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	PlanID    string     `json:"plan_id"`
	Status    string     `json:"status"`
	PaymentID *string    `json:"payment_id,omitempty"` // mock processor reference
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// IsActive reports whether the subscription currently grants its plan.
func (s *Subscription) IsActive() bool {
	if s == nil || s.Status != SubStatusActive {
		return false
	}
	if s.ExpiresAt != nil && s.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
