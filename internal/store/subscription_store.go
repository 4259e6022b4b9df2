package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/saveloop/saveloop/internal/models"
)

// GetCurrentSubscription returns the user's most recent subscription row,
// or nil if they never subscribed. Callers decide what an inactive or
// expired row means (it degrades to the free plan).
func (s *Store) GetCurrentSubscription(userID int64) (*models.Subscription, error) {
	var sub models.Subscription
	var paymentID sql.NullString
	var expiresAt sql.NullTime
	query := `
        SELECT id, user_id, plan_id, status, payment_id, created_at, expires_at
        FROM subscriptions WHERE user_id = ?
        ORDER BY created_at DESC, id DESC LIMIT 1
    `
	err := s.db.QueryRow(query, userID).Scan(&sub.ID, &sub.UserID, &sub.PlanID, &sub.Status, &paymentID, &sub.CreatedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if paymentID.Valid {
		sub.PaymentID = &paymentID.String
	}
	if expiresAt.Valid {
		sub.ExpiresAt = &expiresAt.Time
	}
	return &sub, nil
}

// ActivateSubscription creates the user's subscription row or, if one
// already exists, switches it to the new plan in place and reactivates it.
func (s *Store) ActivateSubscription(userID int64, planID string, paymentID *string, expiresAt *time.Time) (*models.Subscription, error) {
	existing, err := s.GetCurrentSubscription(userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		now := time.Now()
		res, err := s.db.Exec(
			"INSERT INTO subscriptions (user_id, plan_id, status, payment_id, created_at, expires_at) VALUES (?, ?, 'active', ?, ?, ?)",
			userID, planID, paymentID, now, expiresAt,
		)
		if err != nil {
			return nil, err
		}
		id, _ := res.LastInsertId()
		return &models.Subscription{
			ID:        id,
			UserID:    userID,
			PlanID:    planID,
			Status:    models.SubStatusActive,
			PaymentID: paymentID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		}, nil
	}

	_, err = s.db.Exec(
		"UPDATE subscriptions SET plan_id = ?, status = 'active', payment_id = ?, expires_at = ? WHERE id = ?",
		planID, paymentID, expiresAt, existing.ID,
	)
	if err != nil {
		return nil, err
	}
	existing.PlanID = planID
	existing.Status = models.SubStatusActive
	existing.PaymentID = paymentID
	existing.ExpiresAt = expiresAt
	return existing, nil
}

// CancelCurrentSubscription marks the user's subscription cancelled. It
// reports false when there is nothing to cancel.
func (s *Store) CancelCurrentSubscription(userID int64) (bool, error) {
	existing, err := s.GetCurrentSubscription(userID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	_, err = s.db.Exec("UPDATE subscriptions SET status = 'cancelled' WHERE id = ?", existing.ID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExpireOverdueSubscriptions flips active rows whose expiry has passed to
// 'expired'. Run periodically by the scheduler.
func (s *Store) ExpireOverdueSubscriptions(now time.Time) (int64, error) {
	query := "UPDATE subscriptions SET status = 'expired' WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < ?"
	res, err := s.db.Exec(query, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountActiveSubscriptionsByPlan returns active subscriber counts grouped
// by plan for the admin stats endpoint.
func (s *Store) CountActiveSubscriptionsByPlan() (map[string]int, error) {
	rows, err := s.db.Query("SELECT plan_id, COUNT(*) FROM subscriptions WHERE status = 'active' GROUP BY plan_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var planID string
		var count int
		if err := rows.Scan(&planID, &count); err != nil {
			return nil, err
		}
		counts[planID] = count
	}
	return counts, rows.Err()
}
