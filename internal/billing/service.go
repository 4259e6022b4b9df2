package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/store"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnknownPlan     = errors.New("unknown subscription plan")
	ErrNoSubscription  = errors.New("no active subscription")
)

// QuotaKind says which gate a denial came from.
type QuotaKind string

const (
	QuotaCount QuotaKind = "count"
	QuotaData  QuotaKind = "data"
)

// QuotaError is returned when a download would exceed the day's
// allowance. Message is ready to show the user.
type QuotaError struct {
	Kind    QuotaKind
	Message string
}

func (e *QuotaError) Error() string { return e.Message }

// Usage is the entitlement snapshot served to the client.
type Usage struct {
	PlanID        string `json:"plan_id"`
	PlanName      string `json:"plan_name"`
	AdFree        bool   `json:"ad_free"`
	VideosUsed    int    `json:"videos_used"`
	VideosLimit   Quota  `json:"videos_limit"`
	VideosLeft    Quota  `json:"videos_left"`
	ImagesUsed    int    `json:"images_used"`
	ImagesLimit   Quota  `json:"images_limit"`
	ImagesLeft    Quota  `json:"images_left"`
	DataUsedBytes int64  `json:"data_used_bytes,omitempty"`
	DataCapBytes  int64  `json:"data_cap_bytes,omitempty"`
	DataLeftBytes int64  `json:"data_left_bytes,omitempty"`
}

// Payment is the mock processor's receipt for a paid plan.
type Payment struct {
	PaymentID    string `json:"payment_id"`
	Confirmation string `json:"confirmation"`
	Method       string `json:"method"`
	AmountCents  int    `json:"amount_cents"`
	Currency     string `json:"currency"`
}

// Service answers entitlement questions against the download history
// and manages subscription rows.
type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// EffectivePlan resolves the user's current plan: an active, unexpired
// subscription mapped through the legacy identifiers, or free. An
// unknown identifier degrades to free with a warning, never a denial.
func (s *Service) EffectivePlan(user *models.User) Plan {
	if user == nil {
		return FreePlan()
	}
	sub, err := s.st.GetCurrentSubscription(user.ID)
	if err != nil {
		log.Printf("Failed to load subscription for user %d: %v", user.ID, err)
		return FreePlan()
	}
	if !sub.IsActive() {
		return FreePlan()
	}
	plan, ok := PlanByID(sub.PlanID)
	if !ok {
		log.Printf("Unknown plan '%s' for user %d; defaulting to free", sub.PlanID, user.ID)
		return FreePlan()
	}
	return plan
}

// CanDownload checks whether one more download of the given kind fits
// under the user's plan today. Counting covers every attempt, not just
// completed ones; the free tier additionally carries a daily data cap
// over completed bytes. Both gates reset at local midnight.
func (s *Service) CanDownload(ctx context.Context, user *models.User, contentType models.ContentType) error {
	if user == nil {
		return ErrUnauthenticated
	}
	plan := s.EffectivePlan(user)
	since := midnight(time.Now())

	quota := plan.Videos
	if contentType == models.ContentImage {
		quota = plan.Images
	}
	if !quota.Unlimited {
		used, err := s.st.CountDownloadsSince(user.ID, contentType, since)
		if err != nil {
			return err
		}
		if !quota.Allows(used) {
			return countQuotaError(contentType)
		}
	}

	if plan.ID == FreePlanID {
		used, err := s.st.SumCompletedBytesSince(user.ID, since)
		if err != nil {
			return err
		}
		if used >= FreeDataCapBytes {
			return &QuotaError{
				Kind:    QuotaData,
				Message: "You have reached the free tier's daily data cap. Please upgrade your plan.",
			}
		}
	}
	return nil
}

func countQuotaError(contentType models.ContentType) *QuotaError {
	if contentType == models.ContentImage {
		return &QuotaError{
			Kind:    QuotaCount,
			Message: "You have reached your daily image download limit. Please upgrade your plan.",
		}
	}
	return &QuotaError{
		Kind:    QuotaCount,
		Message: "You have reached your daily video download limit. Please upgrade your plan.",
	}
}

// ResolveQuality clamps the requested video quality to what the plan
// allows. The caller persists the clamped value, so history shows what
// was actually fetched.
func ResolveQuality(plan Plan, contentType models.ContentType, requested string) string {
	if contentType != models.ContentVideo || plan.MaxQuality != "720p" {
		return requested
	}
	switch requested {
	case "1080p", "2160p", "4K", "Best":
		return "720p"
	}
	return requested
}

// Usage builds the entitlement snapshot for the API. Data fields are
// only populated on the capped tier.
func (s *Service) Usage(ctx context.Context, user *models.User) (*Usage, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	plan := s.EffectivePlan(user)
	since := midnight(time.Now())

	videos, err := s.st.CountDownloadsSince(user.ID, models.ContentVideo, since)
	if err != nil {
		return nil, err
	}
	images, err := s.st.CountDownloadsSince(user.ID, models.ContentImage, since)
	if err != nil {
		return nil, err
	}

	u := &Usage{
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		AdFree:      plan.AdFree,
		VideosUsed:  videos,
		VideosLimit: plan.Videos,
		VideosLeft:  plan.Videos.Remaining(videos),
		ImagesUsed:  images,
		ImagesLimit: plan.Images,
		ImagesLeft:  plan.Images.Remaining(images),
	}
	if plan.ID == FreePlanID {
		used, err := s.st.SumCompletedBytesSince(user.ID, since)
		if err != nil {
			return nil, err
		}
		u.DataUsedBytes = used
		u.DataCapBytes = FreeDataCapBytes
		if left := FreeDataCapBytes - used; left > 0 {
			u.DataLeftBytes = left
		}
	}
	return u, nil
}

// Checkout simulates a payment processor round trip and returns the
// receipt the real integration would. No money moves.
func Checkout(plan Plan, method string) Payment {
	if method == "" {
		method = "stripe"
	}
	return Payment{
		PaymentID:    fmt.Sprintf("%s_%d", method, time.Now().Unix()),
		Confirmation: "CONF-" + strings.ToUpper(uuid.New().String()[:8]),
		Method:       method,
		AmountCents:  plan.PriceCents,
		Currency:     plan.Currency,
	}
}

// Subscribe puts the user on a plan. Free activates immediately; paid
// plans pass through the mock checkout and get a one-month expiry.
// Subscribing while already subscribed switches the plan in place.
func (s *Service) Subscribe(user *models.User, planID, method string) (*models.Subscription, *Payment, error) {
	if user == nil {
		return nil, nil, ErrUnauthenticated
	}
	plan, ok := PlanByID(planID)
	if !ok {
		return nil, nil, ErrUnknownPlan
	}

	if plan.PriceCents == 0 {
		sub, err := s.st.ActivateSubscription(user.ID, plan.ID, nil, nil)
		return sub, nil, err
	}

	payment := Checkout(plan, method)
	expires := time.Now().AddDate(0, 1, 0)
	sub, err := s.st.ActivateSubscription(user.ID, plan.ID, &payment.PaymentID, &expires)
	if err != nil {
		return nil, nil, err
	}
	return sub, &payment, nil
}

// CancelSubscription marks the user's subscription cancelled.
// Entitlements drop to free on the next check.
func (s *Service) CancelSubscription(user *models.User) error {
	if user == nil {
		return ErrUnauthenticated
	}
	sub, err := s.st.GetCurrentSubscription(user.ID)
	if err != nil {
		return err
	}
	if !sub.IsActive() {
		return ErrNoSubscription
	}
	_, err = s.st.CancelCurrentSubscription(user.ID)
	return err
}

// midnight returns the start of the given moment's day in its own
// location. Quotas reset here, not on a rolling 24h window.
func midnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
