package api

// Handlers for the plan catalog, the caller's subscription and the daily
// usage snapshot.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saveloop/saveloop/internal/billing"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"plans": billing.Plans()})
}

// handleGetSubscription returns the caller's subscription row together with
// the plan it resolves to. Users who never subscribed get the free plan and
// a null subscription.
func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	sub, err := s.store.GetCurrentSubscription(user.ID)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to load subscription")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"subscription": sub,
		"plan":         s.billing.EffectivePlan(user),
	})
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		Plan          string `json:"plan"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	sub, payment, err := s.billing.Subscribe(user, payload.Plan, payload.PaymentMethod)
	if err != nil {
		if errors.Is(err, billing.ErrUnknownPlan) {
			RespondWithError(w, http.StatusBadRequest, "unknown_plan", "No such subscription plan")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to activate subscription")
		return
	}

	response := map[string]interface{}{"subscription": sub}
	if payment != nil {
		response["payment"] = payment
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (s *Server) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := s.billing.CancelSubscription(user); err != nil {
		if errors.Is(err, billing.ErrNoSubscription) {
			RespondWithError(w, http.StatusBadRequest, "no_subscription", "There is no active subscription to cancel")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to cancel subscription")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Subscription cancelled. You are back on the free plan."})
}

func (s *Server) handleGetUsage(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	usage, err := s.billing.Usage(r.Context(), user)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to compute usage")
		return
	}
	RespondWithJSON(w, http.StatusOK, usage)
}
