package httpadapter

import (
	"io"
	"net/http"

	"github.com/guregu/null/v6"
)

const maxWebhookBody = 64 << 10

type subscriptionResponse struct {
	Status            string    `json:"status"`
	Tier              string    `json:"tier"`
	CurrentPeriodEnd  null.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool      `json:"cancelAtPeriodEnd"`
}

type profileResponse struct {
	ID           int64                 `json:"id"`
	Email        string                `json:"email"`
	Username     string                `json:"username"`
	Premium      bool                  `json:"premium"`
	Subscription *subscriptionResponse `json:"subscription"`
}

// handleMe returns the stub user with their subscription state.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	p, err := h.accounts.Profile(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := profileResponse{
		ID:       p.User.ID,
		Email:    p.User.Email,
		Username: p.User.Username,
		Premium:  p.Premium,
	}
	if s := p.Subscription; s != nil {
		resp.Subscription = &subscriptionResponse{
			Status:            string(s.Status),
			Tier:              s.Tier,
			CurrentPeriodEnd:  s.CurrentPeriodEnd,
			CancelAtPeriodEnd: s.CancelAtPeriodEnd,
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleCheckout starts a hosted checkout and returns its id and URL.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s, err := h.accounts.StartCheckout(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Cancel(r.Context(), userID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBillingWebhook receives Stripe events. The signature is verified
// by the billing gateway, so this route is not behind the auth stub.
func (h *Handler) handleBillingWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}
	if err = h.accounts.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
