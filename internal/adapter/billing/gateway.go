package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"marketsim/internal/config/configs"
	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

// Gateway implements port.BillingGateway on the Stripe API.
type Gateway struct {
	api *client.API
	cfg configs.Stripe
}

// NewGateway creates a gateway using the default Stripe backends.
func NewGateway(cfg configs.Stripe) *Gateway {
	return NewGatewayWithBackends(cfg, nil)
}

// NewGatewayWithBackends creates a gateway talking to custom backends, used
// to point the client at a test server.
func NewGatewayWithBackends(cfg configs.Stripe, backends *stripe.Backends) *Gateway {
	return &Gateway{api: client.New(cfg.SecretKey, backends), cfg: cfg}
}

func (g *Gateway) CreateCustomer(ctx context.Context, user domain.User) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Username),
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatInt(user.ID, 10))

	c, err := g.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// CreateCheckoutSession opens a subscription checkout for the premium price.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, req port.CheckoutReq) (*port.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(req.CustomerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(g.cfg.PriceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(g.cfg.SuccessURL),
		CancelURL:         stripe.String(g.cfg.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(req.UserID, 10)),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &port.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *Gateway) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	_, err := g.api.Subscriptions.Cancel(subscriptionID, params)
	return err
}

// ParseWebhook verifies the Stripe-Signature header and decodes the events
// that change a subscription. Other event types decode to nil.
func (g *Gateway) ParseWebhook(payload []byte, signature string) (*port.BillingEvent, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, g.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}
	if ev.Data == nil {
		return nil, nil
	}

	switch ev.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err = json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("decode subscription: %w", err)
		}
		out := &port.BillingEvent{
			Type:              string(ev.Type),
			SubscriptionID:    sub.ID,
			Status:            domain.SubscriptionStatus(sub.Status),
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		if sub.CurrentPeriodEnd > 0 {
			out.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		}
		return out, nil

	case "checkout.session.completed":
		var s stripe.CheckoutSession
		if err = json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}
		if s.Mode != stripe.CheckoutSessionModeSubscription {
			return nil, nil
		}
		out := &port.BillingEvent{Type: string(ev.Type)}
		if s.Customer != nil {
			out.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}
		return out, nil
	}
	return nil, nil
}
