package port

import (
	"context"
	"strings"
	"time"

	"marketsim/internal/core/domain"
)

// AccountRepository persists users and their subscriptions.
type AccountRepository interface {
	// GetUser returns nil when the user does not exist.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	// FindUserByStripeCustomer returns nil when no user owns the customer.
	FindUserByStripeCustomer(ctx context.Context, customerID string) (*domain.User, error)
	SetStripeCustomerID(ctx context.Context, userID int64, customerID string) error
	// GetSubscription returns nil when the user never subscribed.
	GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error)
	UpsertSubscription(ctx context.Context, sub *domain.Subscription) error
}

// LearningRepository persists personas and learning progress.
type LearningRepository interface {
	CreatePersona(ctx context.Context, p *domain.Persona) error
	ListPersonas(ctx context.Context, userID int64) ([]domain.Persona, error)
	SaveProgress(ctx context.Context, p *domain.TutorialProgress) error
	ListProgress(ctx context.Context, userID int64) ([]domain.TutorialProgress, error)
	CreateQuizAttempt(ctx context.Context, a *domain.QuizAttempt) error
	ListQuizAttempts(ctx context.Context, userID int64, quizID string) ([]domain.QuizAttempt, error)
}

// BillingGateway is the outbound port to the payment provider.
type BillingGateway interface {
	// CreateCustomer registers a customer and returns its provider id.
	CreateCustomer(ctx context.Context, user domain.User) (string, error)
	// CreateCheckoutSession starts a hosted subscription checkout.
	CreateCheckoutSession(ctx context.Context, req CheckoutReq) (*CheckoutSession, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	// ParseWebhook verifies and decodes a webhook. Events that do not affect
	// subscriptions decode to nil.
	ParseWebhook(payload []byte, signature string) (*BillingEvent, error)
}

// CheckoutReq asks for a subscription checkout of one customer.
type CheckoutReq struct {
	UserID         int64
	CustomerID     string
	IdempotencyKey string
}

// CheckoutSession is the hosted checkout page the user is sent to.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// BillingEvent is a subscription change reported by the payment provider.
type BillingEvent struct {
	Type              string
	CustomerID        string
	SubscriptionID    string
	Status            domain.SubscriptionStatus
	CurrentPeriodEnd  time.Time // zero when unknown
	CancelAtPeriodEnd bool
}

// FromSubscription reports whether the event carries the full subscription
// state, including CancelAtPeriodEnd. Checkout events do not.
func (e BillingEvent) FromSubscription() bool {
	return strings.HasPrefix(e.Type, "customer.subscription.")
}
