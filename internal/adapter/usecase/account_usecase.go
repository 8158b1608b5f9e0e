package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v6"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

// AccountUseCase manages user profiles and the premium subscription. The
// billing gateway may be nil, in which case every billing operation fails
// with domain.ErrBillingDisabled.
type AccountUseCase struct {
	repo    port.AccountRepository
	billing port.BillingGateway
	logger  *slog.Logger
	now     func() time.Time
}

// NewAccountUseCase creates the account usecase.
func NewAccountUseCase(repo port.AccountRepository, billing port.BillingGateway, logger *slog.Logger) *AccountUseCase {
	return &AccountUseCase{repo: repo, billing: billing, logger: logger, now: time.Now}
}

// Profile returns the user with their subscription state.
func (u *AccountUseCase) Profile(ctx context.Context, userID int64) (*port.Profile, error) {
	user, err := u.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	sub, err := u.repo.GetSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &port.Profile{
		User:         *user,
		Subscription: sub,
		Premium:      sub.IsActive(u.now()),
	}, nil
}

// HasActiveSubscription reports whether premium features are unlocked.
func (u *AccountUseCase) HasActiveSubscription(ctx context.Context, userID int64) (bool, error) {
	sub, err := u.repo.GetSubscription(ctx, userID)
	if err != nil {
		return false, err
	}
	return sub.IsActive(u.now()), nil
}

// StartCheckout creates the payment customer on first use and opens a
// subscription checkout session for it.
func (u *AccountUseCase) StartCheckout(ctx context.Context, userID int64) (*port.CheckoutSession, error) {
	if u.billing == nil {
		return nil, domain.ErrBillingDisabled
	}
	user, err := u.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	customerID := user.StripeCustomerID.ValueOrZero()
	if customerID == "" {
		customerID, err = u.billing.CreateCustomer(ctx, *user)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		if err = u.repo.SetStripeCustomerID(ctx, userID, customerID); err != nil {
			return nil, fmt.Errorf("store customer id: %w", err)
		}
		u.logger.Info("billing customer created", slog.Int64("user_id", userID), slog.String("customer_id", customerID))
	}

	session, err := u.billing.CreateCheckoutSession(ctx, port.CheckoutReq{
		UserID:         userID,
		CustomerID:     customerID,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return session, nil
}

// Cancel cancels the user's subscription with the provider and marks the
// local copy canceled.
func (u *AccountUseCase) Cancel(ctx context.Context, userID int64) error {
	if u.billing == nil {
		return domain.ErrBillingDisabled
	}
	sub, err := u.repo.GetSubscription(ctx, userID)
	if err != nil {
		return err
	}
	if sub == nil || !sub.StripeSubscriptionID.Valid || sub.Status == domain.SubscriptionCanceled {
		return fmt.Errorf("subscription of user %d: %w", userID, domain.ErrNotFound)
	}
	if err = u.billing.CancelSubscription(ctx, sub.StripeSubscriptionID.String); err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	sub.Status = domain.SubscriptionCanceled
	sub.UpdatedAt = u.now().UTC()
	return u.repo.UpsertSubscription(ctx, sub)
}

// HandleWebhook applies a verified provider event to the local
// subscription. Events for unknown customers are ignored.
func (u *AccountUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if u.billing == nil {
		return domain.ErrBillingDisabled
	}
	ev, err := u.billing.ParseWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if ev == nil || ev.CustomerID == "" {
		return nil
	}

	user, err := u.repo.FindUserByStripeCustomer(ctx, ev.CustomerID)
	if err != nil {
		return err
	}
	if user == nil {
		u.logger.Warn("webhook for unknown customer", slog.String("type", ev.Type), slog.String("customer_id", ev.CustomerID))
		return nil
	}

	sub, err := u.repo.GetSubscription(ctx, user.ID)
	if err != nil {
		return err
	}
	if sub == nil {
		sub = &domain.Subscription{UserID: user.ID, Tier: domain.TierPremium}
	}
	if ev.SubscriptionID != "" {
		sub.StripeSubscriptionID = null.StringFrom(ev.SubscriptionID)
	}
	if ev.Status != "" {
		sub.Status = ev.Status
	}
	if sub.Status == "" {
		sub.Status = domain.SubscriptionIncomplete
	}
	if !ev.CurrentPeriodEnd.IsZero() {
		sub.CurrentPeriodEnd = null.TimeFrom(ev.CurrentPeriodEnd.UTC())
	}
	if ev.FromSubscription() {
		sub.CancelAtPeriodEnd = ev.CancelAtPeriodEnd
	}
	sub.UpdatedAt = u.now().UTC()

	if err = u.repo.UpsertSubscription(ctx, sub); err != nil {
		return err
	}
	u.logger.Info("subscription updated",
		slog.Int64("user_id", user.ID),
		slog.String("type", ev.Type),
		slog.String("status", string(sub.Status)))
	return nil
}

func (u *AccountUseCase) user(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}
