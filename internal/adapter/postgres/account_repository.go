package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketsim/internal/core/domain"
)

// AccountRepository implements port.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetUser returns a user by id.
func (r *AccountRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return r.findUser(ctx, `SELECT id, email, username, stripe_customer_id, created_at FROM users WHERE id = $1`, id)
}

// FindUserByStripeCustomer returns the user owning a Stripe customer.
func (r *AccountRepository) FindUserByStripeCustomer(ctx context.Context, customerID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT id, email, username, stripe_customer_id, created_at FROM users WHERE stripe_customer_id = $1`, customerID)
}

func (r *AccountRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Username, &u.StripeCustomerID, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountRepository) SetStripeCustomerID(ctx context.Context, userID int64, customerID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET stripe_customer_id = $1 WHERE id = $2`, customerID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// GetSubscription returns the user's subscription or nil.
func (r *AccountRepository) GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.pool.QueryRow(ctx, `
        SELECT user_id, stripe_subscription_id, status, tier, current_period_end, cancel_at_period_end, updated_at
        FROM subscriptions WHERE user_id = $1`, userID).
		Scan(&s.UserID, &s.StripeSubscriptionID, &s.Status, &s.Tier, &s.CurrentPeriodEnd, &s.CancelAtPeriodEnd, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSubscription inserts or replaces the user's subscription row.
func (r *AccountRepository) UpsertSubscription(ctx context.Context, s *domain.Subscription) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO subscriptions
    (user_id, stripe_subscription_id, status, tier, current_period_end, cancel_at_period_end, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (user_id) DO UPDATE SET
    stripe_subscription_id = EXCLUDED.stripe_subscription_id,
    status                 = EXCLUDED.status,
    tier                   = EXCLUDED.tier,
    current_period_end     = EXCLUDED.current_period_end,
    cancel_at_period_end   = EXCLUDED.cancel_at_period_end,
    updated_at             = EXCLUDED.updated_at`,
		s.UserID, s.StripeSubscriptionID, s.Status, s.Tier, s.CurrentPeriodEnd, s.CancelAtPeriodEnd, s.UpdatedAt)
	return err
}
