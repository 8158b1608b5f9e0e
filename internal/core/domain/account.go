package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// User is a learner account. StripeCustomerID is set the first time the user
// starts a checkout.
type User struct {
	ID               int64
	Email            string
	Username         string
	StripeCustomerID null.String
	CreatedAt        time.Time
}

// SubscriptionStatus mirrors the Stripe subscription status values.
type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionTrialing   SubscriptionStatus = "trialing"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionUnpaid     SubscriptionStatus = "unpaid"
)

// TierPremium is the only paid tier.
const TierPremium = "premium"

// Subscription is the local copy of a user's Stripe subscription.
type Subscription struct {
	UserID               int64
	StripeSubscriptionID null.String
	Status               SubscriptionStatus
	Tier                 string
	CurrentPeriodEnd     null.Time
	CancelAtPeriodEnd    bool
	UpdatedAt            time.Time
}

// IsActive reports whether the subscription unlocks premium features at now.
// A missing period end is treated as open-ended.
func (s *Subscription) IsActive(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Status != SubscriptionActive && s.Status != SubscriptionTrialing {
		return false
	}
	if s.CurrentPeriodEnd.Valid && !s.CurrentPeriodEnd.Time.After(now) {
		return false
	}
	return true
}
