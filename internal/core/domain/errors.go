package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCampaign      = errors.New("invalid campaign")
	ErrInvalidBudget        = errors.New("invalid daily budget")
	ErrSubscriptionRequired = errors.New("active subscription required")
	ErrBillingDisabled      = errors.New("billing is not configured")
)
