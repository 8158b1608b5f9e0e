package port

import (
	"context"

	"marketsim/internal/core/domain"
)

// CampaignUseCase defines the campaign builder operations. Every call is
// scoped to the authenticated user.
type CampaignUseCase interface {
	// CreateCampaign validates input and stores a new campaign. Validation
	// failures wrap domain.ErrInvalidCampaign or domain.ErrInvalidBudget.
	CreateCampaign(ctx context.Context, userID int64, input CampaignInput) (*domain.Campaign, error)
	// GetCampaign returns domain.ErrNotFound for unknown campaigns.
	GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, userID int64, page Page, status domain.CampaignStatus) (*CampaignList, error)
	SetStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error
	DeleteCampaign(ctx context.Context, userID, id int64) error
}

// SimulationUseCase drives the simulated performance dashboard.
type SimulationUseCase interface {
	// Simulate produces, stores and returns one new sample for a campaign
	// owned by userID.
	Simulate(ctx context.Context, userID, campaignID int64) (*domain.SimulationDataPoint, error)
	// SimulateCampaign runs the same pipeline for an already loaded campaign.
	SimulateCampaign(ctx context.Context, c domain.Campaign) (*domain.SimulationDataPoint, error)
	// History returns up to limit newest samples in ascending date order.
	// A non-positive limit selects the configured default.
	History(ctx context.Context, userID, campaignID int64, limit int) ([]domain.SimulationDataPoint, error)
	// Latest returns nil when the campaign has not been simulated yet.
	Latest(ctx context.Context, userID, campaignID int64) (*domain.SimulationDataPoint, error)
	Summary(ctx context.Context, userID, campaignID int64) (*domain.SimulationSummary, error)
}

// AccountUseCase covers the user profile and the premium subscription.
type AccountUseCase interface {
	Profile(ctx context.Context, userID int64) (*Profile, error)
	HasActiveSubscription(ctx context.Context, userID int64) (bool, error)
	// StartCheckout returns domain.ErrBillingDisabled when no payment
	// provider is configured.
	StartCheckout(ctx context.Context, userID int64) (*CheckoutSession, error)
	Cancel(ctx context.Context, userID int64) error
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// LearningUseCase covers personas, tutorial progress and quizzes.
type LearningUseCase interface {
	CreatePersona(ctx context.Context, userID int64, p domain.Persona) (*domain.Persona, error)
	ListPersonas(ctx context.Context, userID int64) ([]domain.Persona, error)
	SaveProgress(ctx context.Context, userID int64, p domain.TutorialProgress) (*domain.TutorialProgress, error)
	ListProgress(ctx context.Context, userID int64) ([]domain.TutorialProgress, error)
	RecordQuizAttempt(ctx context.Context, userID int64, a domain.QuizAttempt) (*domain.QuizAttempt, error)
	ListQuizAttempts(ctx context.Context, userID int64, quizID string) ([]domain.QuizAttempt, error)
}

// CampaignInput is the campaign builder form. It is a DTO and carries no
// behaviour.
type CampaignInput struct {
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Platform      string           `json:"platform"`
	Goal          string           `json:"goal"`
	DailyBudget   string           `json:"dailyBudget"`
	Keywords      []domain.Keyword `json:"keywords"`
	Targeting     domain.Targeting `json:"targeting"`
	AdHeadline1   string           `json:"adHeadline1"`
	AdHeadline2   string           `json:"adHeadline2"`
	AdDescription string           `json:"adDescription"`
	FinalURL      string           `json:"finalUrl"`
	Status        string           `json:"status"`
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Pagination describes the returned page.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// CampaignList is one page of campaigns.
type CampaignList struct {
	Items      []domain.Campaign
	Pagination Pagination
}

// Profile is the authenticated user with their subscription state.
type Profile struct {
	User         domain.User
	Subscription *domain.Subscription
	Premium      bool
}
