package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Only active campaigns
// are picked up by the simulation ticker.
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused:
		return true
	}
	return false
}

// MatchType is the keyword match type of the simulated ad platform.
type MatchType string

const (
	MatchBroad  MatchType = "broad"
	MatchPhrase MatchType = "phrase"
	MatchExact  MatchType = "exact"
)

// Valid reports whether m is a known match type.
func (m MatchType) Valid() bool {
	switch m {
	case MatchBroad, MatchPhrase, MatchExact:
		return true
	}
	return false
}

// Ad copy limits of the simulated platform, in characters.
const (
	MaxHeadlineLength    = 30
	MaxDescriptionLength = 90
)

// Keyword is a single keyword a campaign bids on.
type Keyword struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"matchType"`
}

// Campaign represents a learner's ad campaign built with the campaign
// builder. DailyBudget is kept as a decimal string the way it is entered in
// the builder form; it is normalised to two decimals on creation.
type Campaign struct {
	ID            int64
	UserID        int64
	Name          string
	Type          string // search, display, video, shopping
	Platform      string
	Goal          string // sales, leads, traffic, awareness
	DailyBudget   string
	Keywords      []Keyword
	Targeting     Targeting
	AdHeadline1   string
	AdHeadline2   string
	AdDescription string
	FinalURL      string
	Status        CampaignStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
