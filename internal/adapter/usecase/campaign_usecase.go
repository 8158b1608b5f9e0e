package usecase

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
	"marketsim/internal/core/simulation"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultCampaignType = "search"
	defaultPlatform     = "google_ads"
)

// maxDailyBudget is the largest value the daily_budget NUMERIC(12,2) column
// holds.
var maxDailyBudget = decimal.RequireFromString("9999999999.99")

// CampaignUseCase implements port.CampaignUseCase on top of a
// CampaignRepository.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// CreateCampaign validates the builder input, normalises the budget to two
// decimals and stores the campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, userID int64, input port.CampaignInput) (*domain.Campaign, error) {
	c, err := buildCampaign(userID, input)
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

// GetCampaign returns a campaign owned by userID.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// ListCampaigns returns one page of the user's campaigns. Page numbers
// start at 1; out of range values fall back to the defaults.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, userID int64, page port.Page, status domain.CampaignStatus) (*port.CampaignList, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}
	// Keeps (Number-1)*Size from overflowing into a negative offset.
	if page.Number > math.MaxInt32/page.Size {
		return nil, fmt.Errorf("%w: page %d out of range", domain.ErrInvalidInput, page.Number)
	}

	items, total, err := u.repo.ListCampaigns(ctx, port.CampaignListReq{
		UserID: userID,
		Status: status,
		Offset: (page.Number - 1) * page.Size,
		Limit:  page.Size,
	})
	if err != nil {
		return nil, err
	}
	return &port.CampaignList{
		Items: items,
		Pagination: port.Pagination{
			Page:       page.Number,
			PageSize:   page.Size,
			TotalCount: total,
			TotalPages: (total + page.Size - 1) / page.Size,
		},
	}, nil
}

// SetStatus activates, pauses or resets a campaign to draft.
func (u *CampaignUseCase) SetStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return u.repo.UpdateCampaignStatus(ctx, userID, id, status)
}

// DeleteCampaign removes a campaign together with its history.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, userID, id int64) error {
	return u.repo.DeleteCampaign(ctx, userID, id)
}

func buildCampaign(userID int64, in port.CampaignInput) (domain.Campaign, error) {
	c := domain.Campaign{
		UserID:        userID,
		Name:          strings.TrimSpace(in.Name),
		Type:          strings.TrimSpace(in.Type),
		Platform:      strings.TrimSpace(in.Platform),
		Goal:          strings.TrimSpace(in.Goal),
		Targeting:     in.Targeting,
		AdHeadline1:   strings.TrimSpace(in.AdHeadline1),
		AdHeadline2:   strings.TrimSpace(in.AdHeadline2),
		AdDescription: strings.TrimSpace(in.AdDescription),
		FinalURL:      strings.TrimSpace(in.FinalURL),
		Status:        domain.CampaignStatus(in.Status),
	}
	if c.Name == "" {
		return c, fmt.Errorf("%w: name is required", domain.ErrInvalidCampaign)
	}
	if c.Type == "" {
		c.Type = defaultCampaignType
	}
	if c.Platform == "" {
		c.Platform = defaultPlatform
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	if !c.Status.Valid() {
		return c, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidCampaign, in.Status)
	}

	budget, err := simulation.ParseDailyBudget(in.DailyBudget)
	if err != nil {
		return c, err
	}
	if budget.Round(2).GreaterThan(maxDailyBudget) {
		return c, fmt.Errorf("%w: %s exceeds %s", domain.ErrInvalidBudget, in.DailyBudget, maxDailyBudget.StringFixed(2))
	}
	c.DailyBudget = budget.StringFixed(2)

	c.Keywords = make([]domain.Keyword, 0, len(in.Keywords))
	for i, kw := range in.Keywords {
		kw.Text = strings.TrimSpace(kw.Text)
		if kw.Text == "" {
			return c, fmt.Errorf("%w: keyword %d is blank", domain.ErrInvalidCampaign, i)
		}
		if kw.MatchType == "" {
			kw.MatchType = domain.MatchBroad
		}
		if !kw.MatchType.Valid() {
			return c, fmt.Errorf("%w: keyword %q has unknown match type %q", domain.ErrInvalidCampaign, kw.Text, kw.MatchType)
		}
		c.Keywords = append(c.Keywords, kw)
	}

	if n := utf8.RuneCountInString(c.AdHeadline1); n > domain.MaxHeadlineLength {
		return c, fmt.Errorf("%w: headline 1 has %d characters, max %d", domain.ErrInvalidCampaign, n, domain.MaxHeadlineLength)
	}
	if n := utf8.RuneCountInString(c.AdHeadline2); n > domain.MaxHeadlineLength {
		return c, fmt.Errorf("%w: headline 2 has %d characters, max %d", domain.ErrInvalidCampaign, n, domain.MaxHeadlineLength)
	}
	if n := utf8.RuneCountInString(c.AdDescription); n > domain.MaxDescriptionLength {
		return c, fmt.Errorf("%w: description has %d characters, max %d", domain.ErrInvalidCampaign, n, domain.MaxDescriptionLength)
	}

	if c.FinalURL != "" {
		u, err := url.ParseRequestURI(c.FinalURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return c, fmt.Errorf("%w: final URL %q is not an http(s) URL", domain.ErrInvalidCampaign, c.FinalURL)
		}
	}
	return c, nil
}
