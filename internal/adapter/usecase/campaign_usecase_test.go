package usecase

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
	"marketsim/internal/core/port/mocks"
)

func validInput() port.CampaignInput {
	return port.CampaignInput{
		Name:          "  Spring sale ",
		DailyBudget:   "49.5",
		Keywords:      []domain.Keyword{{Text: " running shoes "}, {Text: "trail", MatchType: domain.MatchPhrase}},
		AdHeadline1:   "Fast shoes",
		AdHeadline2:   "Free shipping",
		AdDescription: "Shop the spring collection today.",
		FinalURL:      "https://example.com/spring",
	}
}

func TestCreateCampaign_Normalises(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { c.ID = 3 }).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	c, err := svc.CreateCampaign(context.Background(), 1, validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(3), c.ID)
	assert.Equal(t, int64(1), c.UserID)
	assert.Equal(t, "Spring sale", c.Name)
	assert.Equal(t, "49.50", c.DailyBudget)
	assert.Equal(t, "search", c.Type)
	assert.Equal(t, "google_ads", c.Platform)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	require.Len(t, c.Keywords, 2)
	assert.Equal(t, domain.Keyword{Text: "running shoes", MatchType: domain.MatchBroad}, c.Keywords[0])
	assert.Equal(t, domain.MatchPhrase, c.Keywords[1].MatchType)
}

func TestCreateCampaign_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*port.CampaignInput)
		want   error
	}{
		{"blank name", func(in *port.CampaignInput) { in.Name = " " }, domain.ErrInvalidCampaign},
		{"bad budget", func(in *port.CampaignInput) { in.DailyBudget = "lots" }, domain.ErrInvalidBudget},
		{"negative budget", func(in *port.CampaignInput) { in.DailyBudget = "-5" }, domain.ErrInvalidBudget},
		{"budget too large", func(in *port.CampaignInput) { in.DailyBudget = "100000000000" }, domain.ErrInvalidBudget},
		{"budget exponent", func(in *port.CampaignInput) { in.DailyBudget = "1e20" }, domain.ErrInvalidBudget},
		{"budget rounds over max", func(in *port.CampaignInput) { in.DailyBudget = "9999999999.995" }, domain.ErrInvalidBudget},
		{"blank keyword", func(in *port.CampaignInput) { in.Keywords = append(in.Keywords, domain.Keyword{Text: "  "}) }, domain.ErrInvalidCampaign},
		{"bad match type", func(in *port.CampaignInput) { in.Keywords[0].MatchType = "fuzzy" }, domain.ErrInvalidCampaign},
		{"long headline", func(in *port.CampaignInput) { in.AdHeadline1 = strings.Repeat("x", 31) }, domain.ErrInvalidCampaign},
		{"long description", func(in *port.CampaignInput) { in.AdDescription = strings.Repeat("x", 91) }, domain.ErrInvalidCampaign},
		{"bad status", func(in *port.CampaignInput) { in.Status = "archived" }, domain.ErrInvalidCampaign},
		{"bad url", func(in *port.CampaignInput) { in.FinalURL = "ftp://example.com" }, domain.ErrInvalidCampaign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			in := validInput()
			tc.modify(&in)

			_, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), 1, in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateCampaign_MultibyteCopyWithinLimit(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil)

	in := validInput()
	in.AdHeadline1 = strings.Repeat("é", 30)
	_, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), 1, in)
	assert.NoError(t, err)
}

func TestCreateCampaign_MaxBudget(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil)

	in := validInput()
	in.DailyBudget = "9999999999.99"
	c, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", c.DailyBudget)
}

func TestGetCampaign_NotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1), int64(5)).Return(nil, nil)

	_, err := NewCampaignUseCase(repo).GetCampaign(context.Background(), 1, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaigns_Pagination(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignListReq{UserID: 1, Status: domain.CampaignActive, Offset: 20, Limit: 10}).
		Return([]domain.Campaign{{ID: 21}}, 21, nil)

	list, err := NewCampaignUseCase(repo).ListCampaigns(context.Background(), 1, port.Page{Number: 3, Size: 10}, domain.CampaignActive)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, port.Pagination{Page: 3, PageSize: 10, TotalCount: 21, TotalPages: 3}, list.Pagination)
}

func TestListCampaigns_Defaults(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignListReq{UserID: 1, Offset: 0, Limit: defaultPageSize}).
		Return(nil, 0, nil).Once()
	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignListReq{UserID: 1, Offset: 0, Limit: maxPageSize}).
		Return(nil, 0, nil).Once()

	svc := NewCampaignUseCase(repo)
	list, err := svc.ListCampaigns(context.Background(), 1, port.Page{}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Pagination.TotalPages)

	_, err = svc.ListCampaigns(context.Background(), 1, port.Page{Number: -1, Size: 500}, "")
	require.NoError(t, err)

	_, err = svc.ListCampaigns(context.Background(), 1, port.Page{}, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCampaigns_PageOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		page port.Page
	}{
		{"overflowing page", port.Page{Number: math.MaxInt / 10, Size: 20}},
		{"max int page", port.Page{Number: math.MaxInt, Size: 1}},
		{"offset past int32", port.Page{Number: math.MaxInt32/maxPageSize + 1, Size: maxPageSize}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)

			_, err := NewCampaignUseCase(repo).ListCampaigns(context.Background(), 1, tc.page, "")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestListCampaigns_LastValidPage(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	number := math.MaxInt32 / maxPageSize
	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignListReq{UserID: 1, Offset: (number - 1) * maxPageSize, Limit: maxPageSize}).
		Return(nil, 3, nil)

	list, err := NewCampaignUseCase(repo).ListCampaigns(context.Background(), 1, port.Page{Number: number, Size: maxPageSize}, "")
	require.NoError(t, err)
	assert.Equal(t, number, list.Pagination.Page)
}

func TestSetStatus(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), int64(2), domain.CampaignPaused).Return(nil)

	svc := NewCampaignUseCase(repo)
	require.NoError(t, svc.SetStatus(context.Background(), 1, 2, domain.CampaignPaused))
	assert.ErrorIs(t, svc.SetStatus(context.Background(), 1, 2, "gone"), domain.ErrInvalidInput)
}
