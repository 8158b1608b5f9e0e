package httpadapter

import (
	"net/http"
	"time"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

type campaignResponse struct {
	ID            int64            `json:"id"`
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
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type campaignListResponse struct {
	Items      []campaignResponse `json:"items"`
	Pagination port.Pagination    `json:"pagination"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	kws := c.Keywords
	if kws == nil {
		kws = []domain.Keyword{}
	}
	return campaignResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          c.Type,
		Platform:      c.Platform,
		Goal:          c.Goal,
		DailyBudget:   c.DailyBudget,
		Keywords:      kws,
		Targeting:     c.Targeting,
		AdHeadline1:   c.AdHeadline1,
		AdHeadline2:   c.AdHeadline2,
		AdDescription: c.AdDescription,
		FinalURL:      c.FinalURL,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), userID(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleListCampaigns accepts optional page, pageSize and status query
// parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	size, ok := queryInt(w, r, "pageSize")
	if !ok {
		return
	}
	status := domain.CampaignStatus(r.URL.Query().Get("status"))

	list, err := h.campaigns.ListCampaigns(r.Context(), userID(r), port.Page{Number: page, Size: size}, status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := campaignListResponse{
		Items:      make([]campaignResponse, 0, len(list.Items)),
		Pagination: list.Pagination,
	}
	for _, c := range list.Items {
		resp.Items = append(resp.Items, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Status domain.CampaignStatus `json:"status"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.campaigns.SetStatus(r.Context(), userID(r), id, body.Status); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), userID(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
