package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"marketsim/internal/core/domain"
)

type summaryResponse struct {
	CampaignID     int64                    `json:"campaignId"`
	Samples        int                      `json:"samples"`
	Impressions    int64                    `json:"impressions"`
	Clicks         int64                    `json:"clicks"`
	Conversions    int64                    `json:"conversions"`
	Cost           json.Number              `json:"cost"`
	CTR            float64                  `json:"ctr"`
	ConversionRate float64                  `json:"conversionRate"`
	AvgCPC         json.Number              `json:"avgCpc"`
	CPA            json.Number              `json:"cpa"`
	MeanClicks     float64                  `json:"meanClicks"`
	StdDevClicks   float64                  `json:"stdDevClicks"`
	MedianCost     float64                  `json:"medianCost"`
	Factors        domain.SimulationFactors `json:"factors"`
	From           *time.Time               `json:"from,omitempty"`
	To             *time.Time               `json:"to,omitempty"`
}

func toSummaryResponse(s domain.SimulationSummary) summaryResponse {
	resp := summaryResponse{
		CampaignID:     s.CampaignID,
		Samples:        s.Samples,
		Impressions:    s.Impressions,
		Clicks:         s.Clicks,
		Conversions:    s.Conversions,
		Cost:           json.Number(s.Cost.StringFixed(2)),
		CTR:            s.CTR,
		ConversionRate: s.ConversionRate,
		AvgCPC:         json.Number(s.AvgCPC.StringFixed(2)),
		CPA:            json.Number(s.CPA.StringFixed(2)),
		MeanClicks:     s.MeanClicks,
		StdDevClicks:   s.StdDevClicks,
		MedianCost:     s.MedianCost,
		Factors:        s.Factors,
	}
	if s.Samples > 0 {
		resp.From, resp.To = &s.From, &s.To
	}
	return resp
}

// handleSimulate runs one simulation tick for the campaign on demand.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.simulation.Simulate(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.IncDataPoints()
	h.writeJSON(w, http.StatusCreated, p)
}

// handleSimulationHistory returns the newest samples in ascending order. The
// optional limit query parameter bounds their number.
func (h *Handler) handleSimulationHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	points, err := h.simulation.History(r.Context(), userID(r), id, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if points == nil {
		points = []domain.SimulationDataPoint{}
	}
	h.writeJSON(w, http.StatusOK, points)
}

// handleSimulationLatest answers 204 when the campaign was never simulated.
func (h *Handler) handleSimulationLatest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.simulation.Latest(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if p == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleSimulationSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, err := h.simulation.Summary(r.Context(), userID(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSummaryResponse(*s))
}
