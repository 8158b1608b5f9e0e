package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"marketsim/internal/core/domain"
)

type personaBody struct {
	Name       string   `json:"name"`
	AgeRange   string   `json:"ageRange"`
	Occupation string   `json:"occupation"`
	Goals      []string `json:"goals"`
	PainPoints []string `json:"painPoints"`
	Channels   []string `json:"channels"`
}

type personaResponse struct {
	ID int64 `json:"id"`
	personaBody
	CreatedAt time.Time `json:"createdAt"`
}

type progressResponse struct {
	TutorialID string    `json:"tutorialId"`
	StepIndex  int       `json:"stepIndex"`
	Completed  bool      `json:"completed"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type quizAttemptResponse struct {
	ID        int64     `json:"id"`
	QuizID    string    `json:"quizId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Percent   float64   `json:"percent"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPersonaResponse(p domain.Persona) personaResponse {
	return personaResponse{
		ID: p.ID,
		personaBody: personaBody{
			Name:       p.Name,
			AgeRange:   p.AgeRange,
			Occupation: p.Occupation,
			Goals:      nonNil(p.Goals),
			PainPoints: nonNil(p.PainPoints),
			Channels:   nonNil(p.Channels),
		},
		CreatedAt: p.CreatedAt,
	}
}

func toQuizAttemptResponse(a domain.QuizAttempt) quizAttemptResponse {
	return quizAttemptResponse{
		ID:        a.ID,
		QuizID:    a.QuizID,
		Score:     a.Score,
		Total:     a.Total,
		Percent:   a.Percent(),
		CreatedAt: a.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (h *Handler) handleCreatePersona(w http.ResponseWriter, r *http.Request) {
	var body personaBody
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := h.learning.CreatePersona(r.Context(), userID(r), domain.Persona{
		Name:       body.Name,
		AgeRange:   body.AgeRange,
		Occupation: body.Occupation,
		Goals:      body.Goals,
		PainPoints: body.PainPoints,
		Channels:   body.Channels,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toPersonaResponse(*p))
}

func (h *Handler) handleListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := h.learning.ListPersonas(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]personaResponse, 0, len(personas))
	for _, p := range personas {
		resp = append(resp, toPersonaResponse(p))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.learning.ListProgress(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]progressResponse, 0, len(progress))
	for _, p := range progress {
		resp = append(resp, progressResponse{TutorialID: p.TutorialID, StepIndex: p.StepIndex, Completed: p.Completed, UpdatedAt: p.UpdatedAt})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StepIndex int  `json:"stepIndex"`
		Completed bool `json:"completed"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := h.learning.SaveProgress(r.Context(), userID(r), domain.TutorialProgress{
		TutorialID: chi.URLParam(r, "tutorialId"),
		StepIndex:  body.StepIndex,
		Completed:  body.Completed,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progressResponse{TutorialID: p.TutorialID, StepIndex: p.StepIndex, Completed: p.Completed, UpdatedAt: p.UpdatedAt})
}

func (h *Handler) handleRecordQuizAttempt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Score int `json:"score"`
		Total int `json:"total"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	a, err := h.learning.RecordQuizAttempt(r.Context(), userID(r), domain.QuizAttempt{
		QuizID: chi.URLParam(r, "quizId"),
		Score:  body.Score,
		Total:  body.Total,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toQuizAttemptResponse(*a))
}

func (h *Handler) handleListQuizAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.learning.ListQuizAttempts(r.Context(), userID(r), chi.URLParam(r, "quizId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]quizAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, toQuizAttemptResponse(a))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
