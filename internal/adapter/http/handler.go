package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"marketsim/internal/core/port"
	"marketsim/internal/metrics"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Campaigns  port.CampaignUseCase
	Simulation port.SimulationUseCase
	Accounts   port.AccountUseCase
	Learning   port.LearningUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Every /api/v1 route except the billing webhook runs as the stub
// user authUserID.
type Handler struct {
	campaigns  port.CampaignUseCase
	simulation port.SimulationUseCase
	accounts   port.AccountUseCase
	learning   port.LearningUseCase

	authUserID int64
	metrics    *metrics.Metrics
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. m may be nil.
func NewHandler(svc Services, authUserID int64, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns:  svc.Campaigns,
		simulation: svc.Simulation,
		accounts:   svc.Accounts,
		learning:   svc.Learning,
		authUserID: authUserID,
		metrics:    m,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.observe, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/billing/webhook", h.handleBillingWebhook)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Get("/me", h.handleMe)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.handleCreateCampaign)
				r.Get("/", h.handleListCampaigns)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetCampaign)
					r.Delete("/", h.handleDeleteCampaign)
					r.Patch("/status", h.handleSetCampaignStatus)

					r.Post("/simulation", h.handleSimulate)
					r.Get("/simulation", h.handleSimulationHistory)
					r.Get("/simulation/latest", h.handleSimulationLatest)
					r.With(h.requirePremium).Get("/simulation/summary", h.handleSimulationSummary)
				})
			})

			r.Post("/personas", h.handleCreatePersona)
			r.Get("/personas", h.handleListPersonas)
			r.Get("/progress", h.handleListProgress)
			r.Put("/progress/{tutorialId}", h.handleSaveProgress)
			r.Post("/quizzes/{quizId}/attempts", h.handleRecordQuizAttempt)
			r.Get("/quizzes/{quizId}/attempts", h.handleListQuizAttempts)

			r.Get("/subscription", h.handleMe)
			r.Post("/subscription/checkout", h.handleCheckout)
			r.Post("/subscription/cancel", h.handleCancelSubscription)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
