package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/middleware"
	"github.com/ashwkun/dred-backend/internal/response"
	"github.com/ashwkun/dred-backend/internal/services"
)

type InsightsService interface {
	Summary(ctx context.Context, uid string) (dto.SummaryResult, error)
	Recurring(ctx context.Context, uid string) (dto.RecurringResult, error)
	SpendingPersona(ctx context.Context, uid string, budgetAdherence float64) (dto.Persona, error)
}

type insightsHandlers struct {
	ResponseHandler response.ResponseHandler
	InsightsSvc     InsightsService
}

func NewInsightsHandlers(deps *Deps) *insightsHandlers {
	return &insightsHandlers{
		ResponseHandler: deps.ResponseHandler,
		InsightsSvc:     deps.InsightsSvc,
	}
}

func (h *insightsHandlers) InsightsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.GetSummary)
	r.Get("/recurring", h.GetRecurring)
	r.Get("/persona", h.GetSpendingPersona)
	r.Get("/investor-persona", h.GetInvestorPersona)
	return r
}

func (h *insightsHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.InsightsSvc.Summary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *insightsHandlers) GetRecurring(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.InsightsSvc.Recurring(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *insightsHandlers) GetSpendingPersona(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	adherence := queryFloat(r, "budgetAdherence")
	persona, err := h.InsightsSvc.SpendingPersona(r.Context(), uid, adherence)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, persona)
}

// GetInvestorPersona classifies portfolio signals the investment tracker
// computes upstream and passes through as query parameters.
func (h *insightsHandlers) GetInvestorPersona(w http.ResponseWriter, r *http.Request) {
	signals := dto.InvestorSignals{
		TotalInvested:   queryFloat(r, "totalInvested"),
		InstrumentCount: queryInt(r, "instruments"),
		Consistency:     r.URL.Query().Get("consistency"),
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, services.ClassifyInvestorPersona(signals))
}

// Malformed numeric query parameters read as zero, matching the engine's
// treatment of malformed stored values.
func queryFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
