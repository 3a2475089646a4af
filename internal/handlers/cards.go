package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/middleware"
	"github.com/ashwkun/dred-backend/internal/response"
)

type CardService interface {
	Billing(ctx context.Context, uid, cardID string) (dto.BillingCycleStatus, error)
}

type cardHandlers struct {
	ResponseHandler response.ResponseHandler
	CardSvc         CardService
}

func NewCardHandlers(deps *Deps) *cardHandlers {
	return &cardHandlers{
		ResponseHandler: deps.ResponseHandler,
		CardSvc:         deps.CardSvc,
	}
}

func (h *cardHandlers) CardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{cardId}/billing", h.GetBilling)
	return r
}

func (h *cardHandlers) GetBilling(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	uid := middleware.UID(r.Context())
	status, err := h.CardSvc.Billing(r.Context(), uid, cardID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}
