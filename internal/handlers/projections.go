package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/response"
)

type ProjectionService interface {
	Growth(ctx context.Context, req dto.GrowthProjectionRequest) (dto.GrowthProjectionResult, error)
	Sip(ctx context.Context, req dto.SipProjectionRequest) (dto.SipProjectionResult, error)
}

type projectionHandlers struct {
	ResponseHandler response.ResponseHandler
	ProjectionSvc   ProjectionService
}

func NewProjectionHandlers(deps *Deps) *projectionHandlers {
	return &projectionHandlers{
		ResponseHandler: deps.ResponseHandler,
		ProjectionSvc:   deps.ProjectionSvc,
	}
}

func (h *projectionHandlers) ProjectionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/growth", h.PostGrowth)
	r.Post("/sip", h.PostSip)
	return r
}

func (h *projectionHandlers) PostGrowth(w http.ResponseWriter, r *http.Request) {
	var req dto.GrowthProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	result, err := h.ProjectionSvc.Growth(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *projectionHandlers) PostSip(w http.ResponseWriter, r *http.Request) {
	var req dto.SipProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	result, err := h.ProjectionSvc.Sip(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
