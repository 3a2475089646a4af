package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/ashwkun/dred-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	InsightsSvc     InsightsService
	CardSvc         CardService
	ProjectionSvc   ProjectionService
}
