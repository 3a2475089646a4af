package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ashwkun/dred-backend/internal/bootstrap"
	"github.com/ashwkun/dred-backend/internal/config"
	"github.com/ashwkun/dred-backend/internal/handlers"
	"github.com/ashwkun/dred-backend/internal/response"
	"github.com/ashwkun/dred-backend/internal/router"
	"github.com/ashwkun/dred-backend/internal/services"
	"github.com/ashwkun/dred-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	cstore := store.NewCardStore(bs.Firestore)

	// services
	iserv := services.NewInsightsService(tstore)
	cserv := services.NewCardService(cstore)
	pserv := services.NewProjectionService()

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.InsightsSvc = iserv
	deps.CardSvc = cserv
	deps.ProjectionSvc = pserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
