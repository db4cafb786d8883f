package api

import (
	"net/http"

	"github.com/meridian-legal/counsel/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Analyses.Handler().Routes(),
		domain.Training.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Feedback.Handler().Routes(),
		domain.Parsing.Handler().Routes(),
		newStorageHandler(runtime.Storage, runtime.Logger).routes(),
	)
}
