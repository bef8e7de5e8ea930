package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows browser clients from any origin. Credentials travel in the
// Authorization header, never in cookies, so no credentials mode is enabled.
// Preflight requests are answered directly with 204.
var withCORS = cors.Handler(cors.Options{
	AllowedOrigins:       []string{"*"},
	AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	AllowedHeaders:       []string{"Authorization", "Content-Type", traceIDHeader},
	ExposedHeaders:       []string{traceIDHeader},
	MaxAge:               300,
	OptionsSuccessStatus: http.StatusNoContent,
})
