package middleware

import (
	"net/http"

	"wedding-site/internal/config"

	"github.com/rs/cors"
)

// NewCORS builds the CORS handler for the API. Credentials are allowed
// because the CSRF cookie travels with every request.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			CSRFHeaderName,
		},
		AllowCredentials: true,
	})

	return c.Handler
}
