package server

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware applies the allowed-origin policy for browser clients.
// Credentials are only allowed when the origin list is explicit.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   corsAllowedMethods,
		AllowedHeaders:   corsAllowedHeaders,
		ExposedHeaders:   corsExposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           CORSMaxAgeSeconds,
	}).Handler
}
