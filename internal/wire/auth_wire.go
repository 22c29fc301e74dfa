package wire

import (
	"rk-commerce/internal/adaptor"
	"rk-commerce/pkg/middleware"
	"rk-commerce/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config *utils.Config) {
	// Credential endpoints are public, so they share a per-IP limiter.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(config.RateLimit.Requests, config.RateLimit.Window))
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
}
