package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/hotel-registration-api/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, registrationHandler *RegistrationHandler) huma.API {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Hotel Registration API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.TokenCookie,
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	huma.Get(api, "/rooms", registrationHandler.HandleRooms)
	huma.Post(api, "/quote", registrationHandler.HandleQuote)
	huma.Get(api, "/registrations", registrationHandler.HandleList)
	huma.Get(api, "/registrations/{id}", registrationHandler.HandleGet)

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleLogin)
	r.Get("/auth/discord/callback", authHandler.HandleCallback)

	// Staff routes
	staffOnly := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}
	huma.Get(api, "/me", authHandler.HandleMe, staffOnly)
	huma.Post(api, "/registrations", registrationHandler.HandleCreate, staffOnly)
	huma.Put(api, "/registrations/{id}", registrationHandler.HandleUpdate, staffOnly)
	huma.Delete(api, "/registrations/{id}", registrationHandler.HandleDelete, staffOnly)
	huma.Get(api, "/registrations/{id}/history", registrationHandler.HandleHistory, staffOnly)

	r.With(authHandler.AuthMiddleware).Get("/registrations/{id}/invoice.pdf", registrationHandler.HandleInvoice)

	return api
}
