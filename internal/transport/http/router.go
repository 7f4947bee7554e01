package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-contacts-api/internal/application/account"
	"github.com/go-contacts-api/internal/application/contact"
	"github.com/go-contacts-api/internal/config"
	"github.com/go-contacts-api/internal/transport/http/handler"
	appmiddleware "github.com/go-contacts-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	accountSvc := account.NewService(account.ServiceDeps{
		UserRepo:    deps.UserRepo,
		Mailer:      deps.Mailer,
		JWTProvider: deps.JWTProvider,
	})
	contactSvc := contact.NewService(deps.ContactRepo, deps.UserRepo)

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(accountSvc)
	contactH := handler.NewContactHandler(contactSvc)

	// Anything that doesn't match a route answers 400, not 404.
	urlNotFound := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"URL not found"}`))
	}
	r.NotFound(urlNotFound)
	r.MethodNotAllowed(urlNotFound)

	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/health-check/{action}", healthH.Ping)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", userH.Register)
		r.Post("/login", userH.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/submitOTP", userH.SubmitOTP)
			r.Post("/sendOTP", userH.SendOTP)
			r.Post("/current", userH.Current)
		})
	})

	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(authMw)

		r.Get("/", contactH.Get)
		r.Post("/", contactH.Create)
		r.Put("/", contactH.Update)
		r.Delete("/", contactH.Delete)
	})

	return r
}
