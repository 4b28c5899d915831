package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// promhttp compresses on its own
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	router.Method(http.MethodGet, "/static/*", http.StripPrefix("/static/", web.Static()))

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withLocale)

		// routes without authorization
		r.Get("/", h.landing)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Post("/api/auth/login", h.apiLogin)
		r.Get("/api/version", h.getServerVersion)

		// dashboard pages
		r.Group(func(r chi.Router) {
			r.Use(h.authPage)
			r.Post("/logout", h.logout)
			r.Get("/admin/clients", h.clientsPage)
			r.Get("/admin/clients/{id}", h.clientPage)
			r.Get("/admin/clients/{id}/delete", h.confirmDeletePage)
			r.Post("/admin/clients/{id}/delete", h.deleteClient)
			r.Get("/admin/clients/{id}/transactions", h.transactionsPage)
			r.Get("/admin/audit", h.auditPage)
		})

		// JSON API
		r.Group(func(r chi.Router) {
			r.Use(h.authAPI)
			r.Get("/api/clients", h.apiListClients)
			r.Get("/api/clients/{id}", h.apiGetClient)
			r.Delete("/api/clients/{id}", h.apiDeleteClient)
			r.Get("/api/clients/{id}/balance", h.apiBalance)
			r.Get("/api/clients/{id}/transactions", h.apiTransactions)
			r.Get("/api/audit", h.apiAudit)
		})

		r.NotFound(h.notFound)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router, http.HandlerFunc(h.notFound)))

	return router
}
