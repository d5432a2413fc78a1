// Package api is the HTTP surface of the payroll stub server.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/payrollview/internal/logging"
	"github.com/dmitrijs2005/payrollview/internal/server/fixtures"
)

type Options struct {
	Tokens    []string
	SecretKey []byte
	TokenTTL  time.Duration
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(set *fixtures.Set, opts Options, logger logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	payrollH := NewPayrollHandler(set, logger)
	authH := NewAuthHandler(set, opts.SecretKey, opts.TokenTTL, logger)

	defaultUser := ""
	if len(set.Users) > 0 {
		defaultUser = set.Users[0].Username
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login/", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(TokenAuth(opts.Tokens, defaultUser, opts.SecretKey))

			r.Get("/auth/me/", authH.Me)
			r.Route("/uploads", func(r chi.Router) {
				r.Get("/", payrollH.ListUploads)
				r.Get("/{id}/", payrollH.GetUpload)
				r.Get("/{id}/employees/", payrollH.Employees)
			})
		})
	})

	return r
}
