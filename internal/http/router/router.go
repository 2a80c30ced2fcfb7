// Package router mounts the HTTP API on a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	healthctrl "github.com/dropDatabas3/postwall/internal/http/controllers/health"
	postsctrl "github.com/dropDatabas3/postwall/internal/http/controllers/posts"
	usersctrl "github.com/dropDatabas3/postwall/internal/http/controllers/users"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	mw "github.com/dropDatabas3/postwall/internal/http/middlewares"
	"github.com/dropDatabas3/postwall/internal/metrics"
)

type Deps struct {
	Users  *usersctrl.Controllers
	Posts  *postsctrl.Controllers
	Health *healthctrl.HealthController

	// Tokens authenticates /user/profile and /user/update_password.
	Tokens      mw.TokenParser
	Metrics     *metrics.Metrics // nil disables /metrics
	CORSOrigins []string
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithMetrics(d.Metrics),
		mw.WithRecover(),
		mw.WithSecurityHeaders(),
		mw.WithCORS(d.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, r, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, r, httperrors.ErrMethodNotAllowed)
	})

	registerHealthRoutes(r, d)
	registerUserRoutes(r, d)
	registerPostRoutes(r, d)
	return r
}

func registerHealthRoutes(r chi.Router, d Deps) {
	if d.Health != nil {
		r.Get("/healthz", d.Health.Healthz)
		r.Get("/readyz", d.Health.Readyz)
	}
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}
}

func registerUserRoutes(r chi.Router, d Deps) {
	account, users := d.Users.Account, d.Users.Users

	r.Get("/users", users.List)
	r.Delete("/users", users.DeleteAll)

	r.Route("/user", func(r chi.Router) {
		r.Post("/", users.Create)
		r.Post("/sign_up", account.SignUp)
		r.Post("/log_in", account.LogIn)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth(d.Tokens))
			r.Post("/update_password", account.UpdatePassword)
			r.Get("/profile", users.Profile)
			r.Patch("/profile", users.UpdateProfile)
		})

		r.Get("/{id}", users.Get)
		r.Patch("/{id}", users.Update)
		r.Delete("/{id}", users.Delete)
	})
}

func registerPostRoutes(r chi.Router, d Deps) {
	p := d.Posts.Posts

	r.Get("/posts", p.List)
	r.Delete("/posts", p.DeleteAll)
	r.Post("/post", p.Create)
	r.Patch("/post/{id}", p.Update)
	r.Delete("/post/{id}", p.Delete)
}
