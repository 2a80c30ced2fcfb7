// Package server assembles the HTTP handler from already opened
// infrastructure: store connection, cache, token issuer, hasher and mailer.
package server

import (
	"net/http"
	"time"

	"github.com/dropDatabas3/postwall/internal/cache"
	"github.com/dropDatabas3/postwall/internal/email"
	healthctrl "github.com/dropDatabas3/postwall/internal/http/controllers/health"
	postsctrl "github.com/dropDatabas3/postwall/internal/http/controllers/posts"
	usersctrl "github.com/dropDatabas3/postwall/internal/http/controllers/users"
	"github.com/dropDatabas3/postwall/internal/http/router"
	healthsvc "github.com/dropDatabas3/postwall/internal/http/services/health"
	postssvc "github.com/dropDatabas3/postwall/internal/http/services/posts"
	userssvc "github.com/dropDatabas3/postwall/internal/http/services/users"
	"github.com/dropDatabas3/postwall/internal/jwt"
	"github.com/dropDatabas3/postwall/internal/metrics"
	"github.com/dropDatabas3/postwall/internal/store"
)

type Deps struct {
	Store   store.AdapterConnection
	Cache   cache.Client // nil disables listing cache
	Issuer  *jwt.Issuer
	Hasher  userssvc.PasswordHasher
	Mailer  email.Sender     // nil disables welcome mail
	Metrics *metrics.Metrics // nil disables /metrics and counters

	CacheTTL    time.Duration
	CORSOrigins []string
	Version     string
}

// Build returns the root handler.
func Build(d Deps) http.Handler {
	postList := cache.NewPostList(d.Cache, d.CacheTTL)

	var listings userssvc.ListingInvalidator
	if postList != nil {
		listings = postList
	}

	users := userssvc.NewServices(userssvc.Deps{
		Users:   d.Store.Users(),
		Hasher:  d.Hasher,
		Signer:  d.Issuer,
		Mailer:  d.Mailer,
		Metrics: d.Metrics,
		Posts:   listings,
	})
	posts := postssvc.NewServices(postssvc.Deps{
		Posts:   d.Store.Posts(),
		Users:   d.Store.Users(),
		Cache:   postList,
		Metrics: d.Metrics,
	})

	hd := healthsvc.Deps{
		Version:    d.Version,
		StoreName:  d.Store.Name(),
		StoreCheck: d.Store.Ping,
	}
	if d.Cache != nil {
		hd.CacheCheck = d.Cache.Ping
	}

	return router.New(router.Deps{
		Users:       usersctrl.NewControllers(users),
		Posts:       postsctrl.NewControllers(posts),
		Health:      healthctrl.NewHealthController(healthsvc.NewHealthService(hd)),
		Tokens:      d.Issuer,
		Metrics:     d.Metrics,
		CORSOrigins: d.CORSOrigins,
	})
}
