// Package middlewares holds the http.Handler decorators mounted by the
// router: request ids, logging, metrics, recovery, CORS, security headers
// and bearer authentication.
package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws[0] sees the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
