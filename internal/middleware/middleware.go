package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares inside-out: the first one listed sits closest to
// the handler.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
