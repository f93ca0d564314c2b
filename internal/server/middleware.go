package server

import (
	"fmt"
	"io"
	"net/http"
)

// Middleware wraps an http.Handler to produce a new http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to handler such that the first
// middleware becomes the outermost stage.
func Chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		middleware := middlewares[i]
		if middleware == nil {
			continue
		}
		handler = middleware(handler)
	}

	return handler
}

// CORS attaches permissive cross-origin headers to every response,
// regardless of method or path. It never short-circuits: preflight
// requests fall through to the route table like any other request.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog writes one "<METHOD> <URL>" line to out before each
// request is handled. A failing sink must never fail the request,
// so write errors are dropped.
func AccessLog(out io.Writer) Middleware {
	if out == nil {
		out = io.Discard
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(out, "%s %s\n", r.Method, r.URL)

			next.ServeHTTP(w, r)
		})
	}
}
