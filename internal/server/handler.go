package server

import (
	"net/http"

	"go.uber.org/fx"
)

// Route maps a ServeMux pattern to its handler.
type Route struct {
	Pattern string
	Handler http.Handler
}

type RouteResult struct {
	fx.Out

	Route *Route `group:"routes"`
}

func AsRoute(pattern string, handler http.Handler) RouteResult {
	return RouteResult{
		Route: &Route{
			Pattern: pattern,
			Handler: handler,
		},
	}
}
