package handler

import "github.com/webskel/webskel/internal/server"

// NewHomeRoute binds the homepage handler to an exact match on GET /.
// Everything else falls through to the ServeMux defaults.
func NewHomeRoute(handler *HomeHandler) server.RouteResult {
	return server.AsRoute("GET /{$}", handler)
}
