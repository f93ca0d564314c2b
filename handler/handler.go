package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const homeBody = "welcome to homepage"

type HomeHandlerParams struct {
	fx.In

	Log *zap.Logger
}

func NewHomeHandler(params HomeHandlerParams) *HomeHandler {
	return &HomeHandler{log: params.Log}
}

// HomeHandler serves the static greeting. It is stateless and
// shares nothing between requests.
type HomeHandler struct {
	log *zap.Logger
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := io.WriteString(w, homeBody); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}
}
