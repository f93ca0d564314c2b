package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/webskel/webskel/internal/server"
)

func TestHomeHandler_ServeHTTP(t *testing.T) {
	handler := &HomeHandler{log: zap.NewNop()}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	res := w.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "welcome to homepage", string(body))
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
}

// newPipeline builds the full request pipeline the way the serve
// command does, with the homepage route as the only route.
func newPipeline(t *testing.T, accessLog io.Writer) http.Handler {
	t.Helper()

	route := NewHomeRoute(&HomeHandler{log: zap.NewNop()})

	srv := server.NewHttpServer(server.HttpServerParams{
		Context:   context.Background(),
		Config:    server.HttpConfig{Port: 3000},
		Routes:    []*server.Route{route.Route},
		AccessLog: accessLog,
		Logger:    zap.NewNop(),
	})

	return srv.Handler()
}

func TestPipeline_Homepage(t *testing.T) {
	var buf bytes.Buffer
	pipeline := newPipeline(t, &buf)

	w := httptest.NewRecorder()
	pipeline.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	res := w.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "welcome to homepage", string(body))
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET /\n", buf.String())
}

func TestPipeline_PostHomepageIsNotGreeted(t *testing.T) {
	pipeline := newPipeline(t, io.Discard)

	w := httptest.NewRecorder()
	pipeline.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Result().StatusCode)
	assert.NotContains(t, w.Body.String(), "welcome to homepage")
}

func TestPipeline_SubPathsAreNotHomepage(t *testing.T) {
	pipeline := newPipeline(t, io.Discard)

	for _, path := range []string{"/missing", "/home", "/index.html"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			pipeline.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
