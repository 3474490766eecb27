package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/logging"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

// newAPIServer starts a fake store API and returns a client pointed at it.
func newAPIServer(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, staticTokens("test-token"), 5*time.Second, logging.Discard())
}
