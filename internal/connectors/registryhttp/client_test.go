package registryhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinical-trials-mcp/internal/connectors/registryhttp"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// newTestServer creates a test server with keep-alives disabled so parallel
// tests do not share connections.
func newTestServer(handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	server.Config.SetKeepAlivesEnabled(false)
	return server
}

func TestClient_Get_SendsHeaders(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "clinical-trials-mcp/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("<trials/>"))
	}))
	defer server.Close()

	client := registryhttp.New(registryhttp.Config{Registry: domain.RegistryICTRP})

	body, err := client.Get(context.Background(), server.URL, "application/xml")

	require.NoError(t, err)
	assert.Equal(t, "<trials/>", string(body))
}

func TestClient_Get_HTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		notFound   bool
	}{
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, false},
		{"bad request", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := registryhttp.New(registryhttp.Config{Registry: domain.RegistryCTGov})

			_, err := client.Get(context.Background(), server.URL, "application/json")

			var httpErr *domain.RegistryHTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.statusCode, httpErr.StatusCode)
			assert.Equal(t, domain.RegistryCTGov, httpErr.Registry)
			assert.Equal(t, server.URL, httpErr.URL)
			assert.Equal(t, tt.notFound, domain.IsRegistryNotFound(err))
		})
	}
}

func TestClient_Get_Timeout(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()
	defer close(done)

	client := registryhttp.New(registryhttp.Config{
		Registry: domain.RegistryICTRP,
		Timeout:  50 * time.Millisecond,
	})

	_, err := client.Get(context.Background(), server.URL, "application/xml")

	require.Error(t, err)
	assert.True(t, domain.IsRegistryTimeout(err))
	assert.Contains(t, err.Error(), "timeout")
}

func TestClient_Get_ConnectionRefused(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := registryhttp.New(registryhttp.Config{Registry: domain.RegistryICTRP})

	_, err := client.Get(context.Background(), url, "application/xml")

	var netErr *domain.RegistryNetworkError
	require.ErrorAs(t, err, &netErr)
	assert.False(t, netErr.Timeout)
	assert.Contains(t, err.Error(), "network")
}
