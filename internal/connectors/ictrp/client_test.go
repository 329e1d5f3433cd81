package ictrp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

func newTestServer(handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	server.Config.SetKeepAlivesEnabled(false)
	return server
}

func TestClient_Search_QueryKeys(t *testing.T) {
	var got map[string][]string
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		assert.Equal(t, domain.DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(twoTrials))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	params := domain.RegistryParams{
		Query:             "London",
		Condition:         "Leukemia",
		Country:           "United Kingdom",
		Sponsor:           "NHS",
		Phase:             "Phase 3",
		RecruitmentStatus: "Recruiting",
		DateFrom:          "2020-01-01",
		DateTo:            "2021-01-01",
		Max:               50,
	}

	result, err := client.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Len())
	assert.Equal(t, map[string][]string{
		"search":      {"London"},
		"condition":   {"Leukemia"},
		"country":     {"United Kingdom"},
		"sponsor":     {"NHS"},
		"phase":       {"Phase 3"},
		"recruitment": {"Recruiting"},
		"dateFrom":    {"2020-01-01"},
		"dateTo":      {"2021-01-01"},
		"max":         {"50"},
	}, got)
}

func TestClient_Search_OmitsEmptyParams(t *testing.T) {
	var rawQuery string
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`<trials/>`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Search(context.Background(), domain.IDParams("NCT04275414"))
	require.NoError(t, err)

	assert.Equal(t, "trialid=NCT04275414", rawQuery)
}

func TestClient_Search_NotFound(t *testing.T) {
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Search(context.Background(), domain.RegistryParams{Condition: "x"})

	assert.True(t, domain.IsRegistryNotFound(err))
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Search_BadXML(t *testing.T) {
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<trials><trial>"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Search(context.Background(), domain.RegistryParams{})

	var parseErr *domain.RegistryParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "ictrp", NewClient(Config{}).Name())
}
