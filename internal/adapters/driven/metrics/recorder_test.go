package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordAttempt("ictrp", "primary", "not_found", 120*time.Millisecond)
	r.RecordAttempt("ictrp", "primary", "not_found", 80*time.Millisecond)
	r.RecordAttempt("ctgov", "secondary_final", "ok", 300*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.attempts.WithLabelValues("ictrp", "primary", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.attempts.WithLabelValues("ctgov", "secondary_final", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.RecordAttempt("ctgov", "secondary_city", "failed", time.Second)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body),
		`clinical_trials_registry_attempts_total{outcome="failed",registry="ctgov",state="secondary_city"} 1`))
	assert.Contains(t, string(body), "clinical_trials_registry_attempt_duration_seconds_bucket")
}

func TestNopRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		NopRecorder{}.RecordAttempt("ictrp", "primary", "ok", time.Millisecond)
	})
}
