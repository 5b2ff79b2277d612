package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/calculators/{slug}", http.StatusOK, 20*time.Millisecond)
	m.ObserveCalculation("mortgage", "computed")
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `http_requests_total{route="/api/calculators/{slug}",status="200"} 1`)
	assert.Contains(t, text, `calculations_total{calculator="mortgage",outcome="computed"} 1`)
	assert.Contains(t, text, "cache_hits_total 1")
	assert.Contains(t, text, "cache_misses_total 2")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
