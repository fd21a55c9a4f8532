package bench

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMetricsRegistersAndRecords is the only test in this package that
// constructs a Metrics instance: promauto registers every collector
// against the global default registerer, so a second NewMetrics() call
// anywhere else in this package's test binary would panic on a duplicate
// registration.
func TestNewMetricsRegistersAndRecords(t *testing.T) {
	m := NewMetrics()
	require.NotNil(t, m)

	assert.NotPanics(t, func() {
		m.RecordOp("t1", "insert", true, 5*time.Millisecond)
		m.RecordOp("t1", "search", false, time.Microsecond)
		m.RecordRebuild("t1")
		m.UpdateTreeStats("t1", 3, 100, 4.5)
	})

	handler := m.InstrumentHandler("GET", "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
