package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordCheck(t *testing.T) {
	m := New()

	m.RecordCheck("Visa", true)
	m.RecordCheck("Visa", true)
	m.RecordCheck("Visa", false)
	m.RecordCheck("unknown", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChecksTotal.WithLabelValues("Visa", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChecksTotal.WithLabelValues("Visa", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChecksTotal.WithLabelValues("unknown", "true")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.ChecksTotal))
}

func TestMetrics_RecordBatch(t *testing.T) {
	m := New()

	m.RecordBatch(3)
	m.RecordBatch(40)

	assert.Equal(t, 1, testutil.CollectAndCount(m.BatchSize))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordCheck("JCB", true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cardbrand_checks_total{brand="JCB",valid="true"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNew_Twice(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestNop(t *testing.T) {
	var n Nop
	assert.NotPanics(t, func() {
		n.RecordCheck("Visa", true)
		n.RecordBatch(10)
	})
}
