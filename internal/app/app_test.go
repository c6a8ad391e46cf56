package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc/cardbrand/internal/config"
	"github.com/avc/cardbrand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, metricsEnabled bool) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		RunAddress:     ":0",
		LogLevel:       "info",
		MaxBatchSize:   3,
		MaxBodyBytes:   1024,
		MetricsEnabled: metricsEnabled,
	}
	a := newApp(cfg, zap.NewNop())

	srv := httptest.NewServer(a.router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_CheckFlow(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Post(srv.URL+"/api/cards/check", "text/plain", strings.NewReader("6062 8299 6943 9003\n"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var result domain.CardCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "HiperCard", result.Brand)
	assert.True(t, result.Valid)
	assert.Equal(t, "Card: 6062 8299 6943 9003 => Brand: HiperCard | Valid: true", result.Line)
}

func TestRouter_CheckByPath(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/cards/1234567890123456")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.CardCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "unknown", result.Brand)
	assert.False(t, result.Valid)
}

func TestRouter_Batch(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("Within limit", func(t *testing.T) {
		body := `{"numbers":["3004 219620 0535","3000 0000 0000 05"]}`
		resp, err := http.Post(srv.URL+"/api/cards/check/batch", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []domain.CardCheck
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result, 2)
		assert.Equal(t, "Diners Club", result[0].Brand)
		assert.True(t, result[0].Valid)
		assert.Equal(t, "Diners Club", result[1].Brand)
		assert.False(t, result[1].Valid)
	})

	t.Run("Over limit", func(t *testing.T) {
		body := `{"numbers":["1","2","3","4"]}`
		resp, err := http.Post(srv.URL+"/api/cards/check/batch", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}

func TestRouter_Brands(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/brands")
	require.NoError(t, err)
	defer resp.Body.Close()

	var rules []domain.BrandRule
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rules))
	require.Len(t, rules, 10)
	assert.Equal(t, "Mastercard", rules[0].Brand)
	assert.Equal(t, "Aura", rules[9].Brand)
}

func TestRouter_Metrics(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		srv := newTestServer(t, true)

		checkResp, err := http.Post(srv.URL+"/api/cards/check", "text/plain", strings.NewReader("4556013050312704"))
		require.NoError(t, err)
		checkResp.Body.Close()

		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `cardbrand_checks_total{brand="Visa",valid="true"} 1`)
	})

	t.Run("Disabled", func(t *testing.T) {
		srv := newTestServer(t, false)

		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, false)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "production"},
		{level: "info"},
		{level: "debug"},
		{level: ""},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := initLogger(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
