package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/maheshrc27/contentops/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppPublicAndProtectedRoutes(t *testing.T) {
	app := NewApp(&config.Config{
		SecretKey:   "0123456789abcdef0123456789abcdef",
		CookieName:  "session",
		FrontendURL: "http://localhost:5173",
	}, Services{})

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/projects", http.StatusUnauthorized},
		{http.MethodPost, "/api/webhook/schedule-post", http.StatusUnauthorized},
		{http.MethodGet, "/api/users", http.StatusUnauthorized},
		{http.MethodGet, "/api/accounts/a1/token", http.StatusUnauthorized},
		{http.MethodPost, "/logout", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestMetricsExposeRequestHistogram(t *testing.T) {
	app := NewApp(&config.Config{CookieName: "session", FrontendURL: "http://localhost:5173"}, Services{})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "contentops_http_request_duration_seconds")
}
