package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{name: "valid key", configuredKey: apiKey, providedKey: apiKey, path: "/api/v1/machines", expectedStatus: http.StatusOK},
		{name: "wrong key", configuredKey: apiKey, providedKey: "wrong-key", path: "/api/v1/machines", expectedStatus: http.StatusUnauthorized},
		{name: "missing key", configuredKey: apiKey, path: "/api/v1/machines", expectedStatus: http.StatusUnauthorized},
		{name: "public healthz", configuredKey: apiKey, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "public metrics", configuredKey: apiKey, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "auth disabled", configuredKey: "", path: "/api/v1/machines", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthMiddleware(tt.configuredKey, nil, NewSuspiciousActivityDetector(0))(okHandler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector(0)
	h := AuthMiddleware("secret", nil, detector)(okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/machines", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 32)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(10)
	h := RateLimitMiddleware(nil, detector)(okHandler)

	send := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "192.168.1.100:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, send("/api/v1/machines"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("/api/v1/machines"))
	assert.Equal(t, http.StatusOK, send("/healthz"), "probes are never limited")

	t.Run("window reset", func(t *testing.T) {
		detector.mu.Lock()
		detector.now = func() time.Time { return time.Now().Add(DetectorWindow + time.Second) }
		detector.mu.Unlock()

		assert.Equal(t, http.StatusOK, send("/api/v1/machines"))
	})
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{name: "direct", remoteAddr: "1.2.3.4:80", want: "1.2.3.4"},
		{name: "untrusted forwarded ignored", remoteAddr: "1.2.3.4:80", forwarded: "9.9.9.9", want: "1.2.3.4"},
		{name: "trusted proxy uses rightmost", remoteAddr: "10.0.0.1:80", forwarded: "9.9.9.9, 8.8.8.8", trusted: []string{"10.0.0.1"}, want: "8.8.8.8"},
		{name: "trusted proxy without header", remoteAddr: "10.0.0.1:80", trusted: []string{"10.0.0.1"}, want: "10.0.0.1"},
		{name: "unparseable remote", remoteAddr: "pipe", want: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expected := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueDeny,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
		HeaderCacheControl:   HeaderValueNoStore,
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}
