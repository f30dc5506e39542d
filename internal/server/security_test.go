package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-key-123"
	wrapped := AuthMiddleware(apiKey)(okHandler())

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/parts?kind=power", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/parts?kind=power", nil)
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/parts?kind=power", nil)
		req.Header.Set(HeaderAPIKey, "wrong-key")
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("public paths bypass auth", func(t *testing.T) {
		for _, path := range PublicPaths {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
		}
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	wrapped := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for {
			if _, err := r.Body.Read(buf); err != nil {
				if strings.Contains(err.Error(), "request body too large") {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
				}
				return
			}
		}
	})
	wrapped := RequestSizeLimitMiddleware(16)(echo)

	t.Run("small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/derive/power", strings.NewReader("tiny"))
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body blocked", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/derive/power", strings.NewReader(strings.Repeat("x", 64)))
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
