package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tessera-games/loreforge/internal/logger"
)

// AuthMiddleware validates the API key header with a constant time compare.
// Public paths (docs, health, metrics) bypass the check.
func AuthMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "")

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
