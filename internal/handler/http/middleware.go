package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"go.uber.org/zap"
)

type contextKey string

const (
	capabilityPayloadKey contextKey = "capability_payload"
)

// CapabilityCookie carries the capability token between requests.
const CapabilityCookie = "capability"

// CapabilityVerifier validates a previously issued capability token.
type CapabilityVerifier interface {
	Verify(tokenString string) (*models.CapabilityPayload, error)
}

// Capability gates privileged routes. The token is read from the
// capability cookie or a bearer Authorization header and its payload is
// passed down via the request context.
func Capability(verifier CapabilityVerifier) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := capabilityFromRequest(r)
			if tokenString == "" {
				http.Error(w, "capability required", http.StatusUnauthorized)
				return
			}

			payload, err := verifier.Verify(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), capabilityPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func capabilityFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CapabilityCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// getCapabilityPayload extracts the verified capability payload from context
func getCapabilityPayload(ctx context.Context) (*models.CapabilityPayload, bool) {
	payload, ok := ctx.Value(capabilityPayloadKey).(*models.CapabilityPayload)
	return payload, ok
}

// Logging logs every request with method, path, status and duration.
func Logging(log *zap.Logger) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(&sw, r)

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.status = status
	sw.ResponseWriter.WriteHeader(status)
}
