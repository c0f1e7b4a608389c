package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-service/internal/infrastructure"
)

type contextKey int

const claimsKey contextKey = iota

// authenticate is the bearer-token guard: it either attaches the decoded
// claims to the request context or short-circuits with 401 (no token) /
// 403 (bad token).
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}

		claims, err := h.jwt.ValidateToken(token)
		if err != nil {
			respondMessage(w, http.StatusForbidden, "Forbidden: Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func claimsFromContext(ctx context.Context) *infrastructure.Claims {
	claims, _ := ctx.Value(claimsKey).(*infrastructure.Claims)
	return claims
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(statusCode int) {
	rec.status = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

// requestLogger logs one line per request, tagged with the client-supplied
// X-Request-ID or a generated one.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s requestID=%s", r.Method, r.URL.Path, rec.status, time.Since(start), requestID)
	})
}
