package http

import (
	"errors"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"net/http"
	"time"
)

func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "request timeout")
	}
}

// CorsMiddleware echoes the request origin and allows credentials so the admin session cookie survives
// cross-origin calls from the panel.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware admits requests proven by a bearer token or a session cookie and stores the admin on
// the request context.
func AuthMiddleware(authenticator *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authenticator.Authenticate(r)
			if errors.Is(err, auth.ErrUnauthenticated) {
				writeErrorResponse(w, errs.Unauthorized("Unauthorized"))
				return
			}

			if err != nil {
				slog.ErrorContext(r.Context(), "failed to authenticate admin", common.ExtractTraceIDFromCtx(r.Context()), slog.Any(constant.LogFieldErr, err))
				writeErrorResponse(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithAdmin(r.Context(), identity)))
		})
	}
}
