package auth

import (
	"context"
	"net/http"
	"time"
)

type contextKey string

const StaffIDKey contextKey = "staff_id"

func StaffIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(StaffIDKey).(uint)
	return id, ok && id != 0
}

// AuthMiddleware requires a valid token cookie and puts the staff id on
// the request context.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookie)
		if err != nil {
			if err == http.ErrNoCookie {
				http.Error(w, "Unauthorized: No token found", http.StatusUnauthorized)
				return
			}
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		staffID, expires, err := h.ParseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		// Sliding session: refresh token if it's more than halfway through its duration
		if !expires.IsZero() && time.Until(expires) < TokenDuration/2 {
			newToken, err := h.GenerateToken(staffID)
			if err == nil {
				http.SetCookie(w, &http.Cookie{
					Name:     TokenCookie,
					Value:    newToken,
					Expires:  time.Now().Add(TokenDuration),
					HttpOnly: true,
					Path:     "/",
				})
			}
		}

		ctx := context.WithValue(r.Context(), StaffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
