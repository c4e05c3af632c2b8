package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestAuthMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil)

	serve := func(tokenString string) (*httptest.ResponseRecorder, uint) {
		req, _ := http.NewRequest("GET", "/", nil)
		if tokenString != "" {
			req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tokenString})
		}
		rr := httptest.NewRecorder()

		var seen uint
		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = StaffIDFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		handler.AuthMiddleware(nextHandler).ServeHTTP(rr, req)
		return rr, seen
	}

	sign := func(expiresIn time.Duration) string {
		claims := jwt.MapClaims{
			"staff_id": uint(1),
			"exp":      time.Now().Add(expiresIn).Unix(),
		}
		tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
		return tokenString
	}

	t.Run("TokenRenewed", func(t *testing.T) {
		// 11 hours left is below TokenDuration/2.
		tokenString := sign(11 * time.Hour)
		rr, seen := serve(tokenString)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if seen != 1 {
			t.Errorf("expected staff id 1 on context, got %d", seen)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == TokenCookie {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
				break
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		rr, _ := serve(sign(13 * time.Hour))

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == TokenCookie {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})

	t.Run("NoCookie", func(t *testing.T) {
		rr, _ := serve("")
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", rr.Code)
		}
	})

	t.Run("InvalidToken", func(t *testing.T) {
		rr, _ := serve("not-a-jwt")
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", rr.Code)
		}
	})
}
