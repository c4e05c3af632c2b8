package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-registration-api/internal/config"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const DiscordAPI = "https://discord.com/api"

const (
	TokenCookie   = "auth_token"
	StateCookie   = "oauth_state"
	TokenDuration = 24 * time.Hour
)

var ErrUnauthorized = errors.New("unauthorized")

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
	discordAPI  string
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  DiscordAPI + "/oauth2/authorize",
				TokenURL: DiscordAPI + "/oauth2/token",
			},
		},
		db:         db,
		cfg:        cfg,
		discordAPI: DiscordAPI,
	}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Path:     "/",
	})

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	state, err := r.Cookie(StateCookie)
	if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	discord := &discordClient{http: h.oauthConfig.Client(r.Context(), token), base: h.discordAPI}
	if guild := h.cfg.DiscordGuildID; guild != "" {
		member, err := discord.memberOf(guild)
		if err != nil {
			http.Error(w, "Failed to get user guilds", http.StatusBadGateway)
			return
		}
		if !member {
			http.Error(w, "Access denied: You are not a member of the front desk guild.", http.StatusForbidden)
			return
		}
	}

	profile, err := discord.profile()
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusBadGateway)
		return
	}

	staff, err := h.upsertStaff(r.Context(), profile)
	if err != nil {
		http.Error(w, "Failed to save staff member", http.StatusInternalServerError)
		return
	}

	jwtToken, err := h.GenerateToken(staff.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: StateCookie, Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    jwtToken,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	})

	if h.cfg.FrontendURL != "" {
		http.Redirect(w, r, h.cfg.FrontendURL, http.StatusTemporaryRedirect)
		return
	}
	w.Write([]byte(fmt.Sprintf("Welcome %s! You are logged in.", staff.Username)))
}

func (h *AuthHandler) GenerateToken(staffID uint) (string, error) {
	claims := jwt.MapClaims{
		"staff_id": staffID,
		"exp":      time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// ParseToken validates a signed token and returns the staff id and expiry.
func (h *AuthHandler) ParseToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, ErrUnauthorized
	}
	staffID, ok := claims["staff_id"].(float64)
	if !ok || staffID <= 0 {
		return 0, time.Time{}, ErrUnauthorized
	}

	var expires time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expires = exp.Time
	}
	return uint(staffID), expires, nil
}

// Authorize resolves the signed-in staff member. A staff id already put on
// ctx by AuthMiddleware wins over the raw Cookie header.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	if id, ok := StaffIDFrom(ctx); ok {
		return id, nil
	}

	cookies, err := http.ParseCookie(cookieHeader)
	if err != nil {
		return 0, ErrUnauthorized
	}
	for _, c := range cookies {
		if c.Name == TokenCookie {
			id, _, err := h.ParseToken(c.Value)
			return id, err
		}
	}
	return 0, ErrUnauthorized
}

type AuthInput struct {
	Cookie string `header:"Cookie"`
}

type MeResponse struct {
	Body struct {
		ID        uint   `json:"id"`
		DiscordID string `json:"discord_id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Avatar    string `json:"avatar"`
	}
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*MeResponse, error) {
	staffID, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var staff models.Staff
	if err := h.db.WithContext(ctx).First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error401Unauthorized("Unknown staff member")
		}
		return nil, huma.Error500InternalServerError("Database error")
	}

	resp := &MeResponse{}
	resp.Body.ID = staff.ID
	resp.Body.DiscordID = staff.DiscordID
	resp.Body.Username = staff.Username
	resp.Body.Email = staff.Email
	resp.Body.Avatar = staff.Avatar
	return resp, nil
}
