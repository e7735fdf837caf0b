package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"linedori-web/models"
	"linedori-web/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the authenticated user stored by the auth middleware
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// WithUser stores user in ctx
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// AuthController handles login, registration and token checks
type AuthController struct {
	auth service.AuthServiceInterface
}

// NewAuthController creates a new AuthController
func NewAuthController(auth service.AuthServiceInterface) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	resp, err := c.auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, "log in", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, "log out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	user, err := c.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, "register", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// RegisterAdmin handles POST /api/auth/register-admin
// The first admin needs no token; later admins must be created by an admin.
func (c *AuthController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	user, err := c.auth.RegisterAdmin(r.Context(), req, UserFromContext(r.Context()))
	if err != nil {
		writeError(w, "register admin", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Me handles GET /api/auth/me
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, "authenticate", service.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Identify resolves a bearer token when present; requests without one pass through anonymously
func (c *AuthController) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, err := c.auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, "authenticate", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin rejects requests without an admin bearer token
func (c *AuthController) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := c.auth.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			writeError(w, "authenticate", err)
			return
		}
		if user.Role != models.RoleAdmin {
			log.Printf("⚠️  User %s denied admin access to %s", user.ID, r.URL.Path)
			writeError(w, "authorize", service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
