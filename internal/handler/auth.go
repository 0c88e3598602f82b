package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error matching
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/auth-service/internal/cache"      // profile response cache
    "github.com/iliyamo/auth-service/internal/config"     // app configuration
    "github.com/iliyamo/auth-service/internal/middleware" // context keys set by the session guard
    "github.com/iliyamo/auth-service/internal/model"      // user model and public view
    "github.com/iliyamo/auth-service/internal/queue"      // auth event payloads
    "github.com/iliyamo/auth-service/internal/repository" // DB repositories
    queue_publisher "github.com/iliyamo/auth-service/internal/service"
    "github.com/iliyamo/auth-service/internal/utils" // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.  Users is an
// interface so tests can substitute an in-memory store; Profiles may
// be backed by a nil Redis client, which disables caching.
type AuthHandler struct {
	Cfg      config.Config
	Users    repository.UserStore
	Profiles *cache.ProfileCache
}

func NewAuthHandler(cfg config.Config, u repository.UserStore, p *cache.ProfileCache) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Profiles: p}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// Register: create user and return a session token immediately.
//
// The email/username pre-checks are a UX nicety; the unique indexes in
// the store are authoritative, and a concurrent duplicate insert comes
// back as the same conflict errors.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already in use"})
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
	}
	if _, err := h.Users.GetByUsername(ctx, req.Username); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username already taken"})
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
	}

	uid, err := h.Users.Create(ctx, req.Username, req.Email, hash)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already in use"})
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username already taken"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
		}
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, req.Username, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
	}

	h.publishEvent(queue.EventUserRegistered, uid, req.Username, req.Email)

	return c.JSON(http.StatusCreated, authResp{
		Token: access.Token,
		User:  model.PublicUser{ID: uid, Username: req.Username, Email: req.Email},
	})
}

// Login: verify credentials and return a fresh session token.
//
// A missing account and a wrong password produce byte-identical
// responses so the caller cannot tell which field was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}

	h.publishEvent(queue.EventUserLogin, u.ID, u.Username, u.Email)

	return c.JSON(http.StatusOK, authResp{Token: access.Token, User: u.Public()})
}

// Profile: return the current stored state of the authenticated user.
//
// The identity comes from the session guard's context keys.  The record
// is re-fetched from the store rather than trusted from the token, so a
// deleted account yields 404 even with a still-valid token.
func (h *AuthHandler) Profile(c echo.Context) error {
	uid, ok := c.Get(middleware.ContextUserIDKey).(uint64)
	if !ok || uid == 0 {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.Profiles != nil {
		if cached, hit, err := h.Profiles.Get(ctx, uid); err == nil && hit {
			return c.JSON(http.StatusOK, cached)
		}
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error retrieving profile"})
	}

	pub := u.Public()
	if h.Profiles != nil {
		_ = h.Profiles.Set(ctx, pub)
	}
	return c.JSON(http.StatusOK, pub)
}

// publishEvent fires an auth event at the broker without blocking the
// request. Publish failures are logged inside the publisher and
// otherwise ignored.
func (h *AuthHandler) publishEvent(kind string, uid uint64, username, email string) {
	ev := queue.AuthEvent{
		Event:      kind,
		UserID:     uid,
		Username:   username,
		Email:      email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishAuthEvent(ctx, ev)
	}()
}
