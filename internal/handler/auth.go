package handler

import (
	"context"  // context with cancellation for DB calls
	"errors"   // sentinel error matching
	"net/http" // HTTP status codes and primitives
	"time"     // timestamps for the registration event

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/Alena-Semenova/plan-d-back/internal/config"     // app configuration
	"github.com/Alena-Semenova/plan-d-back/internal/model"      // user record
	"github.com/Alena-Semenova/plan-d-back/internal/queue"      // domain event payloads
	"github.com/Alena-Semenova/plan-d-back/internal/repository" // DB repositories
	queue_publisher "github.com/Alena-Semenova/plan-d-back/internal/service"
	"github.com/Alena-Semenova/plan-d-back/internal/utils" // hashing, token issuing
)

// AuthHandler bundles dependencies for the account endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResp is the registration response projection. The stored password
// hash is intentionally not part of it.
type userResp struct {
	ID           uint64             `json:"id"`
	Username     string             `json:"username"`
	Email        *string            `json:"email,omitempty"`
	DiabetesType model.DiabetesType `json:"diabetesType,omitempty"`
	Age          *int               `json:"age,omitempty"`
	Gender       *string            `json:"gender,omitempty"`
	Height       *int               `json:"height,omitempty"`
	Weight       *int               `json:"weight,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type tokenResp struct {
	Token string `json:"token"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		DiabetesType: u.DiabetesType,
		Age:          u.Age,
		Gender:       u.Gender,
		Height:       u.Height,
		Weight:       u.Weight,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// Register: reject duplicates, hash the password, persist, respond 201.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.AcquireTimeout)
	defer cancel()

	// Pre-check for a friendlier error; the unique constraint still decides
	// the winner when two registrations race past this point.
	_, err := h.Users.FindByUsername(ctx, req.Username)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already exists"})
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	u, err := h.Users.Create(ctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	h.publishRegistered(u)

	return c.JSON(http.StatusCreated, newUserResp(u))
}

// Login: verify credentials and mint a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.AcquireTimeout)
	defer cancel()

	// An unknown username and a wrong password produce the same response so
	// the endpoint cannot be used to enumerate accounts.
	u, err := h.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username or password"})
	}

	// A missing signing secret is an operator problem, not a credential
	// problem; it must stay distinguishable from the 400 above.
	if h.Cfg.JWTSecret == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "signing secret is not configured"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, tokenResp{Token: tok.Token})
}

// publishRegistered emits the user.registered event without blocking or
// failing the request. Disabled when no broker is configured.
func (h *AuthHandler) publishRegistered(u model.User) {
	if h.Cfg.RabbitURL == "" {
		return
	}
	event := queue.UserRegisteredEvent{
		UserID:       u.ID,
		Username:     u.Username,
		RegisteredAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	url := h.Cfg.RabbitURL
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishUserRegistered(ctx, url, event)
	}()
}
