package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string normalization for credentials
	"time"     // token expiry in the response

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/hotel-reservation/internal/config" // app configuration
	"github.com/iliyamo/hotel-reservation/internal/utils"  // hashing and token issuing
)

// RoleOperator is the role claim carried by every issued token. The
// service has a single operator account configured at startup.
const RoleOperator = "OPERATOR"

// AuthHandler verifies the operator credentials and issues access
// tokens. PasswordHash holds the bcrypt hash computed from the
// configured password at startup; the plain password is not retained.
type AuthHandler struct {
	Cfg          config.Config
	PasswordHash string
}

func NewAuthHandler(cfg config.Config, passwordHash string) *AuthHandler {
	return &AuthHandler{Cfg: cfg, PasswordHash: passwordHash}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	Operator string    `json:"operator"`
	Role     string    `json:"role"`
	Access   tokenPart `json:"access"`
}

// Login handles POST /v1/auth/login. It verifies email and password
// against the configured operator account and returns a signed access
// token. Wrong credentials yield 401 without distinguishing which
// field was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	if req.Email != strings.ToLower(h.Cfg.OperatorEmail) || !utils.VerifyPassword(h.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Email, RoleOperator, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Operator: req.Email,
		Role:     RoleOperator,
		Access:   tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
