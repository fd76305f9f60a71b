package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/rental-system/internal/api/metrics"
	"github.com/moviehub/rental-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new member account.
//
// @Summary      Register a new member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.RegisterUser(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("member", "error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("member", "ok").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Email:   result.Email,
		Role:    result.Role,
		Message: result.Message,
	})
}

// RegisterAdmin creates a new admin account.
//
// @Summary      Register a new admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.RegisterAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("admin", "error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("admin", "ok").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Email:   result.Email,
		Role:    result.Role,
		Message: result.Message,
	})
}

// Login authenticates an account and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:   result.Token,
		Role:    result.Role,
		Message: result.Message,
	})
}

// ListUsers returns all registered accounts.
//
// @Summary      List registered users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	users, err := h.authService.ListUsers(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	resp := listUsersResponse{Users: make([]userResponse, 0, len(users)), Total: len(users)}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse{
			Email:    u.Email,
			Role:     u.Role,
			LoggedIn: u.LoggedIn,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
