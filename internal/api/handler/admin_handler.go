package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corphunt/corphunt-api/internal/core/ports"
)

// AdminHandler exposes the privileged user-management surface.
type AdminHandler struct {
	admin  ports.AdminService
	logger zerolog.Logger
}

func NewAdminHandler(admin ports.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// ListUsers returns every account. Password hashes never serialize.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// CreateUser creates a pre-verified account, bypassing OTP verification.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Country:  req.Country,
		City:     req.City,
	})
	if err != nil {
		return err
	}

	h.logger.Info().Str("actor", actor).Str("user_id", user.ID).Msg("admin created user")
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser patches an account's profile fields.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Country:  req.Country,
		City:     req.City,
		Verified: req.Verified,
	})
	if err != nil {
		return err
	}

	h.logger.Info().Str("actor", actor).Str("user_id", user.ID).Msg("admin updated user")
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	h.logger.Info().Str("actor", actor).Str("user_id", id).Msg("admin deleted user")
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
