package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/auth-system/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Me returns the identity bound to the current session.
//
// @Summary      Current identity
// @Tags         users
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{
		ID:       session.UserID,
		Username: session.Username,
		Role:     session.Role,
	})
}

// ListUsers returns every account, ordered by username. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   identityResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]identityResponse, 0, len(users))
	for _, u := range users {
		out = append(out, identityResponse{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return c.JSON(http.StatusOK, out)
}
