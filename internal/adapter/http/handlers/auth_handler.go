package handlers

import (
	"errors"
	"net/http"
	"os"

	response "engagetrack/internal/adapter/http/dto/response"
	"engagetrack/internal/usecase"
	"engagetrack/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "token"

const sessionMaxAge = 24 * 60 * 60

// AuthHandler implements the Azure AD login flow and the session profile
// endpoint. The browser is redirected to the identity provider, comes back
// through Callback with an authorization code and leaves with the session
// cookie set.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		state = uuid.NewString()
	}
	c.Redirect(http.StatusFound, h.usecase.LoginURL(state))
}

func (h *AuthHandler) Callback(c *gin.Context) {
	user, token, err := h.usecase.HandleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		c.Redirect(http.StatusFound, frontend)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// Profile returns the user bound to the verified session. The azure_id key is
// set by the session middleware before the request reaches this handler.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.usecase.Profile(c.Request.Context(), c.GetString("azure_id"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthCodeRequired):
		return pkg.NewDomainErrorSimple("AUTH_CODE_REQUIRED", "Authorization code is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
