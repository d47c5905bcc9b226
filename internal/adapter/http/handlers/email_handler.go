package handlers

import (
	"errors"
	"net/http"

	request "engagetrack/internal/adapter/http/dto/request"
	response "engagetrack/internal/adapter/http/dto/response"
	"engagetrack/internal/usecase"
	"engagetrack/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEmailPayload = pkg.NewDomainErrorSimple("INVALID_EMAIL_INPUT", "Invalid email payload", http.StatusBadRequest)
)

// EmailHandler handles HTTP requests for captured correspondence.
type EmailHandler struct {
	usecase usecase.IEmailUseCase
}

func NewEmailHandler(uc usecase.IEmailUseCase) *EmailHandler {
	return &EmailHandler{usecase: uc}
}

func (h *EmailHandler) ListEmails(c *gin.Context) {
	emails, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmails(emails))
}

func (h *EmailHandler) GetEmail(c *gin.Context) {
	email, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmail(email))
}

func (h *EmailHandler) CreateEmail(c *gin.Context) {
	var payload request.EmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmailPayload.HTTPStatus, errInvalidEmailPayload.ToHTTPError())
		return
	}

	email, err := h.usecase.Create(c.Request.Context(), payload.Payload())
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmail(email))
}

func mapEmailError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmailID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailEngagementRequired):
		return pkg.NewValidationError("EMAIL_VALIDATION", "Email validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "engagementId", Reason: "engagementId is required"},
		})
	case errors.Is(err, usecase.ErrEmailSubjectRequired):
		return pkg.NewValidationError("EMAIL_VALIDATION", "Email validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "subject", Reason: "subject is required"},
		})
	case errors.Is(err, usecase.ErrEmailNotFound):
		return pkg.NewDomainErrorSimple("EMAIL_NOT_FOUND", "Email not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
