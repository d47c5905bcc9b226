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
	errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)
)

// EngagementHandler handles HTTP requests for engagement records.
type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
}

func NewEngagementHandler(uc usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

func (h *EngagementHandler) ListEngagements(c *gin.Context) {
	engagements, err := h.usecase.List(c.Request.Context(), c.Query("customerId"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagements(engagements))
}

func (h *EngagementHandler) SearchEngagements(c *gin.Context) {
	engagements, err := h.usecase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagements(engagements))
}

func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	engagement, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

func (h *EngagementHandler) CreateEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	engagement, err := h.usecase.Create(c.Request.Context(), payload.Payload())
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEngagement(engagement))
}

func (h *EngagementHandler) UpdateEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	engagement, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Payload())
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

func (h *EngagementHandler) DeleteEngagement(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func mapEngagementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEngagementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNameRequired):
		return pkg.NewValidationError("ENGAGEMENT_VALIDATION", "Engagement validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "name", Reason: "name is required"},
		})
	case errors.Is(err, usecase.ErrEngagementCustomerRequired):
		return pkg.NewValidationError("ENGAGEMENT_VALIDATION", "Engagement validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "customerId", Reason: "customerId is required"},
		})
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
