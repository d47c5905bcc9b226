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
	errInvalidActionItemPayload = pkg.NewDomainErrorSimple("INVALID_ACTION_ITEM_INPUT", "Invalid action item payload", http.StatusBadRequest)
)

// ActionItemHandler handles HTTP requests for engagement follow-up tasks.
type ActionItemHandler struct {
	usecase usecase.IActionItemUseCase
}

func NewActionItemHandler(uc usecase.IActionItemUseCase) *ActionItemHandler {
	return &ActionItemHandler{usecase: uc}
}

func (h *ActionItemHandler) ListActionItems(c *gin.Context) {
	items, err := h.usecase.ListByEngagement(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActionItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActionItems(items))
}

func (h *ActionItemHandler) CreateActionItem(c *gin.Context) {
	var payload request.ActionItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionItemPayload.HTTPStatus, errInvalidActionItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.Payload())
	if err != nil {
		appErr := mapActionItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActionItem(item))
}

func (h *ActionItemHandler) CreateExternalActionItem(c *gin.Context) {
	var payload request.ActionItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionItemPayload.HTTPStatus, errInvalidActionItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateExternal(c.Request.Context(), payload.Payload())
	if err != nil {
		appErr := mapActionItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActionItem(item))
}

func (h *ActionItemHandler) UpdateActionItem(c *gin.Context) {
	var payload request.ActionItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionItemPayload.HTTPStatus, errInvalidActionItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Payload())
	if err != nil {
		appErr := mapActionItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActionItem(item))
}

func (h *ActionItemHandler) DeleteActionItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapActionItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func mapActionItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActionItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActionItemEngagementRequired):
		return pkg.NewValidationError("ACTION_ITEM_VALIDATION", "Action item validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "engagementId", Reason: "engagementId is required"},
		})
	case errors.Is(err, usecase.ErrActionItemDescriptionRequired):
		return pkg.NewValidationError("ACTION_ITEM_VALIDATION", "Action item validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "description", Reason: "description is required"},
		})
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionItemNotFound):
		return pkg.NewDomainErrorSimple("ACTION_ITEM_NOT_FOUND", "Action item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
