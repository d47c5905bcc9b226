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
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for customer records.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// customerFilters collects the structured filters supported by list and
// search. Absent query params stay out of the map so they add no constraint.
func customerFilters(c *gin.Context) map[string]string {
	filters := map[string]string{}
	for _, key := range []string{"industry", "status", "city", "state", "country"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	return filters
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context(), customerFilters(c))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// firstQuery returns the first non-empty value among the given query params.
// Search and autocomplete accept a short alias alongside their canonical
// parameter name.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.usecase.Search(c.Request.Context(), firstQuery(c, "query", "q"), customerFilters(c))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) AutocompleteCustomers(c *gin.Context) {
	names, err := h.usecase.AutocompleteNames(c.Request.Context(), firstQuery(c, "prefix", "q"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": names})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.Payload())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Payload())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNameRequired):
		return pkg.NewValidationError("CUSTOMER_VALIDATION", "Customer validation failed", http.StatusUnprocessableEntity, []pkg.FieldError{
			{Field: "name", Reason: "name is required"},
		})
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
