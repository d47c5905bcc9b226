package handlers

import (
	"net/http"

	"engagetrack/internal/usecase"
	"engagetrack/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views rendered on the landing page.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	kpis, err := h.usecase.KPIs(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, kpis)
}

func (h *DashboardHandler) GetStatusDistribution(c *gin.Context) {
	counts, err := h.usecase.StatusDistribution(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *DashboardHandler) GetAtRiskEngagements(c *gin.Context) {
	atRisk, err := h.usecase.AtRiskEngagements(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, atRisk)
}

func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	activity, err := h.usecase.RecentActivity(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, activity)
}

func mapDashboardError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
