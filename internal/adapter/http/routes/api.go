package routes

import (
	"engagetrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers   = "/customers"
	PathEngagements = "/engagements"
	PathDocuments   = "/documents"
	PathDashboard   = "/dashboard"
	PathActionItems = "/action-items"
	PathEmails      = "/emails"
)

func addAPIRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	engagementHandler *handlers.EngagementHandler,
	documentHandler *handlers.DocumentHandler,
	dashboardHandler *handlers.DashboardHandler,
	actionItemHandler *handlers.ActionItemHandler,
	emailHandler *handlers.EmailHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/search", customerHandler.SearchCustomers)
		customers.GET("/autocomplete/names", customerHandler.AutocompleteCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("", customerHandler.CreateCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	engagements := rg.Group(PathEngagements)
	{
		engagements.GET("", engagementHandler.ListEngagements)
		engagements.GET("/search", engagementHandler.SearchEngagements)
		engagements.GET("/:id", engagementHandler.GetEngagement)
		engagements.POST("", engagementHandler.CreateEngagement)
		engagements.PUT("/:id", engagementHandler.UpdateEngagement)
		engagements.DELETE("/:id", engagementHandler.DeleteEngagement)
		engagements.GET("/:id/action-items", actionItemHandler.ListActionItems)
		engagements.POST("/:id/action-items", actionItemHandler.CreateActionItem)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("/upload", documentHandler.UploadDocument)
		documents.GET("", documentHandler.ListDocuments)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.GET("/:id/download", documentHandler.DownloadDocument)
		documents.DELETE("/:id", documentHandler.DeleteDocument)
	}

	actionItems := rg.Group(PathActionItems)
	{
		actionItems.POST("/external", actionItemHandler.CreateExternalActionItem)
		actionItems.PUT("/:id", actionItemHandler.UpdateActionItem)
		actionItems.DELETE("/:id", actionItemHandler.DeleteActionItem)
	}

	emails := rg.Group(PathEmails)
	{
		emails.GET("", emailHandler.ListEmails)
		emails.GET("/:id", emailHandler.GetEmail)
		emails.POST("", emailHandler.CreateEmail)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/kpis", dashboardHandler.GetKPIs)
		dashboard.GET("/status-distribution", dashboardHandler.GetStatusDistribution)
		dashboard.GET("/at-risk-engagements", dashboardHandler.GetAtRiskEngagements)
		dashboard.GET("/recent-activity", dashboardHandler.GetRecentActivity)
	}
}
