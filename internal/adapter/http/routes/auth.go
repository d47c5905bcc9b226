package routes

import (
	"engagetrack/internal/adapter/http/handlers"
	"engagetrack/internal/adapter/http/middleware"
	"engagetrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, sessions interfaces.ISessionTokens) {
	rg.GET("/login", authHandler.Login)
	rg.GET("/callback", authHandler.Callback)
	rg.POST("/logout", authHandler.Logout)

	// Profile needs the verified session subject.
	rg.GET("/profile", middleware.RequireSession(sessions), authHandler.Profile)
}
