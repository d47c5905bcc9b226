package routes

import (
	"context"
	"strconv"

	_ "engagetrack/docs" // generated swagger spec
	"engagetrack/internal/adapter/http/handlers"
	"engagetrack/internal/adapter/http/middleware"
	"engagetrack/internal/adapter/persistence/repository"
	"engagetrack/internal/infrastructure/database"
	"engagetrack/internal/infrastructure/identity"
	"engagetrack/internal/infrastructure/storage"
	"engagetrack/internal/logging"
	"engagetrack/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PORT = 8080

// Run wires the full dependency graph and starts the server.
func Run() {
	log := logging.New()
	defer log.Sync() //nolint:errcheck

	router := gin.New()
	router.Use(logging.RequestLogger(log))
	router.Use(gin.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(router, log)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine, log *zap.Logger) {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	engagementRepo := repository.NewEngagementDynamoRepository(ddb)
	documentRepo := repository.NewDocumentDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	actionItemRepo := repository.NewActionItemDynamoRepository(ddb)
	emailRepo := repository.NewEmailDynamoRepository(ddb)

	docStorage, err := storage.NewS3Storage(ctx)
	if err != nil {
		log.Fatal("failed to configure document storage", zap.Error(err))
	}

	azureGateway, err := identity.NewAzureGateway(log)
	if err != nil {
		log.Fatal("failed to configure identity provider", zap.Error(err))
	}
	sessions := identity.NewSessionTokens()

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, engagementRepo, log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, log)
	dashboardUseCase := usecase.NewDashboardUseCase(customerRepo, engagementRepo, log)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, engagementRepo, docStorage, log)
	authUseCase := usecase.NewAuthUseCase(azureGateway, userRepo, sessions, log)
	actionItemUseCase := usecase.NewActionItemUseCase(actionItemRepo, engagementRepo, log)
	emailUseCase := usecase.NewEmailUseCase(emailRepo, log)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	engagementHandler := handlers.NewEngagementHandler(engagementUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	actionItemHandler := handlers.NewActionItemHandler(actionItemUseCase)
	emailHandler := handlers.NewEmailHandler(emailUseCase)

	addPingRoutes(router.Group(""))
	addAuthRoutes(router.Group("/auth"), authHandler, sessions)

	api := router.Group("/api")
	api.Use(middleware.RequireSession(sessions))
	addAPIRoutes(api, customerHandler, engagementHandler, documentHandler, dashboardHandler, actionItemHandler, emailHandler)
}
