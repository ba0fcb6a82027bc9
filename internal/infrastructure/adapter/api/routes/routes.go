package routes

import (
	"github.com/gin-gonic/gin"

	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/handler"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens authport.TokenManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	budgetHandler *handler.BudgetHandler,
	categoryHandler *handler.CategoryHandler,
) {
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.Auth(tokens))
	{
		userRoutes := authenticated.Group("/users")
		{
			userRoutes.GET("/me", userHandler.GetProfile)
			userRoutes.PUT("/fcm-token", userHandler.UpdateFcmToken)
		}

		transactionRoutes := authenticated.Group("/transactions")
		{
			transactionRoutes.POST("", transactionHandler.Create)
			transactionRoutes.GET("", transactionHandler.List)
			transactionRoutes.GET("/summary", transactionHandler.Summary)
			transactionRoutes.GET("/budget/:id", transactionHandler.ListForBudget)
			transactionRoutes.GET("/:id", transactionHandler.GetByID)
			transactionRoutes.PATCH("/:id", transactionHandler.Update)
			transactionRoutes.DELETE("/:id", transactionHandler.Delete)
		}

		budgetRoutes := authenticated.Group("/budgets")
		{
			budgetRoutes.POST("", budgetHandler.Create)
			budgetRoutes.GET("", budgetHandler.List)
			budgetRoutes.GET("/dropdown", budgetHandler.ListOptions)
			budgetRoutes.GET("/:id", budgetHandler.GetByID)
			budgetRoutes.PUT("/:id", budgetHandler.Update)
			budgetRoutes.DELETE("/:id", budgetHandler.Delete)
		}

		authenticated.GET("/categories", categoryHandler.List)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
