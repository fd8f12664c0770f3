package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"service-desk/controllers"
	_ "service-desk/docs"
	"service-desk/middleware"
)

type Dependencies struct {
	Auth   *controllers.AuthController
	Orders *controllers.OrderController
	Health *controllers.HealthController
	Tokens middleware.TokenVerifier
}

// NewRouter builds the engine with the shared middleware stack and every
// route registered.
func NewRouter(logger *slog.Logger, originURL string, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORSMiddleware(originURL),
	)
	SetupRoutes(router, deps)
	return router
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", deps.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/users", deps.Auth.Register)
		api.POST("/login", deps.Auth.Login)
		api.GET("/users", middleware.AuthMiddleware(deps.Tokens), deps.Auth.ListUsers)

		// Order routes are unauthenticated; the existing frontend calls them without a token.
		api.POST("/orders", deps.Orders.CreateOrder)
		api.GET("/orders", deps.Orders.ListOrders)
		api.GET("/orders/:id", deps.Orders.GetOrder)
		api.PUT("/orders/:id", deps.Orders.UpdateOrder)
		api.DELETE("/orders/:id", deps.Orders.DeleteOrder)
	}
}
