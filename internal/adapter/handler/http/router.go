package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/refitlab/refitmarket/internal/adapter/config"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	balanceHandler *BalanceHandler,
	donationHandler *DonationHandler,
	reviewHandler *ReviewHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	base := NewHandler(logger)

	api := router.Group("/api")
	{
		api.Use(authCheck(base, tokenService))

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Checkout)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
		}

		api.GET("/balance", balanceHandler.Balance)
		api.GET("/progression", balanceHandler.RewardProgression)

		donations := api.Group("/donations")
		{
			donations.POST("", donationHandler.SubmitDonation)
			donations.POST("/:id/receive", donationHandler.ReceiveDonation)
		}

		api.POST("/reviews", reviewHandler.CreateReview)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
