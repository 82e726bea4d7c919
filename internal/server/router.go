package server

import (
	handler "rental-ledger/services/rental/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.RentalServiceInterface, opts ...handler.Option) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	rentalHandler := handler.NewRentalHandler(service, opts...)

	items := router.Group("/items")
	{
		items.GET("/available", rentalHandler.AvailableItemsHandler)

		mutating := items.Group("")
		mutating.Use(CallerIdentityMiddleware)
		{
			mutating.POST("", rentalHandler.ListItemHandler)
			mutating.POST("/:item_id/rentals", rentalHandler.RentItemHandler)
			mutating.POST("/:item_id/return", rentalHandler.ReturnItemHandler)
			mutating.POST("/:item_id/claim", rentalHandler.ClaimDepositHandler)
		}
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/rented", rentalHandler.RentedItemsHandler)
		users.GET("/:user_id/listed", rentalHandler.ListedItemsHandler)
	}

	return router
}
