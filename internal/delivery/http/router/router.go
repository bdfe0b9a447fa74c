// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	FavoriteHandler *handler.FavoriteHandler
	BillingHandler  *handler.BillingHandler
	ReviewHandler   *handler.ReviewHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	favoriteHandler *handler.FavoriteHandler
	billingHandler  *handler.BillingHandler
	reviewHandler   *handler.ReviewHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		favoriteHandler: params.FavoriteHandler,
		billingHandler:  params.BillingHandler,
		reviewHandler:   params.ReviewHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}
	e.GET("/users", r.userHandler.ListUsers)
	e.GET("/users/:user_id", r.userHandler.GetUser)

	// Catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.POST("/products", r.catalogHandler.CreateProduct)
	e.PUT("/products/:id", r.catalogHandler.UpdateProduct)
	e.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	e.POST("/featured/:product_id", r.catalogHandler.FeatureProduct)
	e.DELETE("/featured/:product_id", r.catalogHandler.UnfeatureProduct)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("/:user_id", r.cartHandler.GetCart)
		cartGroup.POST("/:user_id", r.cartHandler.AddToCart)
		cartGroup.PUT("/:user_id", r.cartHandler.UpdateCartItem)
		cartGroup.DELETE("/:user_id", r.cartHandler.RemoveFromCart)
	}

	// Favorites routes
	favoritesGroup := e.Group("/favorites")
	{
		favoritesGroup.GET("/:user_id", r.favoriteHandler.GetFavorites)
		favoritesGroup.POST("/:user_id", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:user_id", r.favoriteHandler.RemoveFavorite)
	}

	// Billing address routes
	billingGroup := e.Group("/billing")
	{
		billingGroup.GET("/:user_id", r.billingHandler.ListBillingAddresses)
		billingGroup.POST("/:user_id", r.billingHandler.AddBillingAddress)
		billingGroup.DELETE("/:user_id/:billing_id", r.billingHandler.DeleteBillingAddress)
	}

	// Review routes
	e.GET("/reviews/:product_id/:user_id", r.reviewHandler.ListProductReviews)
	e.POST("/add-review/:product_id", r.reviewHandler.AddReview)

	// Order routes
	e.POST("/orders/:user_id", r.orderHandler.CreateOrder)
	e.GET("/orders/:user_id", r.orderHandler.ListUserOrders)
	e.GET("/orders", r.orderHandler.ListAllOrders)
	e.GET("/orders/reference/:reference_number", r.orderHandler.GetOrder)
	e.PUT("/orders/:reference_number", r.orderHandler.CompleteOrder)

	// Payment routes
	e.POST("/payment-intents", r.paymentHandler.RegisterIntent)
	e.POST("/webhook", r.paymentHandler.HandleWebhook)
	e.GET("/transactions", r.paymentHandler.ListTransactions)
	e.GET("/transactions/:payment_id", r.paymentHandler.GetTransaction)
	e.POST("/transactions/:user_id", r.paymentHandler.RecordTransaction)
}
