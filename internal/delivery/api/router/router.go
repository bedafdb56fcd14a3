// Package router wires the API handlers to their routes.
package router

import (
	"kitchen/config"
	"kitchen/internal/delivery/api/middleware"
	"kitchen/internal/delivery/api/router/handler"
	"kitchen/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	ItemHandler           *handler.ItemHandler
	CartHandler           *handler.CartHandler
	OrderHandler          *handler.OrderHandler
	SettingsHandler       *handler.SettingsHandler
	RoleAssignmentHandler *handler.RoleAssignmentHandler
	NotifyHandler         *handler.NotifyHandler
	DeviceHandler         *handler.DeviceHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	itemHandler           *handler.ItemHandler
	cartHandler           *handler.CartHandler
	orderHandler          *handler.OrderHandler
	settingsHandler       *handler.SettingsHandler
	roleAssignmentHandler *handler.RoleAssignmentHandler
	notifyHandler         *handler.NotifyHandler
	deviceHandler         *handler.DeviceHandler
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		itemHandler:           params.ItemHandler,
		cartHandler:           params.CartHandler,
		orderHandler:          params.OrderHandler,
		settingsHandler:       params.SettingsHandler,
		roleAssignmentHandler: params.RoleAssignmentHandler,
		notifyHandler:         params.NotifyHandler,
		deviceHandler:         params.DeviceHandler,
		authMiddleware:        params.AuthMiddleware,
		config:                params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		path := r.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(promhttp.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token", r.authHandler.LoginWithIDToken)
	}

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Direct notification endpoints keep their original paths and flat bodies
	notifyGroup := e.Group("/api")
	notifyGroup.Use(r.authMiddleware.Authenticate)
	{
		notifyGroup.POST("/send-sms", r.notifyHandler.SendSMS)
		notifyGroup.POST("/send-email", r.notifyHandler.SendEmail)
		notifyGroup.GET("/test-sms", r.notifyHandler.VerifySMS, requireAdmin)
		notifyGroup.POST("/test-sms", r.notifyHandler.SendTestSMS, requireAdmin)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.authHandler.Me)
	apiV1.GET("/catalog", r.itemHandler.Catalog)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.PUT("/destination", r.cartHandler.SelectDestination)
		cartGroup.PUT("/note", r.cartHandler.SetNote)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:itemId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveItem)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.POST("/checkout", r.orderHandler.Checkout)
		ordersGroup.GET("/mine", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.VoidOrder)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(requireAdmin)

	itemsGroup := adminGroup.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.POST("", r.itemHandler.CreateItem)
		itemsGroup.PATCH("/:id", r.itemHandler.UpdateItem)
		itemsGroup.DELETE("/:id", r.itemHandler.DeleteItem)
	}

	adminOrdersGroup := adminGroup.Group("/orders")
	{
		adminOrdersGroup.GET("", r.orderHandler.ListOrders)
		adminOrdersGroup.GET("/export", r.orderHandler.ExportOrders)
		adminOrdersGroup.POST("/scan", r.orderHandler.CompleteByTicket)
		adminOrdersGroup.POST("/:id/complete", r.orderHandler.CompleteOrder)
		adminOrdersGroup.GET("/:id/ticket", r.orderHandler.OrderTicket)
		adminOrdersGroup.GET("/:id/deliveries", r.orderHandler.ListDeliveries)
	}

	settingsGroup := adminGroup.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("", r.settingsHandler.SaveSettings)
	}

	rolesGroup := adminGroup.Group("/role-assignments")
	{
		rolesGroup.GET("", r.roleAssignmentHandler.ListAssignments)
		rolesGroup.PUT("", r.roleAssignmentHandler.UpsertAssignment)
		rolesGroup.DELETE("/:email", r.roleAssignmentHandler.DeleteAssignment)
	}

	devicesGroup := adminGroup.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
