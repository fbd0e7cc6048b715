package handler

import (
	"visaportal/internal/app/middleware"
	"visaportal/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires all REST API routes with role-based auth.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, authHandler *AuthHandler) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.RegisterUser)
		auth.POST("/login", authHandler.LoginUser)
		auth.POST("/logout", authHandler.LogoutUser)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", authMiddleware.WithAuthCheck(role.Seller, role.Support, role.Admin), h.GetOrders)
		orders.GET("/:id", authMiddleware.WithAuthCheck(role.Seller, role.Support, role.Admin), h.GetOrder)
		orders.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Support, role.Admin), h.UpdateOrderStatus)

		// Document generation; also invoked by the payment webhook side
		// after it marks an order completed.
		orders.POST("/:id/documents/contract", authMiddleware.WithAuthCheck(role.Support, role.Admin), h.GenerateContract)
		orders.POST("/:id/documents/annex", authMiddleware.WithAuthCheck(role.Support, role.Admin), h.GenerateAnnex)
	}

	templates := api.Group("/templates")
	{
		templates.GET("", authMiddleware.WithAuthCheck(role.Support, role.Admin), h.GetTemplates)
		templates.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateTemplate)
		templates.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateTemplate)
		templates.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteTemplate)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
