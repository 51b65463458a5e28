package routes

import (
	"github.com/gin-gonic/gin"

	"eletrigo/handlers"
)

// RegisterRoutes wires every endpoint of the command surface.
func RegisterRoutes(r *gin.Engine, b *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.POST("", b.Service.RequestServiceHandler)
		services.POST("/:id/accept", b.Service.AcceptServiceHandler)
		services.POST("/:id/advance", b.Service.AdvanceServiceHandler)
		services.POST("/:id/cancel", b.Service.CancelServiceHandler)
		services.POST("/:id/chat", b.Service.SendMessageHandler)
		services.POST("/:id/rate", b.Service.RateServiceHandler)
	}

	dashboards := r.Group("/api/dashboard")
	{
		dashboards.GET("/client/:clientId", b.Dashboard.ClientViewHandler)
		dashboards.GET("/electrician/:id", b.Dashboard.ElectricianViewHandler)
		dashboards.GET("/admin", b.Dashboard.AdminViewHandler)
	}

	clients := r.Group("/api/clients")
	{
		clients.POST("", b.Client.RegisterHandler)
		clients.POST("/login", b.Client.LoginHandler)
		clients.PUT("/:id", b.Client.UpdateProfileHandler)
	}

	electricians := r.Group("/api/electricians")
	{
		electricians.POST("", b.Electrician.RegisterHandler)
		electricians.POST("/login", b.Electrician.LoginHandler)
		electricians.PUT("/:id/approval", b.Electrician.SetApprovalHandler)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("/:userId", b.Notification.FeedHandler)
		notifications.DELETE("/:userId/:id", b.Notification.DismissHandler)
	}
}
