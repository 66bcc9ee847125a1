package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/controllers"
	"github.com/pbrudny/financial-decisions-retro/middleware"
)

func StatusRoutes(r *gin.Engine) {
	auth := r.Group("/api/status")
	auth.Use(middleware.RequireParty())
	{
		auth.GET("", controllers.GetGlobalStatus)
		auth.GET("/dashboard", controllers.GetDashboardStats)
	}
}
