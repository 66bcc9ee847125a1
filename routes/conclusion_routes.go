package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/controllers"
	"github.com/pbrudny/financial-decisions-retro/middleware"
)

func MetaConclusionRoutes(r *gin.Engine) {
	auth := r.Group("/api/meta-conclusions")
	auth.Use(middleware.RequireParty())
	{
		auth.GET("", controllers.ListMetaConclusions)
		auth.POST("", controllers.CreateMetaConclusion)
		auth.PUT("/:id", controllers.UpdateMetaConclusion)
		auth.DELETE("/:id", controllers.DeleteMetaConclusion)
	}
}
