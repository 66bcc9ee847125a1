package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/controllers"
	"github.com/pbrudny/financial-decisions-retro/middleware"
)

func DecisionRoutes(r *gin.Engine) {
	auth := r.Group("/api/decisions")
	auth.Use(middleware.RequireParty())
	{
		auth.GET("", controllers.ListDecisions)
		auth.POST("", controllers.CreateDecision)
		auth.GET("/:id", controllers.GetDecision)
		auth.POST("/:id/approve", controllers.ApproveDecision)
		auth.POST("/:id/close", controllers.CloseDecision)

		auth.GET("/:id/assessments/mine", controllers.GetMyAssessment)
		auth.PUT("/:id/assessments/mine", controllers.UpdateMyAssessment)
		auth.POST("/:id/assessments/mine/lock", controllers.LockMyAssessment)
		auth.GET("/:id/assessments/status", controllers.GetAssessmentStatus)
		auth.GET("/:id/assessments/compare", controllers.CompareAssessments)

		auth.GET("/:id/responsibilities/mine", controllers.GetMyResponsibility)
		auth.PUT("/:id/responsibilities/mine", controllers.UpdateMyResponsibility)
		auth.GET("/:id/responsibilities/compare", controllers.CompareResponsibilities)

		auth.GET("/:id/conclusion", controllers.GetSharedConclusion)
		auth.PUT("/:id/conclusion", controllers.UpdateSharedConclusion)
	}
}
