package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/controllers"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/auth/login", controllers.Login)
}
