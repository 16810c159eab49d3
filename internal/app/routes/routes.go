package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/gpacalc/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, gpaController *controllers.GPAController) {
	// API version group
	v1 := router.Group("/api/v1")

	gpa := v1.Group("/gpa")
	{
		gpa.POST("/calculate", gpaController.CalculateGPA)
		gpa.GET("/grade-point", gpaController.GetGradePoint)
		gpa.GET("/scale", gpaController.GetGradeScale)
	}
}
