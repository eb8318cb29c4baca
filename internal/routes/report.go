package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
	"github.com/elijah571/Omeh-high-school/internal/middleware"
)

func ReportRoutes(r *gin.Engine) {
	report := r.Group("/report")
	{
		report.POST("", middleware.AuthorizeAdmin(), handlers.CreateReport)
		report.GET("", middleware.Authorize(), handlers.GetAllReports)
		report.GET("/:studentId", middleware.Authorize(), handlers.GetStudentReport)
		report.PUT("", middleware.AuthorizeAdmin(), handlers.UpdateAllReports)
		report.PUT("/:studentId", middleware.AuthorizeAdmin(), handlers.UpdateStudentReport)
		report.DELETE("", middleware.AuthorizeAdmin(), handlers.DeleteAllReports)
		report.DELETE("/:studentId", middleware.AuthorizeAdmin(), handlers.DeleteStudentReport)
	}
}
