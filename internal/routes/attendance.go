package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
	"github.com/elijah571/Omeh-high-school/internal/middleware"
)

func AttendanceRoutes(r *gin.Engine) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/mark-attendance", middleware.AuthorizeAdmin(), handlers.CreateAttendance)
		attendance.PUT("/:id", middleware.AuthorizeAdmin(), handlers.UpdateAttendance)
		attendance.GET("/:classroomId", middleware.Authorize(), handlers.GetAttendanceByClassroom)
		attendance.GET("/:classroomId/:studentId", middleware.Authorize(), handlers.GetStudentAttendance)
		attendance.DELETE("/:classroomId", middleware.AuthorizeAdmin(), handlers.DeleteAttendance)
	}
}
