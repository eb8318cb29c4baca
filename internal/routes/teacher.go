package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
	"github.com/elijah571/Omeh-high-school/internal/middleware"
)

func TeacherRoutes(r *gin.Engine) {
	teacher := r.Group("/teacher")
	{
		teacher.POST("/create", middleware.AuthorizeAdmin(), handlers.CreateTeacher)
		teacher.POST("/login", handlers.TeacherLogin)
		teacher.POST("/logout", handlers.TeacherLogout)
		teacher.GET("", middleware.Authorize(), handlers.GetAllTeachers)
		teacher.GET("/:id", middleware.Authorize(), handlers.GetTeacherByID)
		teacher.PUT("/:id", middleware.AuthorizeAdmin(), handlers.UpdateTeacher)
		teacher.DELETE("/:id", middleware.AuthorizeAdmin(), handlers.DeleteTeacher)
	}
}
