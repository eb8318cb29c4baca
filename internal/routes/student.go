package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
	"github.com/elijah571/Omeh-high-school/internal/middleware"
)

func StudentRoutes(r *gin.Engine) {
	student := r.Group("/student")
	{
		student.POST("/enroll", middleware.AuthorizeAdmin(), handlers.CreateStudent)
		student.GET("", middleware.Authorize(), handlers.GetAllStudents)
		student.GET("/:id", middleware.Authorize(), handlers.GetStudentByID)
		student.PUT("/:id", middleware.AuthorizeAdmin(), handlers.UpdateStudent)
		student.DELETE("/:id", middleware.AuthorizeAdmin(), handlers.DeleteStudent)
	}
}
