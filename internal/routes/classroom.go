package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
	"github.com/elijah571/Omeh-high-school/internal/middleware"
)

func ClassroomRoutes(r *gin.Engine) {
	classroom := r.Group("/classroom")
	{
		classroom.POST("/create", middleware.AuthorizeAdmin(), handlers.CreateClassroom)
		classroom.POST("/assign-teacher", middleware.AuthorizeAdmin(), handlers.AssignTeacher)
		classroom.POST("/assign-student", middleware.AuthorizeAdmin(), handlers.AssignStudents)
		classroom.GET("/:id", middleware.Authorize(), handlers.GetClassroom)
	}
}
