package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/handlers"
)

func AuthRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.POST("/signup", handlers.AdminSignup)
		admin.POST("/login", handlers.AdminLogin)
		admin.POST("/logout", handlers.AdminLogout)
	}
}
