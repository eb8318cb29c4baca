package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/elijah571/Omeh-high-school/internal/config"
	"github.com/elijah571/Omeh-high-school/internal/database"
	"github.com/elijah571/Omeh-high-school/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	if err := database.ConnectDB(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Server is running"})
	})

	routes.AuthRoutes(r)
	routes.StudentRoutes(r)
	routes.TeacherRoutes(r)
	routes.ClassroomRoutes(r)
	routes.AttendanceRoutes(r)
	routes.ReportRoutes(r)
	routes.WebSocketRoutes(r)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
