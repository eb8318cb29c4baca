package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elijah571/Omeh-high-school/internal/websocket"
)

func WebSocketRoutes(r *gin.Engine) {
	r.GET("/ws", websocket.HandleWebSocket)
}
