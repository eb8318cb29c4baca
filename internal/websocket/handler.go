package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/elijah571/Omeh-high-school/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins for now
	},
}

type clientInfo struct {
	UserID string
	Role   string
}

var (
	mu      sync.Mutex
	clients = make(map[*websocket.Conn]clientInfo)
)

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// HandleWebSocket upgrades an authenticated connection onto the attendance
// feed. The feed is one-way; clients only listen.
func HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = utils.TokenFromRequest(c)
	}
	if token == "" {
		c.JSON(401, gin.H{"message": "No token provided"})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"message": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	mu.Lock()
	clients[conn] = clientInfo{UserID: claims.UserID, Role: claims.Role}
	mu.Unlock()

	log.Printf("feed client connected: %s (%s)", claims.UserID, claims.Role)

	go readLoop(conn)
}

func readLoop(conn *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(clients, conn)
		mu.Unlock()
		conn.Close()
		log.Println("feed client disconnected")
	}()

	// drain client frames so pings and closes are handled
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast fans an event out to every connected client, dropping any
// connection that fails to write.
func Broadcast(event string, data interface{}) {
	mu.Lock()
	defer mu.Unlock()

	for conn := range clients {
		if err := conn.WriteJSON(Event{Event: event, Data: data}); err != nil {
			log.Println("broadcast error:", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}
