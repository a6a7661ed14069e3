package routes

import (
	"log"
	"net/http"

	"condotrack/internal/relay"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SetupWSHandlers registers the persistent-connection endpoint
func SetupWSHandlers(router *gin.RouterGroup, hub *relay.Hub, allowedOrigin string) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
		},
	}

	router.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}

		client := relay.NewClient(hub, conn)
		log.Printf("Connection %s established", client.ID)
		client.Serve()
	})
}
