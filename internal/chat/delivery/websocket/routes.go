package websocket

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the chat socket at /ws/chat.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.GET("/ws/chat", h.Serve)
}
