package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to chat handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.POST("/:id/messages", h.SendMessage)
		sessions.GET("/:id/transcript", h.Transcript)
		sessions.DELETE("/:id", h.EndSession)
	}
}
