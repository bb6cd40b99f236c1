package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only reservation endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/availability", h.Availability)
	rg.GET("/customers/:name", h.Customer)
}
