package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

const (
	HealthMessage = "Restaurant chatbot is serving"
	ServiceName   = "restaurant-chatbot"
)

// Version is overridden at build time with -ldflags "-X .../httpserver.Version=...".
var Version = "dev"

type healthResp struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	Service  string `json:"service"`
	Telegram bool   `json:"telegram"`
}

func (srv *HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, healthResp{
		Status:   status,
		Message:  HealthMessage,
		Version:  Version,
		Service:  ServiceName,
		Telegram: srv.telegramBot != nil,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
