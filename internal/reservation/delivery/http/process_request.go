package http

import "github.com/gin-gonic/gin"

// processListReq binds the date query and returns it in storage layout.
func (h *handler) processListReq(c *gin.Context) (string, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", err
	}
	return req.validate()
}

func (h *handler) processAvailabilityReq(c *gin.Context) (string, string, error) {
	var req availabilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", "", err
	}
	return req.validate()
}
