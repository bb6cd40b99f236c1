package http

import (
	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

// List godoc
// @Summary     List reservations for a date
// @Description Returns the day's reservations grouped by time in commit order.
// @Tags        Reservations
// @Produce     json
// @Param       date query string true "Date (YYYY-MM-DD or DD/MM/YYYY)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reservations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	byTime, err := h.uc.ListForDate(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForDate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(date, byTime))
}

// Availability godoc
// @Summary     Slot availability
// @Description Returns how many reservations a date and time still accepts.
// @Tags        Reservations
// @Produce     json
// @Param       date query string true "Date (YYYY-MM-DD or DD/MM/YYYY)"
// @Param       time query string true "Time (HH:MM)"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reservations/availability [GET]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	date, clock, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Availability(ctx, date, clock)
	if err != nil {
		h.l.Errorf(ctx, "uc.Availability: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// Customer godoc
// @Summary     Customer ledger entry
// @Description Returns visit count and last visit for a customer name (case-insensitive).
// @Tags        Reservations
// @Produce     json
// @Param       name path string true "Customer name"
// @Success     200 {object} customerResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/customers/{name} [GET]
func (h *handler) Customer(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetCustomer(ctx, c.Param("name"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetCustomer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCustomerResp(output))
}
