package http

import (
	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Creates a conversation and returns the assistant's welcome. A live session with the given session_id is returned with resumed set and no welcome.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startReq false "Optional session id"
// @Success     200  {object} startResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StartSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStartResp(output))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Runs one conversation turn and returns the assistant's reply and the dialogue state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body sendReq true "User message"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Transcript godoc
// @Summary     Get a session transcript
// @Description Returns the session context and its most recent messages.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/chat/sessions/{id}/transcript [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Transcript(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Transcript: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// EndSession godoc
// @Summary     End a chat session
// @Description Discards the session and its transcript.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.EndSession(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.EndSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
