package websocket

const (
	frameWelcome = "welcome"
	frameResumed = "resumed"
	frameReply   = "reply"
	frameError   = "error"
)

type inboundFrame struct {
	Text string `json:"text"`
}

type outboundFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Reply     string `json:"reply,omitempty"`
	State     string `json:"state,omitempty"`
	Finished  bool   `json:"finished"`
	Error     string `json:"error,omitempty"`
}
