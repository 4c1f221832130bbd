package model

// TurnRequest is one inbound conversation turn. The caller resends the
// session state it received on the previous turn; when omitted, the server
// falls back to its TTL-bounded snapshot for the session id.
type TurnRequest struct {
	SessionID string        `json:"session_id"`
	Message   string        `json:"message" binding:"required"`
	State     *SessionState `json:"session_state,omitempty"`
}

// TurnResponse is the orchestrator's reply for one turn.
type TurnResponse struct {
	Reply     string         `json:"reply"`
	NextAgent Agent          `json:"next_agent,omitempty"`
	State     *SessionState  `json:"session_state"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
