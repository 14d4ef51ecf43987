package web

import "github.com/kapu/pokedex-web-go/internal/domain"

// Inbound message types.
const (
	ClientSearch = "search"
	ClientBatch  = "batch"
)

// Outbound message types.
const (
	ServerHello   = "hello"
	ServerStatus  = "status"
	ServerDetail  = "detail"
	ServerGrid    = "grid"
	ServerControl = "control"
)

// BatchControl is the target name of the batch-load button.
const BatchControl = "batch"

type ClientMessage struct {
	Type  string `json:"type"`
	Query string `json:"query,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	Session string      `json:"session,omitempty"`
	Message string      `json:"message,omitempty"`
	Tone    domain.Tone `json:"tone,omitempty"`
	HTML    string      `json:"html,omitempty"`
	Target  string      `json:"target,omitempty"`
	Enabled *bool       `json:"enabled,omitempty"`
}

// FragmentResponse is returned by the stateless /fragments endpoints.
type FragmentResponse struct {
	Status domain.Status `json:"status"`
	HTML   string        `json:"html"`
}
