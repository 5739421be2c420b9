package model

// Actions understood by the content agent.
const (
	ActionFillPassword = "fillPassword"
	ActionDetectFields = "detectFields"
)

// Message is a request sent from the popup to the page context. Document
// carries the page HTML when the page is not attached to the agent.
type Message struct {
	ID       string `json:"id,omitempty"`
	Action   string `json:"action"`
	Password string `json:"password,omitempty"`
	Document string `json:"document,omitempty"`
}

// MessageResponse reports the outcome. Document is the updated page HTML when
// the request carried one.
type MessageResponse struct {
	Success  bool   `json:"success"`
	Fields   int    `json:"fields,omitempty"`
	Document string `json:"document,omitempty"`
	Error    string `json:"error,omitempty"`
}
