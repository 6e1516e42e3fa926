package models

// ChatRequest is the payload for POST /messages.
type ChatRequest struct {
	Message string `json:"message"` // user’s natural‑language question
}

// ChatResponse is returned once the assistant has answered a turn.
type ChatResponse struct {
	Reply    Message   `json:"reply"`
	Messages []Message `json:"messages"`
	Loading  bool      `json:"loading"`
}

// TranscriptResponse is the read-only view of the conversation.
type TranscriptResponse struct {
	Messages []Message `json:"messages"`
	Loading  bool      `json:"loading"`
}

// ProductsResponse lists the currently available subset next to the full catalog.
type ProductsResponse struct {
	Available []Product `json:"available"`
	Catalog   []Product `json:"catalog"`
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
