package chatapi

import "github.com/lojasmm/gadgetchat/internal/conversation"

// --- POST /chat ---

// Request is the body sent to the chat endpoint. Context is echoed back
// exactly as the service last returned it.
type Request struct {
	Message string               `json:"message"`
	Context conversation.Context `json:"context"`
}

// Response is the body returned by the chat endpoint.
type Response struct {
	Response string               `json:"response"`
	Context  conversation.Context `json:"context"`
}
