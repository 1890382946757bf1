package models

import (
	"phoenix-assistant/backend/internal/sentiment"
	"phoenix-assistant/backend/internal/store"
)

// MessageCollection is the store collection holding Message records.
const MessageCollection = "message"

// Role identifies the author of a chat turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents one chat turn. Messages are immutable once created.
type Message struct {
	SessionID string
	Role      Role
	Content   string
	Emotions  []string
	Sentiment sentiment.Label
}

// Record maps the Message to its persisted field set
func (m Message) Record() store.Record {
	var emotions any
	if m.Emotions != nil {
		emotions = m.Emotions
	}
	return store.Record{
		"session_id": m.SessionID,
		"role":       string(m.Role),
		"content":    m.Content,
		"sentiment":  labelOrNil(m.Sentiment),
		"emotions":   emotions,
	}
}

// PostMessageRequest is the request body for POST /messages
type PostMessageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// ChatRequest is the request body for POST /chat. SessionID presence is
// checked by the handler so the error detail matches the API contract.
type ChatRequest struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message"`
	UserID    *string `json:"user_id"`
}

// ChatResponse is the response body for POST /chat
type ChatResponse struct {
	SessionID          string   `json:"session_id"`
	UserMessageID      string   `json:"user_message_id"`
	AssistantMessageID string   `json:"assistant_message_id"`
	AssistantReply     string   `json:"assistant_reply"`
	Sentiment          string   `json:"sentiment"`
	Emotions           []string `json:"emotions"`
}
