package models

import (
	"time"

	"phoenix-assistant/backend/internal/sentiment"
	"phoenix-assistant/backend/internal/store"
)

// SessionCollection is the store collection holding Session records.
const SessionCollection = "session"

// DefaultSessionTitle is applied when a session is created without a title.
const DefaultSessionTitle = "New Session"

// Session represents conversation session metadata
type Session struct {
	UserID        *string
	Title         string
	Sentiment     sentiment.Label
	LastMessageAt *time.Time
}

// NewSession creates a Session with defaults applied: an empty title falls
// back to DefaultSessionTitle, sentiment and last_message_at start null.
func NewSession(userID *string, title string) Session {
	if title == "" {
		title = DefaultSessionTitle
	}
	return Session{UserID: userID, Title: title}
}

// Record maps the Session to its persisted field set
func (s Session) Record() store.Record {
	var lastMessageAt any
	if s.LastMessageAt != nil {
		lastMessageAt = *s.LastMessageAt
	}
	return store.Record{
		"user_id":         strOrNil(s.UserID),
		"title":           s.Title,
		"sentiment":       labelOrNil(s.Sentiment),
		"last_message_at": lastMessageAt,
	}
}

// labelOrNil keeps an unset sentiment as null in storage.
func labelOrNil(l sentiment.Label) any {
	if l == "" {
		return nil
	}
	return string(l)
}

// CreateSessionRequest is the request body for POST /sessions
type CreateSessionRequest struct {
	UserID *string `json:"user_id"`
	Title  string  `json:"title"`
}

// SessionResponse is the response body for POST /sessions
type SessionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
