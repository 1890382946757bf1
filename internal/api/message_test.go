package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoenix-assistant/backend/internal/models"
	"phoenix-assistant/backend/internal/store"
)

func TestCreateMessageClassifiesSentiment(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)

	w := doRequest(t, engine, http.MethodPost, "/messages", map[string]any{
		"session_id": "s1",
		"content":    "this is awesome",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["id"])

	stored, err := mem.Find(context.Background(), models.MessageCollection, nil, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "user", stored[0]["role"])
	assert.Equal(t, "positive", stored[0]["sentiment"])
	assert.Nil(t, stored[0]["emotions"])
}

func TestCreateMessageRequiresFields(t *testing.T) {
	engine := newTestEngine(store.NewMemory())

	w := doRequest(t, engine, http.MethodPost, "/messages", map[string]any{"session_id": "s1"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestChatStoresBothTurns(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)

	w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
		"session_id": "s1",
		"message":    "I hate waiting",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "s1", body["session_id"])
	assert.Equal(t, "negative", body["sentiment"])
	assert.Equal(t, []any{"calm"}, body["emotions"])
	assert.Contains(t, body["assistant_reply"], "I understood: I hate waiting.")

	userID := body["user_message_id"].(string)
	assistantID := body["assistant_message_id"].(string)
	assert.NotEmpty(t, userID)
	assert.NotEmpty(t, assistantID)
	assert.NotEqual(t, userID, assistantID)

	stored, err := mem.Find(context.Background(), models.MessageCollection, nil, 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "user", stored[0]["role"])
	assert.Equal(t, "negative", stored[0]["sentiment"])
	assert.Equal(t, "assistant", stored[1]["role"])
	assert.Equal(t, "neutral", stored[1]["sentiment"])
	assert.Equal(t, []string{"calm"}, stored[1]["emotions"])
}

func TestChatNeverReusesMessageIDs(t *testing.T) {
	engine := newTestEngine(store.NewMemory())

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
			"session_id": "s1",
			"message":    "hello",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		for _, key := range []string{"user_message_id", "assistant_message_id"} {
			id := body[key].(string)
			assert.False(t, seen[id], "identifier reused: %s", id)
			seen[id] = true
		}
	}
}

func TestChatEmptySessionIDRejectedBeforeInsert(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)

	w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
		"session_id": "",
		"message":    "hello",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	assert.Equal(t, "session_id is required", errObj["message"])

	stored, err := mem.Find(context.Background(), models.MessageCollection, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestChatTouchesSessionTimestamp(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)

	created := doRequest(t, engine, http.MethodPost, "/sessions", map[string]any{})
	require.Equal(t, http.StatusCreated, created.Code)
	sessionID := decodeBody(t, created)["id"].(string)

	w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
		"session_id": sessionID,
		"message":    "hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := mem.Find(context.Background(), models.SessionCollection, store.Record{"_id": sessionID}, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	at, ok := stored[0]["last_message_at"].(time.Time)
	require.True(t, ok, "last_message_at not set: %v", stored[0]["last_message_at"])
	assert.WithinDuration(t, time.Now().UTC(), at, time.Minute)
}

// brokenUpdateGateway fails every session update while delegating
// everything else to the in-memory store.
type brokenUpdateGateway struct {
	*store.Memory
}

func (g brokenUpdateGateway) UpdateByID(context.Context, string, string, store.Record) error {
	return store.ErrWrite
}

func TestChatSurvivesTimestampUpdateFailure(t *testing.T) {
	engine := newTestEngine(brokenUpdateGateway{store.NewMemory()})

	w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
		"session_id": "s1",
		"message":    "thanks for the help",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["assistant_reply"], "thanks for the help")
	assert.Equal(t, "positive", body["sentiment"])
	assert.NotEmpty(t, body["user_message_id"])
	assert.NotEmpty(t, body["assistant_message_id"])
}

func TestChatStoreDownReturnsServiceUnavailable(t *testing.T) {
	var disconnected store.Mongo
	engine := newTestEngine(&disconnected)

	w := doRequest(t, engine, http.MethodPost, "/chat", map[string]any{
		"session_id": "s1",
		"message":    "hello",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	errObj := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "STORE_UNAVAILABLE", errObj["code"])
}
