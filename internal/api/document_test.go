package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoenix-assistant/backend/internal/models"
	"phoenix-assistant/backend/internal/store"
)

func TestAddDocumentAppliesDefaults(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)

	w := doRequest(t, engine, http.MethodPost, "/documents", map[string]any{
		"title": "meeting notes",
		"text":  "we discussed the roadmap",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["id"])

	stored, err := mem.Find(context.Background(), models.DocumentCollection, nil, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, []string{}, stored[0]["tags"])
	assert.Nil(t, stored[0]["user_id"])
	assert.Nil(t, stored[0]["source"])
}

func TestAddDocumentRequiresTitleAndText(t *testing.T) {
	engine := newTestEngine(store.NewMemory())

	w := doRequest(t, engine, http.MethodPost, "/documents", map[string]any{"title": "only title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errObj := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestListDocumentsAppliesLimit(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := mem.Insert(ctx, models.DocumentCollection, store.Record{
			"user_id": "u1",
			"title":   "doc",
			"text":    "body",
		})
		require.NoError(t, err)
	}

	w := doRequest(t, engine, http.MethodGet, "/documents?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestListDocumentsFiltersByUser(t *testing.T) {
	mem := store.NewMemory()
	engine := newTestEngine(mem)
	ctx := context.Background()

	for _, userID := range []string{"u1", "u1", "u2"} {
		_, err := mem.Insert(ctx, models.DocumentCollection, store.Record{"user_id": userID, "title": "d", "text": "t"})
		require.NoError(t, err)
	}

	w := doRequest(t, engine, http.MethodGet, "/documents?user_id=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	docs := decodeList(t, w)
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, "u1", doc["user_id"])
	}
}

func TestListDocumentsRejectsBadLimit(t *testing.T) {
	engine := newTestEngine(store.NewMemory())

	w := doRequest(t, engine, http.MethodGet, "/documents?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDocumentsEmptyStore(t *testing.T) {
	engine := newTestEngine(store.NewMemory())

	w := doRequest(t, engine, http.MethodGet, "/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)
}
