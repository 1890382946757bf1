package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/pkg/logger"
)

// newTestEngine assembles a bare engine with all controllers registered
// against the given gateway. Middleware is left out on purpose: handlers
// respond with the full error envelope on their own.
func newTestEngine(gw store.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	logger.SetGlobal(log)

	engine := gin.New()
	NewSystemController(gw, log).RegisterRoutes(engine)
	NewSessionController(gw, log).RegisterRoutes(engine)
	NewMessageController(gw, log).RegisterRoutes(engine)
	NewDocumentController(gw, log).RegisterRoutes(engine)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
