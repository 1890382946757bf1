package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"phoenix-assistant/backend/internal/schema"
	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/pkg/logger"
)

// SystemController serves the liveness, diagnostics and schema endpoints
type SystemController struct {
	gateway store.Gateway
	logger  *logger.Logger
}

// NewSystemController creates a new system controller
func NewSystemController(gateway store.Gateway, logger *logger.Logger) *SystemController {
	return &SystemController{gateway: gateway, logger: logger}
}

// RegisterRoutes registers the routes for the system controller
func (sc *SystemController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", sc.Root)
	router.GET("/test", sc.TestStore)
	router.GET("/schema", sc.Schema)
}

// Root is a simple liveness message
func (sc *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Phoenix API is running"})
}

// TestStore reports store connectivity as human-readable status strings.
// It never returns an HTTP error: every internal failure is rendered into
// the response body so the frontend viewer can display it.
func (sc *SystemController) TestStore(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envFlag("DATABASE_URL"),
		"database_name":     envFlag("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	ctx := c.Request.Context()
	if err := sc.gateway.Ping(ctx); err != nil {
		sc.logger.Debug("store ping failed", "error", err.Error())
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	names, err := sc.gateway.Collections(ctx)
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"

	c.JSON(http.StatusOK, response)
}

// Schema returns the static entity-field registry
func (sc *SystemController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, schema.Describe())
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate shortens s to at most n characters, cutting on rune boundaries
// so driver error strings never yield invalid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
