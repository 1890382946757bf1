package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phoenix-assistant/backend/internal/models"
	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/internal/wire"
	apperrors "phoenix-assistant/backend/pkg/errors"
	"phoenix-assistant/backend/pkg/logger"
)

// SessionController handles session-related API endpoints
type SessionController struct {
	gateway store.Gateway
	logger  *logger.Logger
}

// NewSessionController creates a new session controller
func NewSessionController(gateway store.Gateway, logger *logger.Logger) *SessionController {
	return &SessionController{gateway: gateway, logger: logger}
}

// RegisterRoutes registers the routes for the session controller
func (sc *SessionController) RegisterRoutes(router *gin.Engine) {
	router.POST("/sessions", sc.CreateSession)
	router.GET("/sessions/:session_id/messages", sc.ListMessages)
}

// CreateSession creates a new conversation session. The title defaults to
// "New Session"; sentiment and last_message_at start null.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("invalid request body").WithDetails(err.Error()))
		return
	}

	session := models.NewSession(req.UserID, req.Title)

	id, err := sc.gateway.Insert(c.Request.Context(), models.SessionCollection, session.Record())
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{ID: id, Title: session.Title})
}

// ListMessages returns all messages for a session, serialized, in store order
func (sc *SessionController) ListMessages(c *gin.Context) {
	sessionID := c.Param("session_id")

	msgs, err := sc.gateway.Find(
		c.Request.Context(),
		models.MessageCollection,
		store.Record{"session_id": sessionID},
		0,
	)
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	c.JSON(http.StatusOK, wire.SerializeAll(msgs))
}
