package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"phoenix-assistant/backend/internal/models"
	"phoenix-assistant/backend/internal/sentiment"
	"phoenix-assistant/backend/internal/store"
	apperrors "phoenix-assistant/backend/pkg/errors"
	"phoenix-assistant/backend/pkg/logger"
)

// MessageController handles message and chat API endpoints
type MessageController struct {
	gateway store.Gateway
	logger  *logger.Logger
	now     func() time.Time
}

// NewMessageController creates a new message controller
func NewMessageController(gateway store.Gateway, logger *logger.Logger) *MessageController {
	return &MessageController{gateway: gateway, logger: logger, now: time.Now}
}

// RegisterRoutes registers the routes for the message controller
func (mc *MessageController) RegisterRoutes(router *gin.Engine) {
	router.POST("/messages", mc.CreateMessage)
	router.POST("/chat", mc.Chat)
}

// CreateMessage stores a single user message with its sentiment tag
func (mc *MessageController) CreateMessage(c *gin.Context) {
	var req models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("session_id and content are required").WithDetails(err.Error()))
		return
	}

	msg := models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   req.Content,
		Sentiment: sentiment.Classify(req.Content),
	}

	id, err := mc.gateway.Insert(c.Request.Context(), models.MessageCollection, msg.Record())
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Chat stores the user's message, synthesizes the assistant's reply, stores
// it as a second message, and best-effort touches the session timestamp.
func (mc *MessageController) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("invalid request body").WithDetails(err.Error()))
		return
	}
	if req.SessionID == "" {
		respondError(c, apperrors.NewValidationError("session_id is required"))
		return
	}

	ctx := c.Request.Context()
	userSentiment := sentiment.Classify(req.Message)

	userMsg := models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   req.Message,
		Sentiment: userSentiment,
	}
	userMsgID, err := mc.gateway.Insert(ctx, models.MessageCollection, userMsg.Record())
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	// Canned reply echoing the input; stands in for an LLM call.
	reply := "I'm Phoenix, your assistant. I understood: " + req.Message + ". How would you like me to proceed?"

	assistantMsg := models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
		Sentiment: sentiment.Neutral,
		Emotions:  []string{"calm"},
	}
	assistantMsgID, err := mc.gateway.Insert(ctx, models.MessageCollection, assistantMsg.Record())
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	// Advisory only: the reply is already computed, so a failed timestamp
	// update must never fail the chat request.
	update := store.Record{"last_message_at": mc.now().UTC()}
	if err := mc.gateway.UpdateByID(ctx, models.SessionCollection, req.SessionID, update); err != nil {
		logger.FromContext(c).Debug("session timestamp update skipped",
			"session_id", req.SessionID,
			"error", err.Error(),
		)
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID:          req.SessionID,
		UserMessageID:      userMsgID,
		AssistantMessageID: assistantMsgID,
		AssistantReply:     reply,
		Sentiment:          string(userSentiment),
		Emotions:           []string{"calm"},
	})
}
