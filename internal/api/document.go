package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phoenix-assistant/backend/internal/models"
	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/internal/wire"
	apperrors "phoenix-assistant/backend/pkg/errors"
	"phoenix-assistant/backend/pkg/logger"
)

// defaultDocumentLimit caps GET /documents when no limit is given.
const defaultDocumentLimit = 50

// DocumentController handles the retrieval-corpus document endpoints
type DocumentController struct {
	gateway store.Gateway
	logger  *logger.Logger
}

// NewDocumentController creates a new document controller
func NewDocumentController(gateway store.Gateway, logger *logger.Logger) *DocumentController {
	return &DocumentController{gateway: gateway, logger: logger}
}

// RegisterRoutes registers the routes for the document controller
func (dc *DocumentController) RegisterRoutes(router *gin.Engine) {
	router.POST("/documents", dc.AddDocument)
	router.GET("/documents", dc.ListDocuments)
}

// AddDocument stores one document for the retrieval corpus
func (dc *DocumentController) AddDocument(c *gin.Context) {
	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("title and text are required").WithDetails(err.Error()))
		return
	}

	doc := models.Document{
		UserID: req.UserID,
		Title:  req.Title,
		Text:   req.Text,
		Tags:   req.Tags,
		Source: req.Source,
	}

	id, err := dc.gateway.Insert(c.Request.Context(), models.DocumentCollection, doc.Record())
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListDocuments returns serialized documents, optionally filtered by
// user_id, truncated to limit (default 50)
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	filter := store.Record{}
	if userID := c.Query("user_id"); userID != "" {
		filter["user_id"] = userID
	}

	limit := int64(defaultDocumentLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, apperrors.NewValidationError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	docs, err := dc.gateway.Find(c.Request.Context(), models.DocumentCollection, filter, limit)
	if err != nil {
		respondError(c, apperrors.FromStore(err))
		return
	}

	c.JSON(http.StatusOK, wire.SerializeAll(docs))
}
