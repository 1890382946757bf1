package models

import (
	"phoenix-assistant/backend/internal/store"
)

// DocumentCollection is the store collection holding Document records.
const DocumentCollection = "document"

// Document is an ingested text held for future retrieval use
type Document struct {
	UserID *string
	Title  string
	Text   string
	Tags   []string
	Source *string
}

// Record maps the Document to its persisted field set
func (d Document) Record() store.Record {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return store.Record{
		"user_id": strOrNil(d.UserID),
		"title":   d.Title,
		"text":    d.Text,
		"tags":    tags,
		"source":  strOrNil(d.Source),
	}
}

// CreateDocumentRequest is the request body for POST /documents
type CreateDocumentRequest struct {
	Title  string   `json:"title" binding:"required"`
	Text   string   `json:"text" binding:"required"`
	UserID *string  `json:"user_id"`
	Tags   []string `json:"tags"`
	Source *string  `json:"source"`
}
