package models

// CreateKnowledgeRequest creates one distilled knowledge item.
type CreateKnowledgeRequest struct {
	AnimaID        string   `json:"anima_id" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Topic          string   `json:"topic"`
	Content        string   `json:"content" binding:"required"`
	Summary        string   `json:"summary"`
	Confidence     *float64 `json:"confidence"`
	SourceType     string   `json:"source_type"`
	SourceMemoryID string   `json:"source_memory_id"`

	// TriggeredBy identifies the pipeline or user writing the audit row.
	TriggeredBy string `json:"-"`
}

// UpdateKnowledgeRequest patches mutable knowledge fields.
type UpdateKnowledgeRequest struct {
	Topic      *string  `json:"topic"`
	Content    *string  `json:"content"`
	Summary    *string  `json:"summary"`
	Confidence *float64 `json:"confidence"`

	TriggeredBy string `json:"-"`
}

// KnowledgeFilters narrows knowledge listings.
type KnowledgeFilters struct {
	AnimaID        string
	Types          []string
	Topic          string
	IncludeDeleted bool
	Limit          int
	Offset         int
}
