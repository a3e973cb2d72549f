package models

import "time"

// CreateMemoryRequest creates a consolidated memory, usually from the
// synthesis pipeline but also directly via the API.
type CreateMemoryRequest struct {
	AnimaID    string                 `json:"anima_id" binding:"required"`
	Content    string                 `json:"content" binding:"required"`
	Summary    string                 `json:"summary"`
	Importance *float64               `json:"importance"`
	Confidence *float64               `json:"confidence"`
	TimeStart  *time.Time             `json:"time_start"`
	TimeEnd    *time.Time             `json:"time_end"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// UpdateMemoryRequest patches mutable memory fields.
type UpdateMemoryRequest struct {
	Content    *string                `json:"content"`
	Summary    *string                `json:"summary"`
	Importance *float64               `json:"importance"`
	Confidence *float64               `json:"confidence"`
	State      *string                `json:"state"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// MemoryFilters narrows memory listings.
type MemoryFilters struct {
	AnimaID        string
	States         []string
	MinImportance  *float64
	MinConfidence  *float64
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// SemanticSearchRequest searches memories or knowledge by embedding
// similarity to the query text.
type SemanticSearchRequest struct {
	AnimaID   string   `json:"anima_id" binding:"required"`
	Query     string   `json:"query" binding:"required"`
	Threshold float64  `json:"threshold"`
	TopK      int      `json:"top_k"`
	States    []string `json:"states"`
	Types     []string `json:"types"`
}
