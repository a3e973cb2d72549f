package models

import "time"

// Event types. message.in and message.out are the conversational pair;
// tool.* and system are reserved.
const (
	EventTypeMessageIn  = "message.in"
	EventTypeMessageOut = "message.out"
	EventTypeToolCall   = "tool.call"
	EventTypeToolResult = "tool.result"
	EventTypeSystem     = "system"
)

// ValidEventTypes is the closed set accepted on create.
var ValidEventTypes = map[string]bool{
	EventTypeMessageIn:  true,
	EventTypeMessageOut: true,
	EventTypeToolCall:   true,
	EventTypeToolResult: true,
	EventTypeSystem:     true,
}

// CreateEventRequest ingests one raw event.
type CreateEventRequest struct {
	AnimaID    string                 `json:"anima_id" binding:"required"`
	Type       string                 `json:"type" binding:"required"`
	Role       string                 `json:"role"`
	Author     string                 `json:"author"`
	Content    string                 `json:"content" binding:"required"`
	Summary    string                 `json:"summary"`
	OccurredAt time.Time              `json:"occurred_at"`
	SessionID  string                 `json:"session_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	SourceURI  string                 `json:"source_uri"`
	Importance *float64               `json:"importance"`

	// Dedupe enables the content-hash dedupe key; duplicate creates then
	// surface as a conflict instead of a second row.
	Dedupe bool `json:"dedupe"`
}

// UpdateEventRequest patches the mutable event fields (content is immutable).
type UpdateEventRequest struct {
	Summary    *string                `json:"summary"`
	Metadata   map[string]interface{} `json:"metadata"`
	Importance *float64               `json:"importance"`
}

// EventFilters narrows event listings.
type EventFilters struct {
	AnimaID        string
	Type           string
	SessionID      string
	MinImportance  *float64
	IncludeDeleted bool
	Limit          int
	Offset         int
}
