package models

import "time"

// SavePackRequest persists one compiled memory pack.
type SavePackRequest struct {
	AnimaID        string
	Query          string
	Preset         string
	SessionCount   int
	KnowledgeCount int
	LongTermCount  int
	TokenCount     int
	MaxTokens      int
	Content        map[string]interface{}
	CompiledAt     time.Time
}
