package models

// TriggerDreamRequest starts a manual dream for an anima.
type TriggerDreamRequest struct {
	AnimaID string `json:"anima_id" binding:"required"`
}

// RecordDreamActionRequest appends one curation action to a session's audit
// trail. SourceMemoryIDs must be non-empty; ResultMemoryIDs is nil for
// deletes.
type RecordDreamActionRequest struct {
	SessionID       string
	ActionType      string
	Phase           string
	SourceMemoryIDs []string
	ResultMemoryIDs []string
	BeforeState     map[string]interface{}
	AfterState      map[string]interface{}
	Reasoning       string
}

// DreamSessionFilters narrows dream-session listings.
type DreamSessionFilters struct {
	AnimaID string
	Status  string
	Limit   int
	Offset  int
}

// DreamStats aggregates dream activity for an anima or a whole tenant.
type DreamStats struct {
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	FailedSessions    int `json:"failed_sessions"`
	RunningSessions   int `json:"running_sessions"`
	MemoriesReviewed  int `json:"memories_reviewed"`
	MemoriesModified  int `json:"memories_modified"`
	MemoriesCreated   int `json:"memories_created"`
	MemoriesArchived  int `json:"memories_archived"`
	MemoriesDeleted   int `json:"memories_deleted"`
}
