// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "api_key_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "key_hash", Type: field.TypeString},
		{Name: "key_prefix", Type: field.TypeString, Size: 12},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "request_count", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_users_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_key_prefix",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[4]},
			},
			{
				Name:    "apikey_user_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[11], APIKeysColumns[7]},
			},
		},
	}
	// AnimasColumns holds the columns for the "animas" table.
	AnimasColumns = []*schema.Column{
		{Name: "anima_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_dormant", Type: field.TypeBool, Default: false},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// AnimasTable holds the schema information for the "animas" table.
	AnimasTable = &schema.Table{
		Name:       "animas",
		Columns:    AnimasColumns,
		PrimaryKey: []*schema.Column{AnimasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "animas_users_animas",
				Columns:    []*schema.Column{AnimasColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "anima_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnimasColumns[10]},
			},
			{
				Name:    "anima_user_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{AnimasColumns[10], AnimasColumns[7]},
			},
			{
				Name:    "anima_is_dormant",
				Unique:  false,
				Columns: []*schema.Column{AnimasColumns[5]},
			},
		},
	}
	// DreamActionsColumns holds the columns for the "dream_actions" table.
	DreamActionsColumns = []*schema.Column{
		{Name: "dream_action_id", Type: field.TypeString, Unique: true},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"merge", "split", "update", "archive", "delete"}},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"light_sleep", "deep_sleep"}},
		{Name: "source_memory_ids", Type: field.TypeJSON},
		{Name: "result_memory_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "before_state", Type: field.TypeJSON, Nullable: true},
		{Name: "after_state", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DreamActionsTable holds the schema information for the "dream_actions" table.
	DreamActionsTable = &schema.Table{
		Name:       "dream_actions",
		Columns:    DreamActionsColumns,
		PrimaryKey: []*schema.Column{DreamActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dream_actions_dream_sessions_actions",
				Columns:    []*schema.Column{DreamActionsColumns[9]},
				RefColumns: []*schema.Column{DreamSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dreamaction_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DreamActionsColumns[9], DreamActionsColumns[8]},
			},
		},
	}
	// DreamSessionsColumns holds the columns for the "dream_sessions" table.
	DreamSessionsColumns = []*schema.Column{
		{Name: "dream_session_id", Type: field.TypeString, Unique: true},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"scheduled", "manual"}},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "memories_reviewed", Type: field.TypeInt, Default: 0},
		{Name: "memories_modified", Type: field.TypeInt, Default: 0},
		{Name: "memories_created", Type: field.TypeInt, Default: 0},
		{Name: "memories_archived", Type: field.TypeInt, Default: 0},
		{Name: "memories_deleted", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "config_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString},
	}
	// DreamSessionsTable holds the schema information for the "dream_sessions" table.
	DreamSessionsTable = &schema.Table{
		Name:       "dream_sessions",
		Columns:    DreamSessionsColumns,
		PrimaryKey: []*schema.Column{DreamSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dream_sessions_animas_dream_sessions",
				Columns:    []*schema.Column{DreamSessionsColumns[16]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dreamsession_anima_id_status",
				Unique:  false,
				Columns: []*schema.Column{DreamSessionsColumns[16], DreamSessionsColumns[5]},
			},
			{
				Name:    "dreamsession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{DreamSessionsColumns[5], DreamSessionsColumns[3]},
			},
			{
				Name:    "dreamsession_running_anima_id",
				Unique:  true,
				Columns: []*schema.Column{DreamSessionsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "source_uri", Type: field.TypeString, Nullable: true},
		{Name: "dedupe_key", Type: field.TypeString, Nullable: true},
		{Name: "importance", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_animas_events",
				Columns:    []*schema.Column{EventsColumns[15]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_anima_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[15], EventsColumns[6]},
			},
			{
				Name:    "event_anima_id_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[15], EventsColumns[1]},
			},
			{
				Name:    "event_anima_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[15], EventsColumns[12]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
			{
				Name:    "event_anima_id_dedupe_key",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[15], EventsColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "dedupe_key IS NOT NULL",
				},
			},
		},
	}
	// IoConfigsColumns holds the columns for the "io_configs" table.
	IoConfigsColumns = []*schema.Column{
		{Name: "io_config_id", Type: field.TypeString, Unique: true},
		{Name: "read_settings", Type: field.TypeJSON, Nullable: true},
		{Name: "write_settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString, Unique: true},
	}
	// IoConfigsTable holds the schema information for the "io_configs" table.
	IoConfigsTable = &schema.Table{
		Name:       "io_configs",
		Columns:    IoConfigsColumns,
		PrimaryKey: []*schema.Column{IoConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "io_configs_animas_io_config",
				Columns:    []*schema.Column{IoConfigsColumns[5]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "identity_id", Type: field.TypeString, Unique: true},
		{Name: "personality_type", Type: field.TypeString, Nullable: true},
		{Name: "communication_style", Type: field.TypeString, Nullable: true},
		{Name: "self_reflection", Type: field.TypeJSON, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString, Unique: true},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identities_animas_identity",
				Columns:    []*schema.Column{IdentitiesColumns[7]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// KnowledgeItemsColumns holds the columns for the "knowledge_items" table.
	KnowledgeItemsColumns = []*schema.Column{
		{Name: "knowledge_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"fact", "concept", "method", "principle", "experience"}},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"internal", "external"}, Default: "internal"},
		{Name: "source_memory_id", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding_model", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString},
	}
	// KnowledgeItemsTable holds the schema information for the "knowledge_items" table.
	KnowledgeItemsTable = &schema.Table{
		Name:       "knowledge_items",
		Columns:    KnowledgeItemsColumns,
		PrimaryKey: []*schema.Column{KnowledgeItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_items_animas_knowledge",
				Columns:    []*schema.Column{KnowledgeItemsColumns[13]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledge_anima_id_type",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeItemsColumns[13], KnowledgeItemsColumns[1]},
			},
			{
				Name:    "knowledge_anima_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeItemsColumns[13], KnowledgeItemsColumns[10]},
			},
			{
				Name:    "knowledge_source_memory_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeItemsColumns[7]},
			},
		},
	}
	// KnowledgeAuditLogsColumns holds the columns for the "knowledge_audit_logs" table.
	KnowledgeAuditLogsColumns = []*schema.Column{
		{Name: "audit_log_id", Type: field.TypeString, Unique: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "restore"}},
		{Name: "source_type", Type: field.TypeString, Nullable: true},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "before_state", Type: field.TypeJSON, Nullable: true},
		{Name: "after_state", Type: field.TypeJSON, Nullable: true},
		{Name: "change_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "knowledge_id", Type: field.TypeString},
	}
	// KnowledgeAuditLogsTable holds the schema information for the "knowledge_audit_logs" table.
	KnowledgeAuditLogsTable = &schema.Table{
		Name:       "knowledge_audit_logs",
		Columns:    KnowledgeAuditLogsColumns,
		PrimaryKey: []*schema.Column{KnowledgeAuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_audit_logs_knowledge_items_audit_logs",
				Columns:    []*schema.Column{KnowledgeAuditLogsColumns[9]},
				RefColumns: []*schema.Column{KnowledgeItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeauditlog_knowledge_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeAuditLogsColumns[9], KnowledgeAuditLogsColumns[8]},
			},
		},
	}
	// MemoriesColumns holds the columns for the "memories" table.
	MemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "importance", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"active", "decaying", "archived"}, Default: "active"},
		{Name: "recency_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "decay_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "time_start", Type: field.TypeTime, Nullable: true},
		{Name: "time_end", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding_model", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString},
	}
	// MemoriesTable holds the schema information for the "memories" table.
	MemoriesTable = &schema.Table{
		Name:       "memories",
		Columns:    MemoriesColumns,
		PrimaryKey: []*schema.Column{MemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memories_animas_memories",
				Columns:    []*schema.Column{MemoriesColumns[18]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memory_anima_id_state",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[18], MemoriesColumns[5]},
			},
			{
				Name:    "memory_anima_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[18], MemoriesColumns[15]},
			},
			{
				Name:    "memory_anima_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[18], MemoriesColumns[16]},
			},
		},
	}
	// MemoryEventsColumns holds the columns for the "memory_events" table.
	MemoryEventsColumns = []*schema.Column{
		{Name: "memory_event_id", Type: field.TypeString, Unique: true},
		{Name: "link_strength", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
		{Name: "memory_id", Type: field.TypeString},
	}
	// MemoryEventsTable holds the schema information for the "memory_events" table.
	MemoryEventsTable = &schema.Table{
		Name:       "memory_events",
		Columns:    MemoryEventsColumns,
		PrimaryKey: []*schema.Column{MemoryEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_events_events_memory_links",
				Columns:    []*schema.Column{MemoryEventsColumns[3]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "memory_events_memories_event_links",
				Columns:    []*schema.Column{MemoryEventsColumns[4]},
				RefColumns: []*schema.Column{MemoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memoryevent_memory_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{MemoryEventsColumns[4], MemoryEventsColumns[3]},
			},
			{
				Name:    "memoryevent_event_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryEventsColumns[3]},
			},
		},
	}
	// MemoryPacksColumns holds the columns for the "memory_packs" table.
	MemoryPacksColumns = []*schema.Column{
		{Name: "pack_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "preset", Type: field.TypeString, Nullable: true},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "knowledge_count", Type: field.TypeInt, Default: 0},
		{Name: "long_term_count", Type: field.TypeInt, Default: 0},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "max_tokens", Type: field.TypeInt, Default: 0},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "compiled_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString},
	}
	// MemoryPacksTable holds the schema information for the "memory_packs" table.
	MemoryPacksTable = &schema.Table{
		Name:       "memory_packs",
		Columns:    MemoryPacksColumns,
		PrimaryKey: []*schema.Column{MemoryPacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_packs_animas_memory_packs",
				Columns:    []*schema.Column{MemoryPacksColumns[12]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memorypack_anima_id_compiled_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryPacksColumns[12], MemoryPacksColumns[9]},
			},
		},
	}
	// SynthesisConfigsColumns holds the columns for the "synthesis_configs" table.
	SynthesisConfigsColumns = []*schema.Column{
		{Name: "synthesis_config_id", Type: field.TypeString, Unique: true},
		{Name: "time_weight", Type: field.TypeFloat64, Default: 1},
		{Name: "event_weight", Type: field.TypeFloat64, Default: 0.5},
		{Name: "token_weight", Type: field.TypeFloat64, Default: 0.0003},
		{Name: "threshold", Type: field.TypeFloat64, Default: 10},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 2048},
		{Name: "interval_hours", Type: field.TypeInt, Default: 6},
		{Name: "last_synthesis_check_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "anima_id", Type: field.TypeString, Unique: true},
	}
	// SynthesisConfigsTable holds the schema information for the "synthesis_configs" table.
	SynthesisConfigsTable = &schema.Table{
		Name:       "synthesis_configs",
		Columns:    SynthesisConfigsColumns,
		PrimaryKey: []*schema.Column{SynthesisConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "synthesis_configs_animas_synthesis_config",
				Columns:    []*schema.Column{SynthesisConfigsColumns[11]},
				RefColumns: []*schema.Column{AnimasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "external_subject", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_external_subject",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "external_subject IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		AnimasTable,
		DreamActionsTable,
		DreamSessionsTable,
		EventsTable,
		IoConfigsTable,
		IdentitiesTable,
		KnowledgeItemsTable,
		KnowledgeAuditLogsTable,
		MemoriesTable,
		MemoryEventsTable,
		MemoryPacksTable,
		SynthesisConfigsTable,
		UsersTable,
	}
)

func init() {
	APIKeysTable.ForeignKeys[0].RefTable = UsersTable
	APIKeysTable.Annotation = &entsql.Annotation{
		Table: "api_keys",
	}
	AnimasTable.ForeignKeys[0].RefTable = UsersTable
	AnimasTable.Annotation = &entsql.Annotation{
		Table: "animas",
	}
	DreamActionsTable.ForeignKeys[0].RefTable = DreamSessionsTable
	DreamActionsTable.Annotation = &entsql.Annotation{
		Table: "dream_actions",
	}
	DreamSessionsTable.ForeignKeys[0].RefTable = AnimasTable
	DreamSessionsTable.Annotation = &entsql.Annotation{
		Table: "dream_sessions",
	}
	EventsTable.ForeignKeys[0].RefTable = AnimasTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	IoConfigsTable.ForeignKeys[0].RefTable = AnimasTable
	IoConfigsTable.Annotation = &entsql.Annotation{
		Table: "io_configs",
	}
	IdentitiesTable.ForeignKeys[0].RefTable = AnimasTable
	IdentitiesTable.Annotation = &entsql.Annotation{
		Table: "identities",
	}
	KnowledgeItemsTable.ForeignKeys[0].RefTable = AnimasTable
	KnowledgeItemsTable.Annotation = &entsql.Annotation{
		Table: "knowledge_items",
	}
	KnowledgeAuditLogsTable.ForeignKeys[0].RefTable = KnowledgeItemsTable
	KnowledgeAuditLogsTable.Annotation = &entsql.Annotation{
		Table: "knowledge_audit_logs",
	}
	MemoriesTable.ForeignKeys[0].RefTable = AnimasTable
	MemoriesTable.Annotation = &entsql.Annotation{
		Table: "memories",
	}
	MemoryEventsTable.ForeignKeys[0].RefTable = EventsTable
	MemoryEventsTable.ForeignKeys[1].RefTable = MemoriesTable
	MemoryEventsTable.Annotation = &entsql.Annotation{
		Table: "memory_events",
	}
	MemoryPacksTable.ForeignKeys[0].RefTable = AnimasTable
	MemoryPacksTable.Annotation = &entsql.Annotation{
		Table: "memory_packs",
	}
	SynthesisConfigsTable.ForeignKeys[0].RefTable = AnimasTable
	SynthesisConfigsTable.Annotation = &entsql.Annotation{
		Table: "synthesis_configs",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
