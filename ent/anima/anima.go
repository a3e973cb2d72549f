// Code generated by ent, DO NOT EDIT.

package anima

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the anima type in the database.
	Label = "anima"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "anima_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIsDormant holds the string denoting the is_dormant field in the database.
	FieldIsDormant = "is_dormant"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeMemories holds the string denoting the memories edge name in mutations.
	EdgeMemories = "memories"
	// EdgeKnowledge holds the string denoting the knowledge edge name in mutations.
	EdgeKnowledge = "knowledge"
	// EdgeIdentity holds the string denoting the identity edge name in mutations.
	EdgeIdentity = "identity"
	// EdgeSynthesisConfig holds the string denoting the synthesis_config edge name in mutations.
	EdgeSynthesisConfig = "synthesis_config"
	// EdgeIoConfig holds the string denoting the io_config edge name in mutations.
	EdgeIoConfig = "io_config"
	// EdgeMemoryPacks holds the string denoting the memory_packs edge name in mutations.
	EdgeMemoryPacks = "memory_packs"
	// EdgeDreamSessions holds the string denoting the dream_sessions edge name in mutations.
	EdgeDreamSessions = "dream_sessions"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// MemoryFieldID holds the string denoting the ID field of the Memory.
	MemoryFieldID = "memory_id"
	// KnowledgeFieldID holds the string denoting the ID field of the Knowledge.
	KnowledgeFieldID = "knowledge_id"
	// IdentityFieldID holds the string denoting the ID field of the Identity.
	IdentityFieldID = "identity_id"
	// SynthesisConfigFieldID holds the string denoting the ID field of the SynthesisConfig.
	SynthesisConfigFieldID = "synthesis_config_id"
	// IOConfigFieldID holds the string denoting the ID field of the IOConfig.
	IOConfigFieldID = "io_config_id"
	// MemoryPackFieldID holds the string denoting the ID field of the MemoryPack.
	MemoryPackFieldID = "pack_id"
	// DreamSessionFieldID holds the string denoting the ID field of the DreamSession.
	DreamSessionFieldID = "dream_session_id"
	// Table holds the table name of the anima in the database.
	Table = "animas"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "animas"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "anima_id"
	// MemoriesTable is the table that holds the memories relation/edge.
	MemoriesTable = "memories"
	// MemoriesInverseTable is the table name for the Memory entity.
	// It exists in this package in order to avoid circular dependency with the "memory" package.
	MemoriesInverseTable = "memories"
	// MemoriesColumn is the table column denoting the memories relation/edge.
	MemoriesColumn = "anima_id"
	// KnowledgeTable is the table that holds the knowledge relation/edge.
	KnowledgeTable = "knowledge_items"
	// KnowledgeInverseTable is the table name for the Knowledge entity.
	// It exists in this package in order to avoid circular dependency with the "knowledge" package.
	KnowledgeInverseTable = "knowledge_items"
	// KnowledgeColumn is the table column denoting the knowledge relation/edge.
	KnowledgeColumn = "anima_id"
	// IdentityTable is the table that holds the identity relation/edge.
	IdentityTable = "identities"
	// IdentityInverseTable is the table name for the Identity entity.
	// It exists in this package in order to avoid circular dependency with the "identity" package.
	IdentityInverseTable = "identities"
	// IdentityColumn is the table column denoting the identity relation/edge.
	IdentityColumn = "anima_id"
	// SynthesisConfigTable is the table that holds the synthesis_config relation/edge.
	SynthesisConfigTable = "synthesis_configs"
	// SynthesisConfigInverseTable is the table name for the SynthesisConfig entity.
	// It exists in this package in order to avoid circular dependency with the "synthesisconfig" package.
	SynthesisConfigInverseTable = "synthesis_configs"
	// SynthesisConfigColumn is the table column denoting the synthesis_config relation/edge.
	SynthesisConfigColumn = "anima_id"
	// IoConfigTable is the table that holds the io_config relation/edge.
	IoConfigTable = "io_configs"
	// IoConfigInverseTable is the table name for the IOConfig entity.
	// It exists in this package in order to avoid circular dependency with the "ioconfig" package.
	IoConfigInverseTable = "io_configs"
	// IoConfigColumn is the table column denoting the io_config relation/edge.
	IoConfigColumn = "anima_id"
	// MemoryPacksTable is the table that holds the memory_packs relation/edge.
	MemoryPacksTable = "memory_packs"
	// MemoryPacksInverseTable is the table name for the MemoryPack entity.
	// It exists in this package in order to avoid circular dependency with the "memorypack" package.
	MemoryPacksInverseTable = "memory_packs"
	// MemoryPacksColumn is the table column denoting the memory_packs relation/edge.
	MemoryPacksColumn = "anima_id"
	// DreamSessionsTable is the table that holds the dream_sessions relation/edge.
	DreamSessionsTable = "dream_sessions"
	// DreamSessionsInverseTable is the table name for the DreamSession entity.
	// It exists in this package in order to avoid circular dependency with the "dreamsession" package.
	DreamSessionsInverseTable = "dream_sessions"
	// DreamSessionsColumn is the table column denoting the dream_sessions relation/edge.
	DreamSessionsColumn = "anima_id"
)

// Columns holds all SQL columns for anima fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldOrganizationID,
	FieldName,
	FieldDescription,
	FieldMetadata,
	FieldIsDormant,
	FieldLastActivityAt,
	FieldIsDeleted,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsDormant holds the default value on creation for the "is_dormant" field.
	DefaultIsDormant bool
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Anima queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIsDormant orders the results by the is_dormant field.
func ByIsDormant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDormant, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMemoriesCount orders the results by memories count.
func ByMemoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMemoriesStep(), opts...)
	}
}

// ByMemories orders the results by memories terms.
func ByMemories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeCount orders the results by knowledge count.
func ByKnowledgeCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeStep(), opts...)
	}
}

// ByKnowledge orders the results by knowledge terms.
func ByKnowledge(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIdentityField orders the results by identity field.
func ByIdentityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIdentityStep(), sql.OrderByField(field, opts...))
	}
}

// BySynthesisConfigField orders the results by synthesis_config field.
func BySynthesisConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSynthesisConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByIoConfigField orders the results by io_config field.
func ByIoConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIoConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByMemoryPacksCount orders the results by memory_packs count.
func ByMemoryPacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMemoryPacksStep(), opts...)
	}
}

// ByMemoryPacks orders the results by memory_packs terms.
func ByMemoryPacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryPacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDreamSessionsCount orders the results by dream_sessions count.
func ByDreamSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDreamSessionsStep(), opts...)
	}
}

// ByDreamSessions orders the results by dream_sessions terms.
func ByDreamSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDreamSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newMemoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoriesInverseTable, MemoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
	)
}
func newKnowledgeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeInverseTable, KnowledgeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeTable, KnowledgeColumn),
	)
}
func newIdentityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IdentityInverseTable, IdentityFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, IdentityTable, IdentityColumn),
	)
}
func newSynthesisConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SynthesisConfigInverseTable, SynthesisConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SynthesisConfigTable, SynthesisConfigColumn),
	)
}
func newIoConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IoConfigInverseTable, IOConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, IoConfigTable, IoConfigColumn),
	)
}
func newMemoryPacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryPacksInverseTable, MemoryPackFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MemoryPacksTable, MemoryPacksColumn),
	)
}
func newDreamSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DreamSessionsInverseTable, DreamSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DreamSessionsTable, DreamSessionsColumn),
	)
}
