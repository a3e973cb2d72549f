// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// Anima is the model entity for the Anima schema.
type Anima struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// IsDormant holds the value of the "is_dormant" field.
	IsDormant bool `json:"is_dormant,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnimaQuery when eager-loading is set.
	Edges        AnimaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnimaEdges holds the relations/edges for other nodes in the graph.
type AnimaEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Memories holds the value of the memories edge.
	Memories []*Memory `json:"memories,omitempty"`
	// Knowledge holds the value of the knowledge edge.
	Knowledge []*Knowledge `json:"knowledge,omitempty"`
	// Identity holds the value of the identity edge.
	Identity *Identity `json:"identity,omitempty"`
	// SynthesisConfig holds the value of the synthesis_config edge.
	SynthesisConfig *SynthesisConfig `json:"synthesis_config,omitempty"`
	// IoConfig holds the value of the io_config edge.
	IoConfig *IOConfig `json:"io_config,omitempty"`
	// MemoryPacks holds the value of the memory_packs edge.
	MemoryPacks []*MemoryPack `json:"memory_packs,omitempty"`
	// DreamSessions holds the value of the dream_sessions edge.
	DreamSessions []*DreamSession `json:"dream_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnimaEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AnimaEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// MemoriesOrErr returns the Memories value or an error if the edge
// was not loaded in eager-loading.
func (e AnimaEdges) MemoriesOrErr() ([]*Memory, error) {
	if e.loadedTypes[2] {
		return e.Memories, nil
	}
	return nil, &NotLoadedError{edge: "memories"}
}

// KnowledgeOrErr returns the Knowledge value or an error if the edge
// was not loaded in eager-loading.
func (e AnimaEdges) KnowledgeOrErr() ([]*Knowledge, error) {
	if e.loadedTypes[3] {
		return e.Knowledge, nil
	}
	return nil, &NotLoadedError{edge: "knowledge"}
}

// IdentityOrErr returns the Identity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnimaEdges) IdentityOrErr() (*Identity, error) {
	if e.Identity != nil {
		return e.Identity, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: identity.Label}
	}
	return nil, &NotLoadedError{edge: "identity"}
}

// SynthesisConfigOrErr returns the SynthesisConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnimaEdges) SynthesisConfigOrErr() (*SynthesisConfig, error) {
	if e.SynthesisConfig != nil {
		return e.SynthesisConfig, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: synthesisconfig.Label}
	}
	return nil, &NotLoadedError{edge: "synthesis_config"}
}

// IoConfigOrErr returns the IoConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnimaEdges) IoConfigOrErr() (*IOConfig, error) {
	if e.IoConfig != nil {
		return e.IoConfig, nil
	} else if e.loadedTypes[6] {
		return nil, &NotFoundError{label: ioconfig.Label}
	}
	return nil, &NotLoadedError{edge: "io_config"}
}

// MemoryPacksOrErr returns the MemoryPacks value or an error if the edge
// was not loaded in eager-loading.
func (e AnimaEdges) MemoryPacksOrErr() ([]*MemoryPack, error) {
	if e.loadedTypes[7] {
		return e.MemoryPacks, nil
	}
	return nil, &NotLoadedError{edge: "memory_packs"}
}

// DreamSessionsOrErr returns the DreamSessions value or an error if the edge
// was not loaded in eager-loading.
func (e AnimaEdges) DreamSessionsOrErr() ([]*DreamSession, error) {
	if e.loadedTypes[8] {
		return e.DreamSessions, nil
	}
	return nil, &NotLoadedError{edge: "dream_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Anima) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anima.FieldMetadata:
			values[i] = new([]byte)
		case anima.FieldIsDormant, anima.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case anima.FieldID, anima.FieldUserID, anima.FieldOrganizationID, anima.FieldName, anima.FieldDescription:
			values[i] = new(sql.NullString)
		case anima.FieldLastActivityAt, anima.FieldCreatedAt, anima.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Anima fields.
func (_m *Anima) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anima.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case anima.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case anima.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case anima.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case anima.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case anima.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case anima.FieldIsDormant:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_dormant", values[i])
			} else if value.Valid {
				_m.IsDormant = value.Bool
			}
		case anima.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = new(time.Time)
				*_m.LastActivityAt = value.Time
			}
		case anima.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case anima.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case anima.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Anima.
// This includes values selected through modifiers, order, etc.
func (_m *Anima) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Anima entity.
func (_m *Anima) QueryUser() *UserQuery {
	return NewAnimaClient(_m.config).QueryUser(_m)
}

// QueryEvents queries the "events" edge of the Anima entity.
func (_m *Anima) QueryEvents() *EventQuery {
	return NewAnimaClient(_m.config).QueryEvents(_m)
}

// QueryMemories queries the "memories" edge of the Anima entity.
func (_m *Anima) QueryMemories() *MemoryQuery {
	return NewAnimaClient(_m.config).QueryMemories(_m)
}

// QueryKnowledge queries the "knowledge" edge of the Anima entity.
func (_m *Anima) QueryKnowledge() *KnowledgeQuery {
	return NewAnimaClient(_m.config).QueryKnowledge(_m)
}

// QueryIdentity queries the "identity" edge of the Anima entity.
func (_m *Anima) QueryIdentity() *IdentityQuery {
	return NewAnimaClient(_m.config).QueryIdentity(_m)
}

// QuerySynthesisConfig queries the "synthesis_config" edge of the Anima entity.
func (_m *Anima) QuerySynthesisConfig() *SynthesisConfigQuery {
	return NewAnimaClient(_m.config).QuerySynthesisConfig(_m)
}

// QueryIoConfig queries the "io_config" edge of the Anima entity.
func (_m *Anima) QueryIoConfig() *IOConfigQuery {
	return NewAnimaClient(_m.config).QueryIoConfig(_m)
}

// QueryMemoryPacks queries the "memory_packs" edge of the Anima entity.
func (_m *Anima) QueryMemoryPacks() *MemoryPackQuery {
	return NewAnimaClient(_m.config).QueryMemoryPacks(_m)
}

// QueryDreamSessions queries the "dream_sessions" edge of the Anima entity.
func (_m *Anima) QueryDreamSessions() *DreamSessionQuery {
	return NewAnimaClient(_m.config).QueryDreamSessions(_m)
}

// Update returns a builder for updating this Anima.
// Note that you need to call Anima.Unwrap() before calling this method if this Anima
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Anima) Update() *AnimaUpdateOne {
	return NewAnimaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Anima entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Anima) Unwrap() *Anima {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Anima is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Anima) String() string {
	var builder strings.Builder
	builder.WriteString("Anima(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("is_dormant=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDormant))
	builder.WriteString(", ")
	if v := _m.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Animas is a parsable slice of Anima.
type Animas []*Anima
