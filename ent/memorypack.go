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
	"github.com/hejijunhao/elephantasm/ent/memorypack"
)

// MemoryPack is the model entity for the MemoryPack schema.
type MemoryPack struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// Query holds the value of the "query" field.
	Query *string `json:"query,omitempty"`
	// Preset holds the value of the "preset" field.
	Preset *string `json:"preset,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// KnowledgeCount holds the value of the "knowledge_count" field.
	KnowledgeCount int `json:"knowledge_count,omitempty"`
	// LongTermCount holds the value of the "long_term_count" field.
	LongTermCount int `json:"long_term_count,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int `json:"token_count,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// Serialized pack payload: identity, temporal context, layers, config echo
	Content map[string]interface{} `json:"content,omitempty"`
	// CompiledAt holds the value of the "compiled_at" field.
	CompiledAt time.Time `json:"compiled_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryPackQuery when eager-loading is set.
	Edges        MemoryPackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryPackEdges holds the relations/edges for other nodes in the graph.
type MemoryPackEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryPackEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryPack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memorypack.FieldContent:
			values[i] = new([]byte)
		case memorypack.FieldSessionCount, memorypack.FieldKnowledgeCount, memorypack.FieldLongTermCount, memorypack.FieldTokenCount, memorypack.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case memorypack.FieldID, memorypack.FieldAnimaID, memorypack.FieldQuery, memorypack.FieldPreset:
			values[i] = new(sql.NullString)
		case memorypack.FieldCompiledAt, memorypack.FieldCreatedAt, memorypack.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryPack fields.
func (_m *MemoryPack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memorypack.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memorypack.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case memorypack.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = new(string)
				*_m.Query = value.String
			}
		case memorypack.FieldPreset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preset", values[i])
			} else if value.Valid {
				_m.Preset = new(string)
				*_m.Preset = value.String
			}
		case memorypack.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case memorypack.FieldKnowledgeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_count", values[i])
			} else if value.Valid {
				_m.KnowledgeCount = int(value.Int64)
			}
		case memorypack.FieldLongTermCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field long_term_count", values[i])
			} else if value.Valid {
				_m.LongTermCount = int(value.Int64)
			}
		case memorypack.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case memorypack.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case memorypack.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case memorypack.FieldCompiledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_at", values[i])
			} else if value.Valid {
				_m.CompiledAt = value.Time
			}
		case memorypack.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case memorypack.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryPack.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryPack) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the MemoryPack entity.
func (_m *MemoryPack) QueryAnima() *AnimaQuery {
	return NewMemoryPackClient(_m.config).QueryAnima(_m)
}

// Update returns a builder for updating this MemoryPack.
// Note that you need to call MemoryPack.Unwrap() before calling this method if this MemoryPack
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryPack) Update() *MemoryPackUpdateOne {
	return NewMemoryPackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryPack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryPack) Unwrap() *MemoryPack {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryPack is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryPack) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryPack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	if v := _m.Query; v != nil {
		builder.WriteString("query=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Preset; v != nil {
		builder.WriteString("preset=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("knowledge_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.KnowledgeCount))
	builder.WriteString(", ")
	builder.WriteString("long_term_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongTermCount))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("compiled_at=")
	builder.WriteString(_m.CompiledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryPacks is a parsable slice of MemoryPack.
type MemoryPacks []*MemoryPack
