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
	"github.com/hejijunhao/elephantasm/ent/knowledge"
)

// Knowledge is the model entity for the Knowledge schema.
type Knowledge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// Type holds the value of the "type" field.
	Type knowledge.Type `json:"type,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic *string `json:"topic,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType knowledge.SourceType `json:"source_type,omitempty"`
	// Originating memory, used by the dedup policy
	SourceMemoryID *string `json:"source_memory_id,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// EmbeddingModel holds the value of the "embedding_model" field.
	EmbeddingModel *string `json:"embedding_model,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeQuery when eager-loading is set.
	Edges        KnowledgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeEdges holds the relations/edges for other nodes in the graph.
type KnowledgeEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*KnowledgeAuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeEdges) AuditLogsOrErr() ([]*KnowledgeAuditLog, error) {
	if e.loadedTypes[1] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Knowledge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledge.FieldEmbedding:
			values[i] = new([]byte)
		case knowledge.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case knowledge.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case knowledge.FieldID, knowledge.FieldAnimaID, knowledge.FieldType, knowledge.FieldTopic, knowledge.FieldContent, knowledge.FieldSummary, knowledge.FieldSourceType, knowledge.FieldSourceMemoryID, knowledge.FieldEmbeddingModel:
			values[i] = new(sql.NullString)
		case knowledge.FieldCreatedAt, knowledge.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Knowledge fields.
func (_m *Knowledge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledge.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case knowledge.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = knowledge.Type(value.String)
			}
		case knowledge.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = new(string)
				*_m.Topic = value.String
			}
		case knowledge.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case knowledge.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case knowledge.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case knowledge.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = knowledge.SourceType(value.String)
			}
		case knowledge.FieldSourceMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_memory_id", values[i])
			} else if value.Valid {
				_m.SourceMemoryID = new(string)
				*_m.SourceMemoryID = value.String
			}
		case knowledge.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case knowledge.FieldEmbeddingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_model", values[i])
			} else if value.Valid {
				_m.EmbeddingModel = new(string)
				*_m.EmbeddingModel = value.String
			}
		case knowledge.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case knowledge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case knowledge.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Knowledge.
// This includes values selected through modifiers, order, etc.
func (_m *Knowledge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the Knowledge entity.
func (_m *Knowledge) QueryAnima() *AnimaQuery {
	return NewKnowledgeClient(_m.config).QueryAnima(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the Knowledge entity.
func (_m *Knowledge) QueryAuditLogs() *KnowledgeAuditLogQuery {
	return NewKnowledgeClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this Knowledge.
// Note that you need to call Knowledge.Unwrap() before calling this method if this Knowledge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Knowledge) Update() *KnowledgeUpdateOne {
	return NewKnowledgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Knowledge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Knowledge) Unwrap() *Knowledge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Knowledge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Knowledge) String() string {
	var builder strings.Builder
	builder.WriteString("Knowledge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.Topic; v != nil {
		builder.WriteString("topic=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	if v := _m.SourceMemoryID; v != nil {
		builder.WriteString("source_memory_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	if v := _m.EmbeddingModel; v != nil {
		builder.WriteString("embedding_model=")
		builder.WriteString(*v)
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

// Knowledges is a parsable slice of Knowledge.
type Knowledges []*Knowledge
