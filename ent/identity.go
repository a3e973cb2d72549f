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
)

// Identity is the model entity for the Identity schema.
type Identity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// PersonalityType holds the value of the "personality_type" field.
	PersonalityType *string `json:"personality_type,omitempty"`
	// CommunicationStyle holds the value of the "communication_style" field.
	CommunicationStyle *string `json:"communication_style,omitempty"`
	// Nested tree: being, purpose, principles, philosophy, relational, arc
	SelfReflection map[string]interface{} `json:"self_reflection,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IdentityQuery when eager-loading is set.
	Edges        IdentityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IdentityEdges holds the relations/edges for other nodes in the graph.
type IdentityEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IdentityEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Identity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case identity.FieldSelfReflection:
			values[i] = new([]byte)
		case identity.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case identity.FieldID, identity.FieldAnimaID, identity.FieldPersonalityType, identity.FieldCommunicationStyle:
			values[i] = new(sql.NullString)
		case identity.FieldCreatedAt, identity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Identity fields.
func (_m *Identity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case identity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case identity.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case identity.FieldPersonalityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personality_type", values[i])
			} else if value.Valid {
				_m.PersonalityType = new(string)
				*_m.PersonalityType = value.String
			}
		case identity.FieldCommunicationStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field communication_style", values[i])
			} else if value.Valid {
				_m.CommunicationStyle = new(string)
				*_m.CommunicationStyle = value.String
			}
		case identity.FieldSelfReflection:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field self_reflection", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SelfReflection); err != nil {
					return fmt.Errorf("unmarshal field self_reflection: %w", err)
				}
			}
		case identity.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case identity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case identity.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Identity.
// This includes values selected through modifiers, order, etc.
func (_m *Identity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the Identity entity.
func (_m *Identity) QueryAnima() *AnimaQuery {
	return NewIdentityClient(_m.config).QueryAnima(_m)
}

// Update returns a builder for updating this Identity.
// Note that you need to call Identity.Unwrap() before calling this method if this Identity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Identity) Update() *IdentityUpdateOne {
	return NewIdentityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Identity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Identity) Unwrap() *Identity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Identity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Identity) String() string {
	var builder strings.Builder
	builder.WriteString("Identity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	if v := _m.PersonalityType; v != nil {
		builder.WriteString("personality_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommunicationStyle; v != nil {
		builder.WriteString("communication_style=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("self_reflection=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelfReflection))
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

// Identities is a parsable slice of Identity.
type Identities []*Identity
