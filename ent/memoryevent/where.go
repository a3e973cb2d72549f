// Code generated by ent, DO NOT EDIT.

package memoryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldID, id))
}

// MemoryID applies equality check predicate on the "memory_id" field. It's identical to MemoryIDEQ.
func MemoryID(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldMemoryID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldEventID, v))
}

// LinkStrength applies equality check predicate on the "link_strength" field. It's identical to LinkStrengthEQ.
func LinkStrength(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldLinkStrength, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// MemoryIDEQ applies the EQ predicate on the "memory_id" field.
func MemoryIDEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldMemoryID, v))
}

// MemoryIDNEQ applies the NEQ predicate on the "memory_id" field.
func MemoryIDNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldMemoryID, v))
}

// MemoryIDIn applies the In predicate on the "memory_id" field.
func MemoryIDIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldMemoryID, vs...))
}

// MemoryIDNotIn applies the NotIn predicate on the "memory_id" field.
func MemoryIDNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldMemoryID, vs...))
}

// MemoryIDGT applies the GT predicate on the "memory_id" field.
func MemoryIDGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldMemoryID, v))
}

// MemoryIDGTE applies the GTE predicate on the "memory_id" field.
func MemoryIDGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldMemoryID, v))
}

// MemoryIDLT applies the LT predicate on the "memory_id" field.
func MemoryIDLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldMemoryID, v))
}

// MemoryIDLTE applies the LTE predicate on the "memory_id" field.
func MemoryIDLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldMemoryID, v))
}

// MemoryIDContains applies the Contains predicate on the "memory_id" field.
func MemoryIDContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldMemoryID, v))
}

// MemoryIDHasPrefix applies the HasPrefix predicate on the "memory_id" field.
func MemoryIDHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldMemoryID, v))
}

// MemoryIDHasSuffix applies the HasSuffix predicate on the "memory_id" field.
func MemoryIDHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldMemoryID, v))
}

// MemoryIDEqualFold applies the EqualFold predicate on the "memory_id" field.
func MemoryIDEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldMemoryID, v))
}

// MemoryIDContainsFold applies the ContainsFold predicate on the "memory_id" field.
func MemoryIDContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldMemoryID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldEventID, v))
}

// LinkStrengthEQ applies the EQ predicate on the "link_strength" field.
func LinkStrengthEQ(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldLinkStrength, v))
}

// LinkStrengthNEQ applies the NEQ predicate on the "link_strength" field.
func LinkStrengthNEQ(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldLinkStrength, v))
}

// LinkStrengthIn applies the In predicate on the "link_strength" field.
func LinkStrengthIn(vs ...float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldLinkStrength, vs...))
}

// LinkStrengthNotIn applies the NotIn predicate on the "link_strength" field.
func LinkStrengthNotIn(vs ...float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldLinkStrength, vs...))
}

// LinkStrengthGT applies the GT predicate on the "link_strength" field.
func LinkStrengthGT(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldLinkStrength, v))
}

// LinkStrengthGTE applies the GTE predicate on the "link_strength" field.
func LinkStrengthGTE(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldLinkStrength, v))
}

// LinkStrengthLT applies the LT predicate on the "link_strength" field.
func LinkStrengthLT(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldLinkStrength, v))
}

// LinkStrengthLTE applies the LTE predicate on the "link_strength" field.
func LinkStrengthLTE(v float64) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldLinkStrength, v))
}

// LinkStrengthIsNil applies the IsNil predicate on the "link_strength" field.
func LinkStrengthIsNil() predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIsNull(FieldLinkStrength))
}

// LinkStrengthNotNil applies the NotNil predicate on the "link_strength" field.
func LinkStrengthNotNil() predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotNull(FieldLinkStrength))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMemory applies the HasEdge predicate on the "memory" edge.
func HasMemory() predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoryWith applies the HasEdge predicate on the "memory" edge with a given conditions (other predicates).
func HasMemoryWith(preds ...predicate.Memory) predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := newMemoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.NotPredicates(p))
}
