// Code generated by ent, DO NOT EDIT.

package ioconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldAnimaID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldContainsFold(FieldAnimaID, v))
}

// ReadSettingsIsNil applies the IsNil predicate on the "read_settings" field.
func ReadSettingsIsNil() predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIsNull(FieldReadSettings))
}

// ReadSettingsNotNil applies the NotNil predicate on the "read_settings" field.
func ReadSettingsNotNil() predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotNull(FieldReadSettings))
}

// WriteSettingsIsNil applies the IsNil predicate on the "write_settings" field.
func WriteSettingsIsNil() predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIsNull(FieldWriteSettings))
}

// WriteSettingsNotNil applies the NotNil predicate on the "write_settings" field.
func WriteSettingsNotNil() predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotNull(FieldWriteSettings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IOConfig {
	return predicate.IOConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.IOConfig {
	return predicate.IOConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.IOConfig {
	return predicate.IOConfig(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IOConfig) predicate.IOConfig {
	return predicate.IOConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IOConfig) predicate.IOConfig {
	return predicate.IOConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IOConfig) predicate.IOConfig {
	return predicate.IOConfig(sql.NotPredicates(p))
}
