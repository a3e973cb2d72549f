// Code generated by ent, DO NOT EDIT.

package identity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldAnimaID, v))
}

// PersonalityType applies equality check predicate on the "personality_type" field. It's identical to PersonalityTypeEQ.
func PersonalityType(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPersonalityType, v))
}

// CommunicationStyle applies equality check predicate on the "communication_style" field. It's identical to CommunicationStyleEQ.
func CommunicationStyle(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldCommunicationStyle, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldAnimaID, v))
}

// PersonalityTypeEQ applies the EQ predicate on the "personality_type" field.
func PersonalityTypeEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPersonalityType, v))
}

// PersonalityTypeNEQ applies the NEQ predicate on the "personality_type" field.
func PersonalityTypeNEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldPersonalityType, v))
}

// PersonalityTypeIn applies the In predicate on the "personality_type" field.
func PersonalityTypeIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldPersonalityType, vs...))
}

// PersonalityTypeNotIn applies the NotIn predicate on the "personality_type" field.
func PersonalityTypeNotIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldPersonalityType, vs...))
}

// PersonalityTypeGT applies the GT predicate on the "personality_type" field.
func PersonalityTypeGT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldPersonalityType, v))
}

// PersonalityTypeGTE applies the GTE predicate on the "personality_type" field.
func PersonalityTypeGTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldPersonalityType, v))
}

// PersonalityTypeLT applies the LT predicate on the "personality_type" field.
func PersonalityTypeLT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldPersonalityType, v))
}

// PersonalityTypeLTE applies the LTE predicate on the "personality_type" field.
func PersonalityTypeLTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldPersonalityType, v))
}

// PersonalityTypeContains applies the Contains predicate on the "personality_type" field.
func PersonalityTypeContains(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContains(FieldPersonalityType, v))
}

// PersonalityTypeHasPrefix applies the HasPrefix predicate on the "personality_type" field.
func PersonalityTypeHasPrefix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasPrefix(FieldPersonalityType, v))
}

// PersonalityTypeHasSuffix applies the HasSuffix predicate on the "personality_type" field.
func PersonalityTypeHasSuffix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasSuffix(FieldPersonalityType, v))
}

// PersonalityTypeIsNil applies the IsNil predicate on the "personality_type" field.
func PersonalityTypeIsNil() predicate.Identity {
	return predicate.Identity(sql.FieldIsNull(FieldPersonalityType))
}

// PersonalityTypeNotNil applies the NotNil predicate on the "personality_type" field.
func PersonalityTypeNotNil() predicate.Identity {
	return predicate.Identity(sql.FieldNotNull(FieldPersonalityType))
}

// PersonalityTypeEqualFold applies the EqualFold predicate on the "personality_type" field.
func PersonalityTypeEqualFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldPersonalityType, v))
}

// PersonalityTypeContainsFold applies the ContainsFold predicate on the "personality_type" field.
func PersonalityTypeContainsFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldPersonalityType, v))
}

// CommunicationStyleEQ applies the EQ predicate on the "communication_style" field.
func CommunicationStyleEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldCommunicationStyle, v))
}

// CommunicationStyleNEQ applies the NEQ predicate on the "communication_style" field.
func CommunicationStyleNEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldCommunicationStyle, v))
}

// CommunicationStyleIn applies the In predicate on the "communication_style" field.
func CommunicationStyleIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldCommunicationStyle, vs...))
}

// CommunicationStyleNotIn applies the NotIn predicate on the "communication_style" field.
func CommunicationStyleNotIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldCommunicationStyle, vs...))
}

// CommunicationStyleGT applies the GT predicate on the "communication_style" field.
func CommunicationStyleGT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldCommunicationStyle, v))
}

// CommunicationStyleGTE applies the GTE predicate on the "communication_style" field.
func CommunicationStyleGTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldCommunicationStyle, v))
}

// CommunicationStyleLT applies the LT predicate on the "communication_style" field.
func CommunicationStyleLT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldCommunicationStyle, v))
}

// CommunicationStyleLTE applies the LTE predicate on the "communication_style" field.
func CommunicationStyleLTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldCommunicationStyle, v))
}

// CommunicationStyleContains applies the Contains predicate on the "communication_style" field.
func CommunicationStyleContains(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContains(FieldCommunicationStyle, v))
}

// CommunicationStyleHasPrefix applies the HasPrefix predicate on the "communication_style" field.
func CommunicationStyleHasPrefix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasPrefix(FieldCommunicationStyle, v))
}

// CommunicationStyleHasSuffix applies the HasSuffix predicate on the "communication_style" field.
func CommunicationStyleHasSuffix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasSuffix(FieldCommunicationStyle, v))
}

// CommunicationStyleIsNil applies the IsNil predicate on the "communication_style" field.
func CommunicationStyleIsNil() predicate.Identity {
	return predicate.Identity(sql.FieldIsNull(FieldCommunicationStyle))
}

// CommunicationStyleNotNil applies the NotNil predicate on the "communication_style" field.
func CommunicationStyleNotNil() predicate.Identity {
	return predicate.Identity(sql.FieldNotNull(FieldCommunicationStyle))
}

// CommunicationStyleEqualFold applies the EqualFold predicate on the "communication_style" field.
func CommunicationStyleEqualFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldCommunicationStyle, v))
}

// CommunicationStyleContainsFold applies the ContainsFold predicate on the "communication_style" field.
func CommunicationStyleContainsFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldCommunicationStyle, v))
}

// SelfReflectionIsNil applies the IsNil predicate on the "self_reflection" field.
func SelfReflectionIsNil() predicate.Identity {
	return predicate.Identity(sql.FieldIsNull(FieldSelfReflection))
}

// SelfReflectionNotNil applies the NotNil predicate on the "self_reflection" field.
func SelfReflectionNotNil() predicate.Identity {
	return predicate.Identity(sql.FieldNotNull(FieldSelfReflection))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.Identity {
	return predicate.Identity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.Identity {
	return predicate.Identity(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.NotPredicates(p))
}
