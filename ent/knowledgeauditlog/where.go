// Code generated by ent, DO NOT EDIT.

package knowledgeauditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldID, id))
}

// KnowledgeID applies equality check predicate on the "knowledge_id" field. It's identical to KnowledgeIDEQ.
func KnowledgeID(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldKnowledgeID, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldSourceType, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldSourceID, v))
}

// ChangeSummary applies equality check predicate on the "change_summary" field. It's identical to ChangeSummaryEQ.
func ChangeSummary(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldChangeSummary, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldTriggeredBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// KnowledgeIDEQ applies the EQ predicate on the "knowledge_id" field.
func KnowledgeIDEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldKnowledgeID, v))
}

// KnowledgeIDNEQ applies the NEQ predicate on the "knowledge_id" field.
func KnowledgeIDNEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldKnowledgeID, v))
}

// KnowledgeIDIn applies the In predicate on the "knowledge_id" field.
func KnowledgeIDIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldKnowledgeID, vs...))
}

// KnowledgeIDNotIn applies the NotIn predicate on the "knowledge_id" field.
func KnowledgeIDNotIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldKnowledgeID, vs...))
}

// KnowledgeIDGT applies the GT predicate on the "knowledge_id" field.
func KnowledgeIDGT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldKnowledgeID, v))
}

// KnowledgeIDGTE applies the GTE predicate on the "knowledge_id" field.
func KnowledgeIDGTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldKnowledgeID, v))
}

// KnowledgeIDLT applies the LT predicate on the "knowledge_id" field.
func KnowledgeIDLT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldKnowledgeID, v))
}

// KnowledgeIDLTE applies the LTE predicate on the "knowledge_id" field.
func KnowledgeIDLTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldKnowledgeID, v))
}

// KnowledgeIDContains applies the Contains predicate on the "knowledge_id" field.
func KnowledgeIDContains(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContains(FieldKnowledgeID, v))
}

// KnowledgeIDHasPrefix applies the HasPrefix predicate on the "knowledge_id" field.
func KnowledgeIDHasPrefix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasPrefix(FieldKnowledgeID, v))
}

// KnowledgeIDHasSuffix applies the HasSuffix predicate on the "knowledge_id" field.
func KnowledgeIDHasSuffix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasSuffix(FieldKnowledgeID, v))
}

// KnowledgeIDEqualFold applies the EqualFold predicate on the "knowledge_id" field.
func KnowledgeIDEqualFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldKnowledgeID, v))
}

// KnowledgeIDContainsFold applies the ContainsFold predicate on the "knowledge_id" field.
func KnowledgeIDContainsFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldKnowledgeID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldAction, vs...))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeIsNil applies the IsNil predicate on the "source_type" field.
func SourceTypeIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldSourceType))
}

// SourceTypeNotNil applies the NotNil predicate on the "source_type" field.
func SourceTypeNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldSourceType))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldSourceType, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldSourceID))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldSourceID, v))
}

// BeforeStateIsNil applies the IsNil predicate on the "before_state" field.
func BeforeStateIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldBeforeState))
}

// BeforeStateNotNil applies the NotNil predicate on the "before_state" field.
func BeforeStateNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldBeforeState))
}

// AfterStateIsNil applies the IsNil predicate on the "after_state" field.
func AfterStateIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldAfterState))
}

// AfterStateNotNil applies the NotNil predicate on the "after_state" field.
func AfterStateNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldAfterState))
}

// ChangeSummaryEQ applies the EQ predicate on the "change_summary" field.
func ChangeSummaryEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldChangeSummary, v))
}

// ChangeSummaryNEQ applies the NEQ predicate on the "change_summary" field.
func ChangeSummaryNEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldChangeSummary, v))
}

// ChangeSummaryIn applies the In predicate on the "change_summary" field.
func ChangeSummaryIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldChangeSummary, vs...))
}

// ChangeSummaryNotIn applies the NotIn predicate on the "change_summary" field.
func ChangeSummaryNotIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldChangeSummary, vs...))
}

// ChangeSummaryGT applies the GT predicate on the "change_summary" field.
func ChangeSummaryGT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldChangeSummary, v))
}

// ChangeSummaryGTE applies the GTE predicate on the "change_summary" field.
func ChangeSummaryGTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldChangeSummary, v))
}

// ChangeSummaryLT applies the LT predicate on the "change_summary" field.
func ChangeSummaryLT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldChangeSummary, v))
}

// ChangeSummaryLTE applies the LTE predicate on the "change_summary" field.
func ChangeSummaryLTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldChangeSummary, v))
}

// ChangeSummaryContains applies the Contains predicate on the "change_summary" field.
func ChangeSummaryContains(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContains(FieldChangeSummary, v))
}

// ChangeSummaryHasPrefix applies the HasPrefix predicate on the "change_summary" field.
func ChangeSummaryHasPrefix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasPrefix(FieldChangeSummary, v))
}

// ChangeSummaryHasSuffix applies the HasSuffix predicate on the "change_summary" field.
func ChangeSummaryHasSuffix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasSuffix(FieldChangeSummary, v))
}

// ChangeSummaryIsNil applies the IsNil predicate on the "change_summary" field.
func ChangeSummaryIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldChangeSummary))
}

// ChangeSummaryNotNil applies the NotNil predicate on the "change_summary" field.
func ChangeSummaryNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldChangeSummary))
}

// ChangeSummaryEqualFold applies the EqualFold predicate on the "change_summary" field.
func ChangeSummaryEqualFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldChangeSummary, v))
}

// ChangeSummaryContainsFold applies the ContainsFold predicate on the "change_summary" field.
func ChangeSummaryContainsFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldChangeSummary, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByIsNil applies the IsNil predicate on the "triggered_by" field.
func TriggeredByIsNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIsNull(FieldTriggeredBy))
}

// TriggeredByNotNil applies the NotNil predicate on the "triggered_by" field.
func TriggeredByNotNil() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotNull(FieldTriggeredBy))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasKnowledge applies the HasEdge predicate on the "knowledge" edge.
func HasKnowledge() predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, KnowledgeTable, KnowledgeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeWith applies the HasEdge predicate on the "knowledge" edge with a given conditions (other predicates).
func HasKnowledgeWith(preds ...predicate.Knowledge) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(func(s *sql.Selector) {
		step := newKnowledgeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeAuditLog) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeAuditLog) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeAuditLog) predicate.KnowledgeAuditLog {
	return predicate.KnowledgeAuditLog(sql.NotPredicates(p))
}
