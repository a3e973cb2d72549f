// Code generated by ent, DO NOT EDIT.

package dreamsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldAnimaID, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldTriggeredBy, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldErrorMessage, v))
}

// MemoriesReviewed applies equality check predicate on the "memories_reviewed" field. It's identical to MemoriesReviewedEQ.
func MemoriesReviewed(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesReviewed, v))
}

// MemoriesModified applies equality check predicate on the "memories_modified" field. It's identical to MemoriesModifiedEQ.
func MemoriesModified(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesModified, v))
}

// MemoriesCreated applies equality check predicate on the "memories_created" field. It's identical to MemoriesCreatedEQ.
func MemoriesCreated(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesCreated, v))
}

// MemoriesArchived applies equality check predicate on the "memories_archived" field. It's identical to MemoriesArchivedEQ.
func MemoriesArchived(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesArchived, v))
}

// MemoriesDeleted applies equality check predicate on the "memories_deleted" field. It's identical to MemoriesDeletedEQ.
func MemoriesDeleted(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesDeleted, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContainsFold(FieldAnimaID, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByIsNil applies the IsNil predicate on the "triggered_by" field.
func TriggeredByIsNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIsNull(FieldTriggeredBy))
}

// TriggeredByNotNil applies the NotNil predicate on the "triggered_by" field.
func TriggeredByNotNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotNull(FieldTriggeredBy))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotNull(FieldCompletedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MemoriesReviewedEQ applies the EQ predicate on the "memories_reviewed" field.
func MemoriesReviewedEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesReviewed, v))
}

// MemoriesReviewedNEQ applies the NEQ predicate on the "memories_reviewed" field.
func MemoriesReviewedNEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldMemoriesReviewed, v))
}

// MemoriesReviewedIn applies the In predicate on the "memories_reviewed" field.
func MemoriesReviewedIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldMemoriesReviewed, vs...))
}

// MemoriesReviewedNotIn applies the NotIn predicate on the "memories_reviewed" field.
func MemoriesReviewedNotIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldMemoriesReviewed, vs...))
}

// MemoriesReviewedGT applies the GT predicate on the "memories_reviewed" field.
func MemoriesReviewedGT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldMemoriesReviewed, v))
}

// MemoriesReviewedGTE applies the GTE predicate on the "memories_reviewed" field.
func MemoriesReviewedGTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldMemoriesReviewed, v))
}

// MemoriesReviewedLT applies the LT predicate on the "memories_reviewed" field.
func MemoriesReviewedLT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldMemoriesReviewed, v))
}

// MemoriesReviewedLTE applies the LTE predicate on the "memories_reviewed" field.
func MemoriesReviewedLTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldMemoriesReviewed, v))
}

// MemoriesModifiedEQ applies the EQ predicate on the "memories_modified" field.
func MemoriesModifiedEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesModified, v))
}

// MemoriesModifiedNEQ applies the NEQ predicate on the "memories_modified" field.
func MemoriesModifiedNEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldMemoriesModified, v))
}

// MemoriesModifiedIn applies the In predicate on the "memories_modified" field.
func MemoriesModifiedIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldMemoriesModified, vs...))
}

// MemoriesModifiedNotIn applies the NotIn predicate on the "memories_modified" field.
func MemoriesModifiedNotIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldMemoriesModified, vs...))
}

// MemoriesModifiedGT applies the GT predicate on the "memories_modified" field.
func MemoriesModifiedGT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldMemoriesModified, v))
}

// MemoriesModifiedGTE applies the GTE predicate on the "memories_modified" field.
func MemoriesModifiedGTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldMemoriesModified, v))
}

// MemoriesModifiedLT applies the LT predicate on the "memories_modified" field.
func MemoriesModifiedLT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldMemoriesModified, v))
}

// MemoriesModifiedLTE applies the LTE predicate on the "memories_modified" field.
func MemoriesModifiedLTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldMemoriesModified, v))
}

// MemoriesCreatedEQ applies the EQ predicate on the "memories_created" field.
func MemoriesCreatedEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesCreated, v))
}

// MemoriesCreatedNEQ applies the NEQ predicate on the "memories_created" field.
func MemoriesCreatedNEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldMemoriesCreated, v))
}

// MemoriesCreatedIn applies the In predicate on the "memories_created" field.
func MemoriesCreatedIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldMemoriesCreated, vs...))
}

// MemoriesCreatedNotIn applies the NotIn predicate on the "memories_created" field.
func MemoriesCreatedNotIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldMemoriesCreated, vs...))
}

// MemoriesCreatedGT applies the GT predicate on the "memories_created" field.
func MemoriesCreatedGT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldMemoriesCreated, v))
}

// MemoriesCreatedGTE applies the GTE predicate on the "memories_created" field.
func MemoriesCreatedGTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldMemoriesCreated, v))
}

// MemoriesCreatedLT applies the LT predicate on the "memories_created" field.
func MemoriesCreatedLT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldMemoriesCreated, v))
}

// MemoriesCreatedLTE applies the LTE predicate on the "memories_created" field.
func MemoriesCreatedLTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldMemoriesCreated, v))
}

// MemoriesArchivedEQ applies the EQ predicate on the "memories_archived" field.
func MemoriesArchivedEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesArchived, v))
}

// MemoriesArchivedNEQ applies the NEQ predicate on the "memories_archived" field.
func MemoriesArchivedNEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldMemoriesArchived, v))
}

// MemoriesArchivedIn applies the In predicate on the "memories_archived" field.
func MemoriesArchivedIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldMemoriesArchived, vs...))
}

// MemoriesArchivedNotIn applies the NotIn predicate on the "memories_archived" field.
func MemoriesArchivedNotIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldMemoriesArchived, vs...))
}

// MemoriesArchivedGT applies the GT predicate on the "memories_archived" field.
func MemoriesArchivedGT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldMemoriesArchived, v))
}

// MemoriesArchivedGTE applies the GTE predicate on the "memories_archived" field.
func MemoriesArchivedGTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldMemoriesArchived, v))
}

// MemoriesArchivedLT applies the LT predicate on the "memories_archived" field.
func MemoriesArchivedLT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldMemoriesArchived, v))
}

// MemoriesArchivedLTE applies the LTE predicate on the "memories_archived" field.
func MemoriesArchivedLTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldMemoriesArchived, v))
}

// MemoriesDeletedEQ applies the EQ predicate on the "memories_deleted" field.
func MemoriesDeletedEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldMemoriesDeleted, v))
}

// MemoriesDeletedNEQ applies the NEQ predicate on the "memories_deleted" field.
func MemoriesDeletedNEQ(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldMemoriesDeleted, v))
}

// MemoriesDeletedIn applies the In predicate on the "memories_deleted" field.
func MemoriesDeletedIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldMemoriesDeleted, vs...))
}

// MemoriesDeletedNotIn applies the NotIn predicate on the "memories_deleted" field.
func MemoriesDeletedNotIn(vs ...int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldMemoriesDeleted, vs...))
}

// MemoriesDeletedGT applies the GT predicate on the "memories_deleted" field.
func MemoriesDeletedGT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldMemoriesDeleted, v))
}

// MemoriesDeletedGTE applies the GTE predicate on the "memories_deleted" field.
func MemoriesDeletedGTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldMemoriesDeleted, v))
}

// MemoriesDeletedLT applies the LT predicate on the "memories_deleted" field.
func MemoriesDeletedLT(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldMemoriesDeleted, v))
}

// MemoriesDeletedLTE applies the LTE predicate on the "memories_deleted" field.
func MemoriesDeletedLTE(v int) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldMemoriesDeleted, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldContainsFold(FieldSummary, v))
}

// ConfigSnapshotIsNil applies the IsNil predicate on the "config_snapshot" field.
func ConfigSnapshotIsNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIsNull(FieldConfigSnapshot))
}

// ConfigSnapshotNotNil applies the NotNil predicate on the "config_snapshot" field.
func ConfigSnapshotNotNil() predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotNull(FieldConfigSnapshot))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DreamSession {
	return predicate.DreamSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.DreamSession {
	return predicate.DreamSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.DreamSession {
	return predicate.DreamSession(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActions applies the HasEdge predicate on the "actions" edge.
func HasActions() predicate.DreamSession {
	return predicate.DreamSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActionsTable, ActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActionsWith applies the HasEdge predicate on the "actions" edge with a given conditions (other predicates).
func HasActionsWith(preds ...predicate.DreamAction) predicate.DreamSession {
	return predicate.DreamSession(func(s *sql.Selector) {
		step := newActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DreamSession) predicate.DreamSession {
	return predicate.DreamSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DreamSession) predicate.DreamSession {
	return predicate.DreamSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DreamSession) predicate.DreamSession {
	return predicate.DreamSession(sql.NotPredicates(p))
}
