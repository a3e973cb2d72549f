// Code generated by ent, DO NOT EDIT.

package memory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Memory {
	return predicate.Memory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Memory {
	return predicate.Memory(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldAnimaID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldSummary, v))
}

// Importance applies equality check predicate on the "importance" field. It's identical to ImportanceEQ.
func Importance(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldImportance, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldConfidence, v))
}

// RecencyScore applies equality check predicate on the "recency_score" field. It's identical to RecencyScoreEQ.
func RecencyScore(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldRecencyScore, v))
}

// DecayScore applies equality check predicate on the "decay_score" field. It's identical to DecayScoreEQ.
func DecayScore(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldDecayScore, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldAccessCount, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldLastAccessedAt, v))
}

// TimeStart applies equality check predicate on the "time_start" field. It's identical to TimeStartEQ.
func TimeStart(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldTimeStart, v))
}

// TimeEnd applies equality check predicate on the "time_end" field. It's identical to TimeEndEQ.
func TimeEnd(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldTimeEnd, v))
}

// EmbeddingModel applies equality check predicate on the "embedding_model" field. It's identical to EmbeddingModelEQ.
func EmbeddingModel(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldEmbeddingModel, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContainsFold(FieldAnimaID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContainsFold(FieldContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContainsFold(FieldSummary, v))
}

// ImportanceEQ applies the EQ predicate on the "importance" field.
func ImportanceEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldImportance, v))
}

// ImportanceNEQ applies the NEQ predicate on the "importance" field.
func ImportanceNEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldImportance, v))
}

// ImportanceIn applies the In predicate on the "importance" field.
func ImportanceIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldImportance, vs...))
}

// ImportanceNotIn applies the NotIn predicate on the "importance" field.
func ImportanceNotIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldImportance, vs...))
}

// ImportanceGT applies the GT predicate on the "importance" field.
func ImportanceGT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldImportance, v))
}

// ImportanceGTE applies the GTE predicate on the "importance" field.
func ImportanceGTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldImportance, v))
}

// ImportanceLT applies the LT predicate on the "importance" field.
func ImportanceLT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldImportance, v))
}

// ImportanceLTE applies the LTE predicate on the "importance" field.
func ImportanceLTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldImportance, v))
}

// ImportanceIsNil applies the IsNil predicate on the "importance" field.
func ImportanceIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldImportance))
}

// ImportanceNotNil applies the NotNil predicate on the "importance" field.
func ImportanceNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldImportance))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldConfidence))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldState, vs...))
}

// RecencyScoreEQ applies the EQ predicate on the "recency_score" field.
func RecencyScoreEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldRecencyScore, v))
}

// RecencyScoreNEQ applies the NEQ predicate on the "recency_score" field.
func RecencyScoreNEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldRecencyScore, v))
}

// RecencyScoreIn applies the In predicate on the "recency_score" field.
func RecencyScoreIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldRecencyScore, vs...))
}

// RecencyScoreNotIn applies the NotIn predicate on the "recency_score" field.
func RecencyScoreNotIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldRecencyScore, vs...))
}

// RecencyScoreGT applies the GT predicate on the "recency_score" field.
func RecencyScoreGT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldRecencyScore, v))
}

// RecencyScoreGTE applies the GTE predicate on the "recency_score" field.
func RecencyScoreGTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldRecencyScore, v))
}

// RecencyScoreLT applies the LT predicate on the "recency_score" field.
func RecencyScoreLT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldRecencyScore, v))
}

// RecencyScoreLTE applies the LTE predicate on the "recency_score" field.
func RecencyScoreLTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldRecencyScore, v))
}

// RecencyScoreIsNil applies the IsNil predicate on the "recency_score" field.
func RecencyScoreIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldRecencyScore))
}

// RecencyScoreNotNil applies the NotNil predicate on the "recency_score" field.
func RecencyScoreNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldRecencyScore))
}

// DecayScoreEQ applies the EQ predicate on the "decay_score" field.
func DecayScoreEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldDecayScore, v))
}

// DecayScoreNEQ applies the NEQ predicate on the "decay_score" field.
func DecayScoreNEQ(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldDecayScore, v))
}

// DecayScoreIn applies the In predicate on the "decay_score" field.
func DecayScoreIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldDecayScore, vs...))
}

// DecayScoreNotIn applies the NotIn predicate on the "decay_score" field.
func DecayScoreNotIn(vs ...float64) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldDecayScore, vs...))
}

// DecayScoreGT applies the GT predicate on the "decay_score" field.
func DecayScoreGT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldDecayScore, v))
}

// DecayScoreGTE applies the GTE predicate on the "decay_score" field.
func DecayScoreGTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldDecayScore, v))
}

// DecayScoreLT applies the LT predicate on the "decay_score" field.
func DecayScoreLT(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldDecayScore, v))
}

// DecayScoreLTE applies the LTE predicate on the "decay_score" field.
func DecayScoreLTE(v float64) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldDecayScore, v))
}

// DecayScoreIsNil applies the IsNil predicate on the "decay_score" field.
func DecayScoreIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldDecayScore))
}

// DecayScoreNotNil applies the NotNil predicate on the "decay_score" field.
func DecayScoreNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldDecayScore))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldAccessCount, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldLastAccessedAt, v))
}

// LastAccessedAtIsNil applies the IsNil predicate on the "last_accessed_at" field.
func LastAccessedAtIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldLastAccessedAt))
}

// LastAccessedAtNotNil applies the NotNil predicate on the "last_accessed_at" field.
func LastAccessedAtNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldLastAccessedAt))
}

// TimeStartEQ applies the EQ predicate on the "time_start" field.
func TimeStartEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldTimeStart, v))
}

// TimeStartNEQ applies the NEQ predicate on the "time_start" field.
func TimeStartNEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldTimeStart, v))
}

// TimeStartIn applies the In predicate on the "time_start" field.
func TimeStartIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldTimeStart, vs...))
}

// TimeStartNotIn applies the NotIn predicate on the "time_start" field.
func TimeStartNotIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldTimeStart, vs...))
}

// TimeStartGT applies the GT predicate on the "time_start" field.
func TimeStartGT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldTimeStart, v))
}

// TimeStartGTE applies the GTE predicate on the "time_start" field.
func TimeStartGTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldTimeStart, v))
}

// TimeStartLT applies the LT predicate on the "time_start" field.
func TimeStartLT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldTimeStart, v))
}

// TimeStartLTE applies the LTE predicate on the "time_start" field.
func TimeStartLTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldTimeStart, v))
}

// TimeStartIsNil applies the IsNil predicate on the "time_start" field.
func TimeStartIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldTimeStart))
}

// TimeStartNotNil applies the NotNil predicate on the "time_start" field.
func TimeStartNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldTimeStart))
}

// TimeEndEQ applies the EQ predicate on the "time_end" field.
func TimeEndEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldTimeEnd, v))
}

// TimeEndNEQ applies the NEQ predicate on the "time_end" field.
func TimeEndNEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldTimeEnd, v))
}

// TimeEndIn applies the In predicate on the "time_end" field.
func TimeEndIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldTimeEnd, vs...))
}

// TimeEndNotIn applies the NotIn predicate on the "time_end" field.
func TimeEndNotIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldTimeEnd, vs...))
}

// TimeEndGT applies the GT predicate on the "time_end" field.
func TimeEndGT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldTimeEnd, v))
}

// TimeEndGTE applies the GTE predicate on the "time_end" field.
func TimeEndGTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldTimeEnd, v))
}

// TimeEndLT applies the LT predicate on the "time_end" field.
func TimeEndLT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldTimeEnd, v))
}

// TimeEndLTE applies the LTE predicate on the "time_end" field.
func TimeEndLTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldTimeEnd, v))
}

// TimeEndIsNil applies the IsNil predicate on the "time_end" field.
func TimeEndIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldTimeEnd))
}

// TimeEndNotNil applies the NotNil predicate on the "time_end" field.
func TimeEndNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldTimeEnd))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldMetadata))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldEmbedding))
}

// EmbeddingModelEQ applies the EQ predicate on the "embedding_model" field.
func EmbeddingModelEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelNEQ applies the NEQ predicate on the "embedding_model" field.
func EmbeddingModelNEQ(v string) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelIn applies the In predicate on the "embedding_model" field.
func EmbeddingModelIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelNotIn applies the NotIn predicate on the "embedding_model" field.
func EmbeddingModelNotIn(vs ...string) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelGT applies the GT predicate on the "embedding_model" field.
func EmbeddingModelGT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldEmbeddingModel, v))
}

// EmbeddingModelGTE applies the GTE predicate on the "embedding_model" field.
func EmbeddingModelGTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldEmbeddingModel, v))
}

// EmbeddingModelLT applies the LT predicate on the "embedding_model" field.
func EmbeddingModelLT(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldEmbeddingModel, v))
}

// EmbeddingModelLTE applies the LTE predicate on the "embedding_model" field.
func EmbeddingModelLTE(v string) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldEmbeddingModel, v))
}

// EmbeddingModelContains applies the Contains predicate on the "embedding_model" field.
func EmbeddingModelContains(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContains(FieldEmbeddingModel, v))
}

// EmbeddingModelHasPrefix applies the HasPrefix predicate on the "embedding_model" field.
func EmbeddingModelHasPrefix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasPrefix(FieldEmbeddingModel, v))
}

// EmbeddingModelHasSuffix applies the HasSuffix predicate on the "embedding_model" field.
func EmbeddingModelHasSuffix(v string) predicate.Memory {
	return predicate.Memory(sql.FieldHasSuffix(FieldEmbeddingModel, v))
}

// EmbeddingModelIsNil applies the IsNil predicate on the "embedding_model" field.
func EmbeddingModelIsNil() predicate.Memory {
	return predicate.Memory(sql.FieldIsNull(FieldEmbeddingModel))
}

// EmbeddingModelNotNil applies the NotNil predicate on the "embedding_model" field.
func EmbeddingModelNotNil() predicate.Memory {
	return predicate.Memory(sql.FieldNotNull(FieldEmbeddingModel))
}

// EmbeddingModelEqualFold applies the EqualFold predicate on the "embedding_model" field.
func EmbeddingModelEqualFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldEqualFold(FieldEmbeddingModel, v))
}

// EmbeddingModelContainsFold applies the ContainsFold predicate on the "embedding_model" field.
func EmbeddingModelContainsFold(v string) predicate.Memory {
	return predicate.Memory(sql.FieldContainsFold(FieldEmbeddingModel, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Memory {
	return predicate.Memory(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.Memory {
	return predicate.Memory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.Memory {
	return predicate.Memory(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEventLinks applies the HasEdge predicate on the "event_links" edge.
func HasEventLinks() predicate.Memory {
	return predicate.Memory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventLinksWith applies the HasEdge predicate on the "event_links" edge with a given conditions (other predicates).
func HasEventLinksWith(preds ...predicate.MemoryEvent) predicate.Memory {
	return predicate.Memory(func(s *sql.Selector) {
		step := newEventLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Memory) predicate.Memory {
	return predicate.Memory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Memory) predicate.Memory {
	return predicate.Memory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Memory) predicate.Memory {
	return predicate.Memory(sql.NotPredicates(p))
}
