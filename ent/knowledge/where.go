// Code generated by ent, DO NOT EDIT.

package knowledge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldAnimaID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldTopic, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldSummary, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldConfidence, v))
}

// SourceMemoryID applies equality check predicate on the "source_memory_id" field. It's identical to SourceMemoryIDEQ.
func SourceMemoryID(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldSourceMemoryID, v))
}

// EmbeddingModel applies equality check predicate on the "embedding_model" field. It's identical to EmbeddingModelEQ.
func EmbeddingModel(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldEmbeddingModel, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldAnimaID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldType, vs...))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldTopic, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldSummary, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldConfidence))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceMemoryIDEQ applies the EQ predicate on the "source_memory_id" field.
func SourceMemoryIDEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldSourceMemoryID, v))
}

// SourceMemoryIDNEQ applies the NEQ predicate on the "source_memory_id" field.
func SourceMemoryIDNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldSourceMemoryID, v))
}

// SourceMemoryIDIn applies the In predicate on the "source_memory_id" field.
func SourceMemoryIDIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldSourceMemoryID, vs...))
}

// SourceMemoryIDNotIn applies the NotIn predicate on the "source_memory_id" field.
func SourceMemoryIDNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldSourceMemoryID, vs...))
}

// SourceMemoryIDGT applies the GT predicate on the "source_memory_id" field.
func SourceMemoryIDGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldSourceMemoryID, v))
}

// SourceMemoryIDGTE applies the GTE predicate on the "source_memory_id" field.
func SourceMemoryIDGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldSourceMemoryID, v))
}

// SourceMemoryIDLT applies the LT predicate on the "source_memory_id" field.
func SourceMemoryIDLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldSourceMemoryID, v))
}

// SourceMemoryIDLTE applies the LTE predicate on the "source_memory_id" field.
func SourceMemoryIDLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldSourceMemoryID, v))
}

// SourceMemoryIDContains applies the Contains predicate on the "source_memory_id" field.
func SourceMemoryIDContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldSourceMemoryID, v))
}

// SourceMemoryIDHasPrefix applies the HasPrefix predicate on the "source_memory_id" field.
func SourceMemoryIDHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldSourceMemoryID, v))
}

// SourceMemoryIDHasSuffix applies the HasSuffix predicate on the "source_memory_id" field.
func SourceMemoryIDHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldSourceMemoryID, v))
}

// SourceMemoryIDIsNil applies the IsNil predicate on the "source_memory_id" field.
func SourceMemoryIDIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldSourceMemoryID))
}

// SourceMemoryIDNotNil applies the NotNil predicate on the "source_memory_id" field.
func SourceMemoryIDNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldSourceMemoryID))
}

// SourceMemoryIDEqualFold applies the EqualFold predicate on the "source_memory_id" field.
func SourceMemoryIDEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldSourceMemoryID, v))
}

// SourceMemoryIDContainsFold applies the ContainsFold predicate on the "source_memory_id" field.
func SourceMemoryIDContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldSourceMemoryID, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldEmbedding))
}

// EmbeddingModelEQ applies the EQ predicate on the "embedding_model" field.
func EmbeddingModelEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelNEQ applies the NEQ predicate on the "embedding_model" field.
func EmbeddingModelNEQ(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelIn applies the In predicate on the "embedding_model" field.
func EmbeddingModelIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelNotIn applies the NotIn predicate on the "embedding_model" field.
func EmbeddingModelNotIn(vs ...string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelGT applies the GT predicate on the "embedding_model" field.
func EmbeddingModelGT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldEmbeddingModel, v))
}

// EmbeddingModelGTE applies the GTE predicate on the "embedding_model" field.
func EmbeddingModelGTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldEmbeddingModel, v))
}

// EmbeddingModelLT applies the LT predicate on the "embedding_model" field.
func EmbeddingModelLT(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldEmbeddingModel, v))
}

// EmbeddingModelLTE applies the LTE predicate on the "embedding_model" field.
func EmbeddingModelLTE(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldEmbeddingModel, v))
}

// EmbeddingModelContains applies the Contains predicate on the "embedding_model" field.
func EmbeddingModelContains(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContains(FieldEmbeddingModel, v))
}

// EmbeddingModelHasPrefix applies the HasPrefix predicate on the "embedding_model" field.
func EmbeddingModelHasPrefix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasPrefix(FieldEmbeddingModel, v))
}

// EmbeddingModelHasSuffix applies the HasSuffix predicate on the "embedding_model" field.
func EmbeddingModelHasSuffix(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldHasSuffix(FieldEmbeddingModel, v))
}

// EmbeddingModelIsNil applies the IsNil predicate on the "embedding_model" field.
func EmbeddingModelIsNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIsNull(FieldEmbeddingModel))
}

// EmbeddingModelNotNil applies the NotNil predicate on the "embedding_model" field.
func EmbeddingModelNotNil() predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotNull(FieldEmbeddingModel))
}

// EmbeddingModelEqualFold applies the EqualFold predicate on the "embedding_model" field.
func EmbeddingModelEqualFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEqualFold(FieldEmbeddingModel, v))
}

// EmbeddingModelContainsFold applies the ContainsFold predicate on the "embedding_model" field.
func EmbeddingModelContainsFold(v string) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldContainsFold(FieldEmbeddingModel, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Knowledge {
	return predicate.Knowledge(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.Knowledge {
	return predicate.Knowledge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.Knowledge {
	return predicate.Knowledge(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.Knowledge {
	return predicate.Knowledge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.KnowledgeAuditLog) predicate.Knowledge {
	return predicate.Knowledge(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Knowledge) predicate.Knowledge {
	return predicate.Knowledge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Knowledge) predicate.Knowledge {
	return predicate.Knowledge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Knowledge) predicate.Knowledge {
	return predicate.Knowledge(sql.NotPredicates(p))
}
