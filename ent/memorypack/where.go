// Code generated by ent, DO NOT EDIT.

package memorypack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldAnimaID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldQuery, v))
}

// Preset applies equality check predicate on the "preset" field. It's identical to PresetEQ.
func Preset(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldPreset, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldSessionCount, v))
}

// KnowledgeCount applies equality check predicate on the "knowledge_count" field. It's identical to KnowledgeCountEQ.
func KnowledgeCount(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldKnowledgeCount, v))
}

// LongTermCount applies equality check predicate on the "long_term_count" field. It's identical to LongTermCountEQ.
func LongTermCount(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldLongTermCount, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldTokenCount, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldMaxTokens, v))
}

// CompiledAt applies equality check predicate on the "compiled_at" field. It's identical to CompiledAtEQ.
func CompiledAt(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldCompiledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContainsFold(FieldAnimaID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryIsNil applies the IsNil predicate on the "query" field.
func QueryIsNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIsNull(FieldQuery))
}

// QueryNotNil applies the NotNil predicate on the "query" field.
func QueryNotNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotNull(FieldQuery))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContainsFold(FieldQuery, v))
}

// PresetEQ applies the EQ predicate on the "preset" field.
func PresetEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldPreset, v))
}

// PresetNEQ applies the NEQ predicate on the "preset" field.
func PresetNEQ(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldPreset, v))
}

// PresetIn applies the In predicate on the "preset" field.
func PresetIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldPreset, vs...))
}

// PresetNotIn applies the NotIn predicate on the "preset" field.
func PresetNotIn(vs ...string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldPreset, vs...))
}

// PresetGT applies the GT predicate on the "preset" field.
func PresetGT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldPreset, v))
}

// PresetGTE applies the GTE predicate on the "preset" field.
func PresetGTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldPreset, v))
}

// PresetLT applies the LT predicate on the "preset" field.
func PresetLT(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldPreset, v))
}

// PresetLTE applies the LTE predicate on the "preset" field.
func PresetLTE(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldPreset, v))
}

// PresetContains applies the Contains predicate on the "preset" field.
func PresetContains(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContains(FieldPreset, v))
}

// PresetHasPrefix applies the HasPrefix predicate on the "preset" field.
func PresetHasPrefix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasPrefix(FieldPreset, v))
}

// PresetHasSuffix applies the HasSuffix predicate on the "preset" field.
func PresetHasSuffix(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldHasSuffix(FieldPreset, v))
}

// PresetIsNil applies the IsNil predicate on the "preset" field.
func PresetIsNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIsNull(FieldPreset))
}

// PresetNotNil applies the NotNil predicate on the "preset" field.
func PresetNotNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotNull(FieldPreset))
}

// PresetEqualFold applies the EqualFold predicate on the "preset" field.
func PresetEqualFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEqualFold(FieldPreset, v))
}

// PresetContainsFold applies the ContainsFold predicate on the "preset" field.
func PresetContainsFold(v string) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldContainsFold(FieldPreset, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldSessionCount, v))
}

// KnowledgeCountEQ applies the EQ predicate on the "knowledge_count" field.
func KnowledgeCountEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldKnowledgeCount, v))
}

// KnowledgeCountNEQ applies the NEQ predicate on the "knowledge_count" field.
func KnowledgeCountNEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldKnowledgeCount, v))
}

// KnowledgeCountIn applies the In predicate on the "knowledge_count" field.
func KnowledgeCountIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldKnowledgeCount, vs...))
}

// KnowledgeCountNotIn applies the NotIn predicate on the "knowledge_count" field.
func KnowledgeCountNotIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldKnowledgeCount, vs...))
}

// KnowledgeCountGT applies the GT predicate on the "knowledge_count" field.
func KnowledgeCountGT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldKnowledgeCount, v))
}

// KnowledgeCountGTE applies the GTE predicate on the "knowledge_count" field.
func KnowledgeCountGTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldKnowledgeCount, v))
}

// KnowledgeCountLT applies the LT predicate on the "knowledge_count" field.
func KnowledgeCountLT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldKnowledgeCount, v))
}

// KnowledgeCountLTE applies the LTE predicate on the "knowledge_count" field.
func KnowledgeCountLTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldKnowledgeCount, v))
}

// LongTermCountEQ applies the EQ predicate on the "long_term_count" field.
func LongTermCountEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldLongTermCount, v))
}

// LongTermCountNEQ applies the NEQ predicate on the "long_term_count" field.
func LongTermCountNEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldLongTermCount, v))
}

// LongTermCountIn applies the In predicate on the "long_term_count" field.
func LongTermCountIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldLongTermCount, vs...))
}

// LongTermCountNotIn applies the NotIn predicate on the "long_term_count" field.
func LongTermCountNotIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldLongTermCount, vs...))
}

// LongTermCountGT applies the GT predicate on the "long_term_count" field.
func LongTermCountGT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldLongTermCount, v))
}

// LongTermCountGTE applies the GTE predicate on the "long_term_count" field.
func LongTermCountGTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldLongTermCount, v))
}

// LongTermCountLT applies the LT predicate on the "long_term_count" field.
func LongTermCountLT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldLongTermCount, v))
}

// LongTermCountLTE applies the LTE predicate on the "long_term_count" field.
func LongTermCountLTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldLongTermCount, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldTokenCount, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldMaxTokens, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotNull(FieldContent))
}

// CompiledAtEQ applies the EQ predicate on the "compiled_at" field.
func CompiledAtEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldCompiledAt, v))
}

// CompiledAtNEQ applies the NEQ predicate on the "compiled_at" field.
func CompiledAtNEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldCompiledAt, v))
}

// CompiledAtIn applies the In predicate on the "compiled_at" field.
func CompiledAtIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldCompiledAt, vs...))
}

// CompiledAtNotIn applies the NotIn predicate on the "compiled_at" field.
func CompiledAtNotIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldCompiledAt, vs...))
}

// CompiledAtGT applies the GT predicate on the "compiled_at" field.
func CompiledAtGT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldCompiledAt, v))
}

// CompiledAtGTE applies the GTE predicate on the "compiled_at" field.
func CompiledAtGTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldCompiledAt, v))
}

// CompiledAtLT applies the LT predicate on the "compiled_at" field.
func CompiledAtLT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldCompiledAt, v))
}

// CompiledAtLTE applies the LTE predicate on the "compiled_at" field.
func CompiledAtLTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldCompiledAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MemoryPack {
	return predicate.MemoryPack(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.MemoryPack {
	return predicate.MemoryPack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.MemoryPack {
	return predicate.MemoryPack(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryPack) predicate.MemoryPack {
	return predicate.MemoryPack(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryPack) predicate.MemoryPack {
	return predicate.MemoryPack(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryPack) predicate.MemoryPack {
	return predicate.MemoryPack(sql.NotPredicates(p))
}
