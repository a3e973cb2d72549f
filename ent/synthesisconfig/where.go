// Code generated by ent, DO NOT EDIT.

package synthesisconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldContainsFold(FieldID, id))
}

// AnimaID applies equality check predicate on the "anima_id" field. It's identical to AnimaIDEQ.
func AnimaID(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldAnimaID, v))
}

// TimeWeight applies equality check predicate on the "time_weight" field. It's identical to TimeWeightEQ.
func TimeWeight(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTimeWeight, v))
}

// EventWeight applies equality check predicate on the "event_weight" field. It's identical to EventWeightEQ.
func EventWeight(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldEventWeight, v))
}

// TokenWeight applies equality check predicate on the "token_weight" field. It's identical to TokenWeightEQ.
func TokenWeight(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTokenWeight, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldThreshold, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// IntervalHours applies equality check predicate on the "interval_hours" field. It's identical to IntervalHoursEQ.
func IntervalHours(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldIntervalHours, v))
}

// LastSynthesisCheckAt applies equality check predicate on the "last_synthesis_check_at" field. It's identical to LastSynthesisCheckAtEQ.
func LastSynthesisCheckAt(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldLastSynthesisCheckAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnimaIDEQ applies the EQ predicate on the "anima_id" field.
func AnimaIDEQ(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldAnimaID, v))
}

// AnimaIDNEQ applies the NEQ predicate on the "anima_id" field.
func AnimaIDNEQ(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldAnimaID, v))
}

// AnimaIDIn applies the In predicate on the "anima_id" field.
func AnimaIDIn(vs ...string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldAnimaID, vs...))
}

// AnimaIDNotIn applies the NotIn predicate on the "anima_id" field.
func AnimaIDNotIn(vs ...string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldAnimaID, vs...))
}

// AnimaIDGT applies the GT predicate on the "anima_id" field.
func AnimaIDGT(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldAnimaID, v))
}

// AnimaIDGTE applies the GTE predicate on the "anima_id" field.
func AnimaIDGTE(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldAnimaID, v))
}

// AnimaIDLT applies the LT predicate on the "anima_id" field.
func AnimaIDLT(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldAnimaID, v))
}

// AnimaIDLTE applies the LTE predicate on the "anima_id" field.
func AnimaIDLTE(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldAnimaID, v))
}

// AnimaIDContains applies the Contains predicate on the "anima_id" field.
func AnimaIDContains(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldContains(FieldAnimaID, v))
}

// AnimaIDHasPrefix applies the HasPrefix predicate on the "anima_id" field.
func AnimaIDHasPrefix(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldHasPrefix(FieldAnimaID, v))
}

// AnimaIDHasSuffix applies the HasSuffix predicate on the "anima_id" field.
func AnimaIDHasSuffix(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldHasSuffix(FieldAnimaID, v))
}

// AnimaIDEqualFold applies the EqualFold predicate on the "anima_id" field.
func AnimaIDEqualFold(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEqualFold(FieldAnimaID, v))
}

// AnimaIDContainsFold applies the ContainsFold predicate on the "anima_id" field.
func AnimaIDContainsFold(v string) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldContainsFold(FieldAnimaID, v))
}

// TimeWeightEQ applies the EQ predicate on the "time_weight" field.
func TimeWeightEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTimeWeight, v))
}

// TimeWeightNEQ applies the NEQ predicate on the "time_weight" field.
func TimeWeightNEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldTimeWeight, v))
}

// TimeWeightIn applies the In predicate on the "time_weight" field.
func TimeWeightIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldTimeWeight, vs...))
}

// TimeWeightNotIn applies the NotIn predicate on the "time_weight" field.
func TimeWeightNotIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldTimeWeight, vs...))
}

// TimeWeightGT applies the GT predicate on the "time_weight" field.
func TimeWeightGT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldTimeWeight, v))
}

// TimeWeightGTE applies the GTE predicate on the "time_weight" field.
func TimeWeightGTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldTimeWeight, v))
}

// TimeWeightLT applies the LT predicate on the "time_weight" field.
func TimeWeightLT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldTimeWeight, v))
}

// TimeWeightLTE applies the LTE predicate on the "time_weight" field.
func TimeWeightLTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldTimeWeight, v))
}

// EventWeightEQ applies the EQ predicate on the "event_weight" field.
func EventWeightEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldEventWeight, v))
}

// EventWeightNEQ applies the NEQ predicate on the "event_weight" field.
func EventWeightNEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldEventWeight, v))
}

// EventWeightIn applies the In predicate on the "event_weight" field.
func EventWeightIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldEventWeight, vs...))
}

// EventWeightNotIn applies the NotIn predicate on the "event_weight" field.
func EventWeightNotIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldEventWeight, vs...))
}

// EventWeightGT applies the GT predicate on the "event_weight" field.
func EventWeightGT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldEventWeight, v))
}

// EventWeightGTE applies the GTE predicate on the "event_weight" field.
func EventWeightGTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldEventWeight, v))
}

// EventWeightLT applies the LT predicate on the "event_weight" field.
func EventWeightLT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldEventWeight, v))
}

// EventWeightLTE applies the LTE predicate on the "event_weight" field.
func EventWeightLTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldEventWeight, v))
}

// TokenWeightEQ applies the EQ predicate on the "token_weight" field.
func TokenWeightEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTokenWeight, v))
}

// TokenWeightNEQ applies the NEQ predicate on the "token_weight" field.
func TokenWeightNEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldTokenWeight, v))
}

// TokenWeightIn applies the In predicate on the "token_weight" field.
func TokenWeightIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldTokenWeight, vs...))
}

// TokenWeightNotIn applies the NotIn predicate on the "token_weight" field.
func TokenWeightNotIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldTokenWeight, vs...))
}

// TokenWeightGT applies the GT predicate on the "token_weight" field.
func TokenWeightGT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldTokenWeight, v))
}

// TokenWeightGTE applies the GTE predicate on the "token_weight" field.
func TokenWeightGTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldTokenWeight, v))
}

// TokenWeightLT applies the LT predicate on the "token_weight" field.
func TokenWeightLT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldTokenWeight, v))
}

// TokenWeightLTE applies the LTE predicate on the "token_weight" field.
func TokenWeightLTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldTokenWeight, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldThreshold, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldTemperature, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldMaxTokens, v))
}

// IntervalHoursEQ applies the EQ predicate on the "interval_hours" field.
func IntervalHoursEQ(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldIntervalHours, v))
}

// IntervalHoursNEQ applies the NEQ predicate on the "interval_hours" field.
func IntervalHoursNEQ(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldIntervalHours, v))
}

// IntervalHoursIn applies the In predicate on the "interval_hours" field.
func IntervalHoursIn(vs ...int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldIntervalHours, vs...))
}

// IntervalHoursNotIn applies the NotIn predicate on the "interval_hours" field.
func IntervalHoursNotIn(vs ...int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldIntervalHours, vs...))
}

// IntervalHoursGT applies the GT predicate on the "interval_hours" field.
func IntervalHoursGT(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldIntervalHours, v))
}

// IntervalHoursGTE applies the GTE predicate on the "interval_hours" field.
func IntervalHoursGTE(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldIntervalHours, v))
}

// IntervalHoursLT applies the LT predicate on the "interval_hours" field.
func IntervalHoursLT(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldIntervalHours, v))
}

// IntervalHoursLTE applies the LTE predicate on the "interval_hours" field.
func IntervalHoursLTE(v int) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldIntervalHours, v))
}

// LastSynthesisCheckAtEQ applies the EQ predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtNEQ applies the NEQ predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtNEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtIn applies the In predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldLastSynthesisCheckAt, vs...))
}

// LastSynthesisCheckAtNotIn applies the NotIn predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtNotIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldLastSynthesisCheckAt, vs...))
}

// LastSynthesisCheckAtGT applies the GT predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtGT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtGTE applies the GTE predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtGTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtLT applies the LT predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtLT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtLTE applies the LTE predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtLTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldLastSynthesisCheckAt, v))
}

// LastSynthesisCheckAtIsNil applies the IsNil predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtIsNil() predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIsNull(FieldLastSynthesisCheckAt))
}

// LastSynthesisCheckAtNotNil applies the NotNil predicate on the "last_synthesis_check_at" field.
func LastSynthesisCheckAtNotNil() predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotNull(FieldLastSynthesisCheckAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnima applies the HasEdge predicate on the "anima" edge.
func HasAnima() predicate.SynthesisConfig {
	return predicate.SynthesisConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AnimaTable, AnimaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnimaWith applies the HasEdge predicate on the "anima" edge with a given conditions (other predicates).
func HasAnimaWith(preds ...predicate.Anima) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(func(s *sql.Selector) {
		step := newAnimaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SynthesisConfig) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SynthesisConfig) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SynthesisConfig) predicate.SynthesisConfig {
	return predicate.SynthesisConfig(sql.NotPredicates(p))
}
