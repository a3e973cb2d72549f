// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/apikey"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/schema"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescKeyPrefix is the schema descriptor for key_prefix field.
	apikeyDescKeyPrefix := apikeyFields[5].Descriptor()
	// apikey.KeyPrefixValidator is a validator for the "key_prefix" field. It is called by the builders before save.
	apikey.KeyPrefixValidator = apikeyDescKeyPrefix.Validators[0].(func(string) error)
	// apikeyDescRequestCount is the schema descriptor for request_count field.
	apikeyDescRequestCount := apikeyFields[7].Descriptor()
	// apikey.DefaultRequestCount holds the default value on creation for the request_count field.
	apikey.DefaultRequestCount = apikeyDescRequestCount.Default.(int)
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[8].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[10].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescUpdatedAt is the schema descriptor for updated_at field.
	apikeyDescUpdatedAt := apikeyFields[11].Descriptor()
	// apikey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	apikey.DefaultUpdatedAt = apikeyDescUpdatedAt.Default.(func() time.Time)
	// apikey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	apikey.UpdateDefaultUpdatedAt = apikeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	animaFields := schema.Anima{}.Fields()
	_ = animaFields
	// animaDescIsDormant is the schema descriptor for is_dormant field.
	animaDescIsDormant := animaFields[6].Descriptor()
	// anima.DefaultIsDormant holds the default value on creation for the is_dormant field.
	anima.DefaultIsDormant = animaDescIsDormant.Default.(bool)
	// animaDescIsDeleted is the schema descriptor for is_deleted field.
	animaDescIsDeleted := animaFields[8].Descriptor()
	// anima.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	anima.DefaultIsDeleted = animaDescIsDeleted.Default.(bool)
	// animaDescCreatedAt is the schema descriptor for created_at field.
	animaDescCreatedAt := animaFields[9].Descriptor()
	// anima.DefaultCreatedAt holds the default value on creation for the created_at field.
	anima.DefaultCreatedAt = animaDescCreatedAt.Default.(func() time.Time)
	// animaDescUpdatedAt is the schema descriptor for updated_at field.
	animaDescUpdatedAt := animaFields[10].Descriptor()
	// anima.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	anima.DefaultUpdatedAt = animaDescUpdatedAt.Default.(func() time.Time)
	// anima.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	anima.UpdateDefaultUpdatedAt = animaDescUpdatedAt.UpdateDefault.(func() time.Time)
	dreamactionFields := schema.DreamAction{}.Fields()
	_ = dreamactionFields
	// dreamactionDescCreatedAt is the schema descriptor for created_at field.
	dreamactionDescCreatedAt := dreamactionFields[9].Descriptor()
	// dreamaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	dreamaction.DefaultCreatedAt = dreamactionDescCreatedAt.Default.(func() time.Time)
	dreamsessionFields := schema.DreamSession{}.Fields()
	_ = dreamsessionFields
	// dreamsessionDescStartedAt is the schema descriptor for started_at field.
	dreamsessionDescStartedAt := dreamsessionFields[4].Descriptor()
	// dreamsession.DefaultStartedAt holds the default value on creation for the started_at field.
	dreamsession.DefaultStartedAt = dreamsessionDescStartedAt.Default.(func() time.Time)
	// dreamsessionDescMemoriesReviewed is the schema descriptor for memories_reviewed field.
	dreamsessionDescMemoriesReviewed := dreamsessionFields[8].Descriptor()
	// dreamsession.DefaultMemoriesReviewed holds the default value on creation for the memories_reviewed field.
	dreamsession.DefaultMemoriesReviewed = dreamsessionDescMemoriesReviewed.Default.(int)
	// dreamsessionDescMemoriesModified is the schema descriptor for memories_modified field.
	dreamsessionDescMemoriesModified := dreamsessionFields[9].Descriptor()
	// dreamsession.DefaultMemoriesModified holds the default value on creation for the memories_modified field.
	dreamsession.DefaultMemoriesModified = dreamsessionDescMemoriesModified.Default.(int)
	// dreamsessionDescMemoriesCreated is the schema descriptor for memories_created field.
	dreamsessionDescMemoriesCreated := dreamsessionFields[10].Descriptor()
	// dreamsession.DefaultMemoriesCreated holds the default value on creation for the memories_created field.
	dreamsession.DefaultMemoriesCreated = dreamsessionDescMemoriesCreated.Default.(int)
	// dreamsessionDescMemoriesArchived is the schema descriptor for memories_archived field.
	dreamsessionDescMemoriesArchived := dreamsessionFields[11].Descriptor()
	// dreamsession.DefaultMemoriesArchived holds the default value on creation for the memories_archived field.
	dreamsession.DefaultMemoriesArchived = dreamsessionDescMemoriesArchived.Default.(int)
	// dreamsessionDescMemoriesDeleted is the schema descriptor for memories_deleted field.
	dreamsessionDescMemoriesDeleted := dreamsessionFields[12].Descriptor()
	// dreamsession.DefaultMemoriesDeleted holds the default value on creation for the memories_deleted field.
	dreamsession.DefaultMemoriesDeleted = dreamsessionDescMemoriesDeleted.Default.(int)
	// dreamsessionDescCreatedAt is the schema descriptor for created_at field.
	dreamsessionDescCreatedAt := dreamsessionFields[15].Descriptor()
	// dreamsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	dreamsession.DefaultCreatedAt = dreamsessionDescCreatedAt.Default.(func() time.Time)
	// dreamsessionDescUpdatedAt is the schema descriptor for updated_at field.
	dreamsessionDescUpdatedAt := dreamsessionFields[16].Descriptor()
	// dreamsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dreamsession.DefaultUpdatedAt = dreamsessionDescUpdatedAt.Default.(func() time.Time)
	// dreamsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dreamsession.UpdateDefaultUpdatedAt = dreamsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescImportance is the schema descriptor for importance field.
	eventDescImportance := eventFields[12].Descriptor()
	// event.ImportanceValidator is a validator for the "importance" field. It is called by the builders before save.
	event.ImportanceValidator = eventDescImportance.Validators[0].(func(float64) error)
	// eventDescIsDeleted is the schema descriptor for is_deleted field.
	eventDescIsDeleted := eventFields[13].Descriptor()
	// event.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	event.DefaultIsDeleted = eventDescIsDeleted.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[14].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[15].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	ioconfigFields := schema.IOConfig{}.Fields()
	_ = ioconfigFields
	// ioconfigDescCreatedAt is the schema descriptor for created_at field.
	ioconfigDescCreatedAt := ioconfigFields[4].Descriptor()
	// ioconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	ioconfig.DefaultCreatedAt = ioconfigDescCreatedAt.Default.(func() time.Time)
	// ioconfigDescUpdatedAt is the schema descriptor for updated_at field.
	ioconfigDescUpdatedAt := ioconfigFields[5].Descriptor()
	// ioconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ioconfig.DefaultUpdatedAt = ioconfigDescUpdatedAt.Default.(func() time.Time)
	// ioconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ioconfig.UpdateDefaultUpdatedAt = ioconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescIsDeleted is the schema descriptor for is_deleted field.
	identityDescIsDeleted := identityFields[5].Descriptor()
	// identity.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	identity.DefaultIsDeleted = identityDescIsDeleted.Default.(bool)
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[6].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	// identityDescUpdatedAt is the schema descriptor for updated_at field.
	identityDescUpdatedAt := identityFields[7].Descriptor()
	// identity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	identity.DefaultUpdatedAt = identityDescUpdatedAt.Default.(func() time.Time)
	// identity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	identity.UpdateDefaultUpdatedAt = identityDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgeFields := schema.Knowledge{}.Fields()
	_ = knowledgeFields
	// knowledgeDescConfidence is the schema descriptor for confidence field.
	knowledgeDescConfidence := knowledgeFields[6].Descriptor()
	// knowledge.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	knowledge.ConfidenceValidator = knowledgeDescConfidence.Validators[0].(func(float64) error)
	// knowledgeDescIsDeleted is the schema descriptor for is_deleted field.
	knowledgeDescIsDeleted := knowledgeFields[11].Descriptor()
	// knowledge.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	knowledge.DefaultIsDeleted = knowledgeDescIsDeleted.Default.(bool)
	// knowledgeDescCreatedAt is the schema descriptor for created_at field.
	knowledgeDescCreatedAt := knowledgeFields[12].Descriptor()
	// knowledge.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledge.DefaultCreatedAt = knowledgeDescCreatedAt.Default.(func() time.Time)
	// knowledgeDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeDescUpdatedAt := knowledgeFields[13].Descriptor()
	// knowledge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledge.DefaultUpdatedAt = knowledgeDescUpdatedAt.Default.(func() time.Time)
	// knowledge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledge.UpdateDefaultUpdatedAt = knowledgeDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgeauditlogFields := schema.KnowledgeAuditLog{}.Fields()
	_ = knowledgeauditlogFields
	// knowledgeauditlogDescCreatedAt is the schema descriptor for created_at field.
	knowledgeauditlogDescCreatedAt := knowledgeauditlogFields[9].Descriptor()
	// knowledgeauditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeauditlog.DefaultCreatedAt = knowledgeauditlogDescCreatedAt.Default.(func() time.Time)
	memoryFields := schema.Memory{}.Fields()
	_ = memoryFields
	// memoryDescImportance is the schema descriptor for importance field.
	memoryDescImportance := memoryFields[4].Descriptor()
	// memory.ImportanceValidator is a validator for the "importance" field. It is called by the builders before save.
	memory.ImportanceValidator = memoryDescImportance.Validators[0].(func(float64) error)
	// memoryDescConfidence is the schema descriptor for confidence field.
	memoryDescConfidence := memoryFields[5].Descriptor()
	// memory.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	memory.ConfidenceValidator = memoryDescConfidence.Validators[0].(func(float64) error)
	// memoryDescRecencyScore is the schema descriptor for recency_score field.
	memoryDescRecencyScore := memoryFields[7].Descriptor()
	// memory.RecencyScoreValidator is a validator for the "recency_score" field. It is called by the builders before save.
	memory.RecencyScoreValidator = memoryDescRecencyScore.Validators[0].(func(float64) error)
	// memoryDescDecayScore is the schema descriptor for decay_score field.
	memoryDescDecayScore := memoryFields[8].Descriptor()
	// memory.DecayScoreValidator is a validator for the "decay_score" field. It is called by the builders before save.
	memory.DecayScoreValidator = memoryDescDecayScore.Validators[0].(func(float64) error)
	// memoryDescAccessCount is the schema descriptor for access_count field.
	memoryDescAccessCount := memoryFields[9].Descriptor()
	// memory.DefaultAccessCount holds the default value on creation for the access_count field.
	memory.DefaultAccessCount = memoryDescAccessCount.Default.(int)
	// memoryDescIsDeleted is the schema descriptor for is_deleted field.
	memoryDescIsDeleted := memoryFields[16].Descriptor()
	// memory.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	memory.DefaultIsDeleted = memoryDescIsDeleted.Default.(bool)
	// memoryDescCreatedAt is the schema descriptor for created_at field.
	memoryDescCreatedAt := memoryFields[17].Descriptor()
	// memory.DefaultCreatedAt holds the default value on creation for the created_at field.
	memory.DefaultCreatedAt = memoryDescCreatedAt.Default.(func() time.Time)
	// memoryDescUpdatedAt is the schema descriptor for updated_at field.
	memoryDescUpdatedAt := memoryFields[18].Descriptor()
	// memory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memory.DefaultUpdatedAt = memoryDescUpdatedAt.Default.(func() time.Time)
	// memory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memory.UpdateDefaultUpdatedAt = memoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	memoryeventFields := schema.MemoryEvent{}.Fields()
	_ = memoryeventFields
	// memoryeventDescLinkStrength is the schema descriptor for link_strength field.
	memoryeventDescLinkStrength := memoryeventFields[3].Descriptor()
	// memoryevent.LinkStrengthValidator is a validator for the "link_strength" field. It is called by the builders before save.
	memoryevent.LinkStrengthValidator = memoryeventDescLinkStrength.Validators[0].(func(float64) error)
	// memoryeventDescCreatedAt is the schema descriptor for created_at field.
	memoryeventDescCreatedAt := memoryeventFields[4].Descriptor()
	// memoryevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryevent.DefaultCreatedAt = memoryeventDescCreatedAt.Default.(func() time.Time)
	memorypackFields := schema.MemoryPack{}.Fields()
	_ = memorypackFields
	// memorypackDescSessionCount is the schema descriptor for session_count field.
	memorypackDescSessionCount := memorypackFields[4].Descriptor()
	// memorypack.DefaultSessionCount holds the default value on creation for the session_count field.
	memorypack.DefaultSessionCount = memorypackDescSessionCount.Default.(int)
	// memorypackDescKnowledgeCount is the schema descriptor for knowledge_count field.
	memorypackDescKnowledgeCount := memorypackFields[5].Descriptor()
	// memorypack.DefaultKnowledgeCount holds the default value on creation for the knowledge_count field.
	memorypack.DefaultKnowledgeCount = memorypackDescKnowledgeCount.Default.(int)
	// memorypackDescLongTermCount is the schema descriptor for long_term_count field.
	memorypackDescLongTermCount := memorypackFields[6].Descriptor()
	// memorypack.DefaultLongTermCount holds the default value on creation for the long_term_count field.
	memorypack.DefaultLongTermCount = memorypackDescLongTermCount.Default.(int)
	// memorypackDescTokenCount is the schema descriptor for token_count field.
	memorypackDescTokenCount := memorypackFields[7].Descriptor()
	// memorypack.DefaultTokenCount holds the default value on creation for the token_count field.
	memorypack.DefaultTokenCount = memorypackDescTokenCount.Default.(int)
	// memorypackDescMaxTokens is the schema descriptor for max_tokens field.
	memorypackDescMaxTokens := memorypackFields[8].Descriptor()
	// memorypack.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	memorypack.DefaultMaxTokens = memorypackDescMaxTokens.Default.(int)
	// memorypackDescCreatedAt is the schema descriptor for created_at field.
	memorypackDescCreatedAt := memorypackFields[11].Descriptor()
	// memorypack.DefaultCreatedAt holds the default value on creation for the created_at field.
	memorypack.DefaultCreatedAt = memorypackDescCreatedAt.Default.(func() time.Time)
	// memorypackDescUpdatedAt is the schema descriptor for updated_at field.
	memorypackDescUpdatedAt := memorypackFields[12].Descriptor()
	// memorypack.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memorypack.DefaultUpdatedAt = memorypackDescUpdatedAt.Default.(func() time.Time)
	// memorypack.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memorypack.UpdateDefaultUpdatedAt = memorypackDescUpdatedAt.UpdateDefault.(func() time.Time)
	synthesisconfigFields := schema.SynthesisConfig{}.Fields()
	_ = synthesisconfigFields
	// synthesisconfigDescTimeWeight is the schema descriptor for time_weight field.
	synthesisconfigDescTimeWeight := synthesisconfigFields[2].Descriptor()
	// synthesisconfig.DefaultTimeWeight holds the default value on creation for the time_weight field.
	synthesisconfig.DefaultTimeWeight = synthesisconfigDescTimeWeight.Default.(float64)
	// synthesisconfig.TimeWeightValidator is a validator for the "time_weight" field. It is called by the builders before save.
	synthesisconfig.TimeWeightValidator = synthesisconfigDescTimeWeight.Validators[0].(func(float64) error)
	// synthesisconfigDescEventWeight is the schema descriptor for event_weight field.
	synthesisconfigDescEventWeight := synthesisconfigFields[3].Descriptor()
	// synthesisconfig.DefaultEventWeight holds the default value on creation for the event_weight field.
	synthesisconfig.DefaultEventWeight = synthesisconfigDescEventWeight.Default.(float64)
	// synthesisconfig.EventWeightValidator is a validator for the "event_weight" field. It is called by the builders before save.
	synthesisconfig.EventWeightValidator = synthesisconfigDescEventWeight.Validators[0].(func(float64) error)
	// synthesisconfigDescTokenWeight is the schema descriptor for token_weight field.
	synthesisconfigDescTokenWeight := synthesisconfigFields[4].Descriptor()
	// synthesisconfig.DefaultTokenWeight holds the default value on creation for the token_weight field.
	synthesisconfig.DefaultTokenWeight = synthesisconfigDescTokenWeight.Default.(float64)
	// synthesisconfig.TokenWeightValidator is a validator for the "token_weight" field. It is called by the builders before save.
	synthesisconfig.TokenWeightValidator = synthesisconfigDescTokenWeight.Validators[0].(func(float64) error)
	// synthesisconfigDescThreshold is the schema descriptor for threshold field.
	synthesisconfigDescThreshold := synthesisconfigFields[5].Descriptor()
	// synthesisconfig.DefaultThreshold holds the default value on creation for the threshold field.
	synthesisconfig.DefaultThreshold = synthesisconfigDescThreshold.Default.(float64)
	// synthesisconfig.ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	synthesisconfig.ThresholdValidator = synthesisconfigDescThreshold.Validators[0].(func(float64) error)
	// synthesisconfigDescTemperature is the schema descriptor for temperature field.
	synthesisconfigDescTemperature := synthesisconfigFields[6].Descriptor()
	// synthesisconfig.DefaultTemperature holds the default value on creation for the temperature field.
	synthesisconfig.DefaultTemperature = synthesisconfigDescTemperature.Default.(float64)
	// synthesisconfig.TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	synthesisconfig.TemperatureValidator = synthesisconfigDescTemperature.Validators[0].(func(float64) error)
	// synthesisconfigDescMaxTokens is the schema descriptor for max_tokens field.
	synthesisconfigDescMaxTokens := synthesisconfigFields[7].Descriptor()
	// synthesisconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	synthesisconfig.DefaultMaxTokens = synthesisconfigDescMaxTokens.Default.(int)
	// synthesisconfig.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	synthesisconfig.MaxTokensValidator = synthesisconfigDescMaxTokens.Validators[0].(func(int) error)
	// synthesisconfigDescIntervalHours is the schema descriptor for interval_hours field.
	synthesisconfigDescIntervalHours := synthesisconfigFields[8].Descriptor()
	// synthesisconfig.DefaultIntervalHours holds the default value on creation for the interval_hours field.
	synthesisconfig.DefaultIntervalHours = synthesisconfigDescIntervalHours.Default.(int)
	// synthesisconfig.IntervalHoursValidator is a validator for the "interval_hours" field. It is called by the builders before save.
	synthesisconfig.IntervalHoursValidator = synthesisconfigDescIntervalHours.Validators[0].(func(int) error)
	// synthesisconfigDescCreatedAt is the schema descriptor for created_at field.
	synthesisconfigDescCreatedAt := synthesisconfigFields[10].Descriptor()
	// synthesisconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	synthesisconfig.DefaultCreatedAt = synthesisconfigDescCreatedAt.Default.(func() time.Time)
	// synthesisconfigDescUpdatedAt is the schema descriptor for updated_at field.
	synthesisconfigDescUpdatedAt := synthesisconfigFields[11].Descriptor()
	// synthesisconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	synthesisconfig.DefaultUpdatedAt = synthesisconfigDescUpdatedAt.Default.(func() time.Time)
	// synthesisconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	synthesisconfig.UpdateDefaultUpdatedAt = synthesisconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
