package models

// UpdateSynthesisConfigRequest patches an anima's synthesis tuning. Nil
// pointers leave the stored value alone.
type UpdateSynthesisConfigRequest struct {
	TimeWeight    *float64 `json:"time_weight"`
	EventWeight   *float64 `json:"event_weight"`
	TokenWeight   *float64 `json:"token_weight"`
	Threshold     *float64 `json:"threshold"`
	Temperature   *float64 `json:"temperature"`
	MaxTokens     *int     `json:"max_tokens"`
	IntervalHours *int     `json:"interval_hours"`
}

// UpdateIOConfigRequest deep-merges into an anima's IO settings.
type UpdateIOConfigRequest struct {
	ReadSettings  map[string]interface{} `json:"read_settings"`
	WriteSettings map[string]interface{} `json:"write_settings"`
}

// UpsertIdentityRequest creates or patches an anima's identity.
type UpsertIdentityRequest struct {
	PersonalityType    *string                `json:"personality_type"`
	CommunicationStyle *string                `json:"communication_style"`
	SelfReflection     map[string]interface{} `json:"self_reflection"`
}
