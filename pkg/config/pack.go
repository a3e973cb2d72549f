package config

// PackConfig controls memory-pack compilation defaults and retention.
type PackConfig struct {
	// IdentityTokenOverhead is the fixed token reservation for the
	// identity prose section.
	IdentityTokenOverhead int

	// Budget split for the remaining tokens.
	SessionBudgetShare   float64
	KnowledgeBudgetShare float64
	LongTermBudgetShare  float64

	// DefaultMaxTokens is the overall pack budget when the caller does
	// not supply one.
	DefaultMaxTokens int

	// OverFetchFactor is the long-term layer candidate multiplier before
	// re-ranking.
	OverFetchFactor int

	// MaxRetainedPacks bounds persisted pack history per anima.
	MaxRetainedPacks int
}

// DefaultPackConfig returns the built-in pack defaults.
func DefaultPackConfig() *PackConfig {
	return &PackConfig{
		IdentityTokenOverhead: 150,
		SessionBudgetShare:    0.25,
		KnowledgeBudgetShare:  0.35,
		LongTermBudgetShare:   0.40,
		DefaultMaxTokens:      2000,
		OverFetchFactor:       3,
		MaxRetainedPacks:      100,
	}
}
