package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTemporalContext(t *testing.T) {
	t.Run("sub hour", func(t *testing.T) {
		assert.Equal(t,
			"Your last communication with the user was less than an hour ago.",
			FormatTemporalContext(0.5, ""))
	})

	t.Run("single hour", func(t *testing.T) {
		assert.Equal(t,
			"Your last communication with the user was 1 hour ago.",
			FormatTemporalContext(1.4, ""))
	})

	t.Run("whole hours", func(t *testing.T) {
		assert.Equal(t,
			"Your last communication with the user was 5 hours ago.",
			FormatTemporalContext(5.9, ""))
	})

	t.Run("yesterday", func(t *testing.T) {
		assert.Equal(t,
			"Your last communication with the user was yesterday.",
			FormatTemporalContext(30, ""))
	})

	t.Run("days with summary", func(t *testing.T) {
		assert.Equal(t,
			"Your last communication with the user was 2 days ago about project deadline.",
			FormatTemporalContext(48, "project deadline"))
	})
}

func TestCapTopK(t *testing.T) {
	assert.Equal(t, 3, capTopK(3, 10))
	assert.Equal(t, 10, capTopK(50, 10))
	assert.Equal(t, 50, capTopK(50, 0), "zero topK falls back to the cap")
	assert.Equal(t, maxTopK, capTopK(500, 1000), "topK above the cap is clamped")
}
