package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("plain JSON passes through", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, ExtractJSON(`{"a":1}`))
	})

	t.Run("json fence is stripped", func(t *testing.T) {
		raw := "```json\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, ExtractJSON(raw))
	})

	t.Run("bare fence is stripped", func(t *testing.T) {
		raw := "```\n[1, 2]\n```"
		assert.Equal(t, `[1, 2]`, ExtractJSON(raw))
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		assert.Equal(t, `{}`, ExtractJSON("  \n{}\n  "))
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}

	t.Run("decodes plain response", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON(`{"name":"x","score":0.5}`, &p))
		assert.Equal(t, "x", p.Name)
		assert.Equal(t, 0.5, p.Score)
	})

	t.Run("decodes fenced response", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON("```json\n{\"name\":\"y\"}\n```", &p))
		assert.Equal(t, "y", p.Name)
	})

	t.Run("invalid JSON errors", func(t *testing.T) {
		var p payload
		assert.Error(t, DecodeJSON("not json at all", &p))
	})

	t.Run("empty response errors", func(t *testing.T) {
		var p payload
		assert.Error(t, DecodeJSON("``````", &p))
	})
}
