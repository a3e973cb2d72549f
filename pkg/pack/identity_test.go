package pack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestIndefiniteArticle(t *testing.T) {
	cases := map[string]string{
		"INTJ":      "an",
		"explorer":  "an",
		"builder":   "a",
		"honest":    "an",
		"hour":      "an",
		"heirloom":  "an",
		"unicorn":   "a",
		"user":      "a",
		"european":  "a",
		"one-timer": "a",
		"":          "a",
	}
	for word, want := range cases {
		assert.Equal(t, want, indefiniteArticle(word), "word %q", word)
	}
}

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "", joinWithAnd(nil))
	assert.Equal(t, "curious", joinWithAnd([]string{"curious"}))
	assert.Equal(t, "curious and patient", joinWithAnd([]string{"curious", "patient"}))
	assert.Equal(t, "curious, patient, and blunt", joinWithAnd([]string{"curious", "patient", "blunt"}))
}

func TestEpistemologySentence(t *testing.T) {
	build := func(skepticism, empiricism float64) map[string]interface{} {
		return map[string]interface{}{
			"epistemology": map[string]interface{}{
				"skepticism": skepticism,
				"empiricism": empiricism,
			},
		}
	}

	t.Run("small magnitudes read centrist and balanced", func(t *testing.T) {
		assert.Equal(t, "Epistemically you are centrist and balanced.", epistemologySentence(build(0.1, -0.2)))
	})

	t.Run("positive axes", func(t *testing.T) {
		assert.Equal(t, "Epistemically you are skeptical and empiricist.", epistemologySentence(build(0.8, 0.7)))
	})

	t.Run("negative axes", func(t *testing.T) {
		assert.Equal(t, "Epistemically you are idealist and rationalist.", epistemologySentence(build(-0.5, -0.6)))
	})

	t.Run("missing coordinates omit the sentence", func(t *testing.T) {
		assert.Equal(t, "", epistemologySentence(map[string]interface{}{
			"epistemology": map[string]interface{}{"skepticism": 0.5},
		}))
		assert.Equal(t, "", epistemologySentence(nil))
	})
}

func TestRelationalGrouping(t *testing.T) {
	reflection := map[string]interface{}{
		"relational": []interface{}{
			map[string]interface{}{"person": "Phil", "role": "owner"},
			map[string]interface{}{"person": "Phil", "role": "creator"},
			map[string]interface{}{"person": "Ada", "role": "collaborator"},
		},
	}
	sentences := relationalSentences(reflection)
	assert.Equal(t, []string{
		"Phil is your owner and creator.",
		"Ada is your collaborator.",
	}, sentences)
}

func TestFormatIdentityProse(t *testing.T) {
	t.Run("empty identity renders empty", func(t *testing.T) {
		assert.Equal(t, "", FormatIdentityProse("", nil, nil, nil))
	})

	t.Run("full identity", func(t *testing.T) {
		reflection := map[string]interface{}{
			"being":      map[string]interface{}{"traits": []interface{}{"curious", "precise"}},
			"purpose":    map[string]interface{}{"mission": "to remember what matters"},
			"principles": map[string]interface{}{"values": []interface{}{"honesty", "clarity", "care"}},
			"philosophy": map[string]interface{}{
				"epistemology": map[string]interface{}{"skepticism": 0.6, "empiricism": 0.5},
			},
			"relational": []interface{}{
				map[string]interface{}{"person": "Phil", "role": "owner"},
			},
			"arc": map[string]interface{}{"current_chapter": "learning to synthesize"},
		}
		prose := FormatIdentityProse("Iris", strPtr("INTJ"), strPtr("direct"), reflection)

		assert.True(t, strings.HasPrefix(prose, "You are Iris, an INTJ."), prose)
		assert.Contains(t, prose, "Your communication style is direct.")
		assert.Contains(t, prose, "You are curious and precise.")
		assert.Contains(t, prose, "Your purpose is to remember what matters.")
		assert.Contains(t, prose, "You hold to honesty, clarity, and care.")
		assert.Contains(t, prose, "Epistemically you are skeptical and empiricist.")
		assert.Contains(t, prose, "Phil is your owner.")
		assert.Contains(t, prose, "You are currently learning to synthesize.")
	})

	t.Run("sections missing required keys are omitted", func(t *testing.T) {
		reflection := map[string]interface{}{
			"being":   map[string]interface{}{},
			"purpose": map[string]interface{}{"mission": ""},
			"arc":     "not a map",
		}
		prose := FormatIdentityProse("Iris", nil, nil, reflection)
		assert.Equal(t, "You are Iris.", prose)
	})
}
