package pack

import (
	"fmt"
	"strings"
)

// FormatIdentityProse renders an anima's identity as short natural-language
// prose. Sections missing their required keys are silently omitted; an
// entirely empty identity renders as "".
//
// The self-reflection tree recognizes these branches:
//
//	being:      {"traits": [..]}
//	purpose:    {"mission": ".."}
//	principles: {"values": [..]}
//	philosophy: {"epistemology": {"skepticism": f, "empiricism": f}}
//	relational: [{"person": "..", "role": ".."}, ..]
//	arc:        {"current_chapter": ".."}
func FormatIdentityProse(name string, personalityType, communicationStyle *string, reflection map[string]interface{}) string {
	var sentences []string

	opening := ""
	if name != "" {
		opening = "You are " + name
		if personalityType != nil && *personalityType != "" {
			opening += fmt.Sprintf(", %s %s", indefiniteArticle(*personalityType), *personalityType)
		}
		sentences = append(sentences, opening+".")
	} else if personalityType != nil && *personalityType != "" {
		sentences = append(sentences, fmt.Sprintf("You are %s %s.", indefiniteArticle(*personalityType), *personalityType))
	}

	if communicationStyle != nil && *communicationStyle != "" {
		sentences = append(sentences, "Your communication style is "+*communicationStyle+".")
	}

	if traits := stringList(dig(reflection, "being"), "traits"); len(traits) > 0 {
		sentences = append(sentences, "You are "+joinWithAnd(traits)+".")
	}
	if mission := stringKey(dig(reflection, "purpose"), "mission"); mission != "" {
		sentences = append(sentences, "Your purpose is "+mission+".")
	}
	if values := stringList(dig(reflection, "principles"), "values"); len(values) > 0 {
		sentences = append(sentences, "You hold to "+joinWithAnd(values)+".")
	}
	if ep := epistemologySentence(dig(reflection, "philosophy")); ep != "" {
		sentences = append(sentences, ep)
	}
	sentences = append(sentences, relationalSentences(reflection)...)
	if chapter := stringKey(dig(reflection, "arc"), "current_chapter"); chapter != "" {
		sentences = append(sentences, "You are currently "+chapter+".")
	}

	return strings.Join(sentences, " ")
}

// indefiniteArticle picks "a" or "an" by an initial-phoneme heuristic:
// vowel letters take "an", with carve-outs for silent h and consonant-sound
// u/o openings.
func indefiniteArticle(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "a"
	}
	for _, p := range []string{"hon", "hour", "heir"} {
		if strings.HasPrefix(w, p) {
			return "an"
		}
	}
	for _, p := range []string{"uni", "use", "usa", "eu", "one", "once"} {
		if strings.HasPrefix(w, p) {
			return "a"
		}
	}
	if strings.ContainsRune("aeiou", rune(w[0])) {
		return "an"
	}
	return "a"
}

// joinWithAnd joins items with Oxford-style commas: "a", "a and b",
// "a, b, and c".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// epistemologySentence maps the 2D epistemology coordinates to qualitative
// labels. The first axis runs skeptical (positive) to idealist (negative),
// the second empiricist (positive) to rationalist (negative). Small
// magnitudes read as centrist (< 0.2) and balanced (< 0.3).
func epistemologySentence(philosophy map[string]interface{}) string {
	ep, ok := philosophy["epistemology"].(map[string]interface{})
	if !ok {
		return ""
	}
	skepticism, ok1 := floatKey(ep, "skepticism")
	empiricism, ok2 := floatKey(ep, "empiricism")
	if !ok1 || !ok2 {
		return ""
	}

	var axis1 string
	switch {
	case abs(skepticism) < 0.2:
		axis1 = "centrist"
	case skepticism > 0:
		axis1 = "skeptical"
	default:
		axis1 = "idealist"
	}
	var axis2 string
	switch {
	case abs(empiricism) < 0.3:
		axis2 = "balanced"
	case empiricism > 0:
		axis2 = "empiricist"
	default:
		axis2 = "rationalist"
	}
	return fmt.Sprintf("Epistemically you are %s and %s.", axis1, axis2)
}

// relationalSentences groups the relational list by person so each person
// yields one sentence ("Phil is your owner and creator.").
func relationalSentences(reflection map[string]interface{}) []string {
	raw, ok := reflection["relational"].([]interface{})
	if !ok {
		return nil
	}
	roles := map[string][]string{}
	var order []string
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		person := stringKey(m, "person")
		role := stringKey(m, "role")
		if person == "" || role == "" {
			continue
		}
		if _, seen := roles[person]; !seen {
			order = append(order, person)
		}
		roles[person] = append(roles[person], role)
	}
	sentences := make([]string, 0, len(order))
	for _, person := range order {
		sentences = append(sentences, fmt.Sprintf("%s is your %s.", person, joinWithAnd(roles[person])))
	}
	return sentences
}

func dig(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]interface{})
	return sub
}

func stringKey(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func floatKey(m map[string]interface{}, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringList(m map[string]interface{}, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
