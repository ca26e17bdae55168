package mockexam

import (
	"encoding/json"
	"strings"
)

// normalizeItems validates raw question objects and coerces them into
// Items. Items without a usable stem or with fewer than two choices are
// dropped.
func normalizeItems(raw []json.RawMessage) []Item {
	var out []Item
	for _, r := range raw {
		var q map[string]any
		if err := json.Unmarshal(r, &q); err != nil {
			continue
		}

		stem := firstString(q, "stem", "question", "text")
		if stem == "" {
			continue
		}

		choices := normalizeChoices(q["choices"])
		if len(choices) < 2 {
			continue
		}

		difficulty := strings.ToLower(strings.TrimSpace(asString(q["difficulty"])))
		switch difficulty {
		case "easy", "medium", "hard":
		default:
			difficulty = "medium"
		}

		out = append(out, Item{
			Stem:        stem,
			Difficulty:  difficulty,
			Passage:     asString(q["passage"]),
			Choices:     choices,
			Explanation: firstString(q, "explanation", "explanation_text"),
		})
	}
	return out
}

// normalizeChoices accepts the three shapes models actually produce:
//   - {"A": "...", "B": "...", "correct": "B"}
//   - [{"text": "...", "is_correct": bool}, ...]
//   - ["...", "..."] (no correctness information)
func normalizeChoices(raw any) []Choice {
	switch v := raw.(type) {
	case map[string]any:
		return normalizeLetterMap(v)
	case []any:
		return normalizeChoiceList(v)
	}
	return nil
}

func normalizeLetterMap(m map[string]any) []Choice {
	var correct string
	letters := map[string]string{}

	for k, val := range m {
		switch strings.ToLower(k) {
		case "correct", "correct_answer", "answer":
			correct = strings.ToUpper(strings.TrimSpace(asString(val)))
		default:
			upper := strings.ToUpper(k)
			if upper == "A" || upper == "B" || upper == "C" || upper == "D" {
				letters[upper] = asString(val)
			}
		}
	}

	var out []Choice
	for _, key := range []string{"A", "B", "C", "D"} {
		if text, ok := letters[key]; ok {
			out = append(out, Choice{Text: text, IsCorrect: key == correct})
		}
	}
	return out
}

func normalizeChoiceList(list []any) []Choice {
	var out []Choice
	for _, entry := range list {
		switch c := entry.(type) {
		case map[string]any:
			text := firstString(c, "text", "label", "value")
			if text == "" {
				continue
			}
			isCorrect, _ := c["is_correct"].(bool)
			out = append(out, Choice{Text: text, IsCorrect: isCorrect})
		default:
			// Plain string: the model forgot the correctness flag.
			if s := asString(entry); s != "" {
				out = append(out, Choice{Text: s, IsCorrect: false})
			}
		}
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(asString(m[k])); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
