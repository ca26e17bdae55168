package insertion

import (
	"fmt"
	"strings"
)

var letters = []string{"A", "B", "C", "D"}

// objectiveItem is one MCQ exercise extracted from a lesson payload.
type objectiveItem struct {
	Stem    string
	OptionA string
	OptionB string
	OptionC string
	OptionD string
	Correct string
}

// normalizeObjective extracts MCQ exercises from a lesson payload.
// Agents drift between shapes: the questions list may sit under
// "questions", "exercises" or "items"; options may be a plain list, a
// choices list of {text, is_correct} objects, or option_a..option_d
// keys; the correct answer may be a letter, an index or implied by
// is_correct. Unrecognisable entries are skipped.
func normalizeObjective(payload map[string]any) []objectiveItem {
	var raw []any
	for _, key := range []string{"questions", "exercises", "items"} {
		if list, ok := payload[key].([]any); ok && len(list) > 0 {
			raw = list
			break
		}
	}

	var out []objectiveItem
	for _, entry := range raw {
		q, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		stem := firstString(q, "question_text", "question", "stem", "text")
		if stem == "" {
			continue
		}

		options, choices := extractOptions(q)
		item := objectiveItem{Stem: stem}
		for i, opt := range options {
			switch i {
			case 0:
				item.OptionA = opt
			case 1:
				item.OptionB = opt
			case 2:
				item.OptionC = opt
			case 3:
				item.OptionD = opt
			}
		}
		item.Correct = correctLetter(q, choices)
		out = append(out, item)
	}
	return out
}

// extractOptions returns the ordered option texts plus the raw choices
// list (kept for is_correct resolution).
func extractOptions(q map[string]any) ([]string, []any) {
	if list, ok := q["options"].([]any); ok && len(list) > 0 {
		out := make([]string, 0, len(list))
		for _, v := range list {
			out = append(out, asString(v))
		}
		return out, nil
	}

	if choices, ok := q["choices"].([]any); ok && len(choices) > 0 {
		out := make([]string, 0, len(choices))
		for _, c := range choices {
			if m, ok := c.(map[string]any); ok {
				out = append(out, firstString(m, "text"))
			} else {
				out = append(out, asString(c))
			}
		}
		return out, choices
	}

	var out []string
	for _, key := range []string{"option_a", "option_b", "option_c", "option_d"} {
		out = append(out, firstString(q, key))
	}
	if strings.Join(out, "") == "" {
		return nil, nil
	}
	return out, nil
}

// correctLetter resolves the correct option to A..D, defaulting to A.
func correctLetter(q map[string]any, choices []any) string {
	for _, key := range []string{"correct_option", "correct_answer", "correct"} {
		v, ok := q[key]
		if !ok {
			continue
		}
		if n, ok := asInt(v); ok {
			if n >= 0 && n < len(letters) {
				return letters[n]
			}
			return "A"
		}
		s := strings.ToUpper(strings.TrimSpace(asString(v)))
		for _, l := range letters {
			if s == l {
				return l
			}
		}
	}

	for i, c := range choices {
		if m, ok := c.(map[string]any); ok {
			if correct, _ := m["is_correct"].(bool); correct && i < len(letters) {
				return letters[i]
			}
		}
	}
	return "A"
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// joinLines renders a string list field one entry per line.
func joinLines(m map[string]any, keys ...string) string {
	for _, key := range keys {
		list, ok := m[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		parts := make([]string, 0, len(list))
		for _, v := range list {
			if s := asString(v); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return fmt.Sprintf("%g", s)
	}
	return ""
}

// asInt accepts the float64 that encoding/json produces for numbers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
