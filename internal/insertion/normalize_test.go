package insertion

import (
	"encoding/json"
	"testing"
)

func decodePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestNormalizeObjectiveOptionsList(t *testing.T) {
	payload := decodePayload(t, `{
	  "questions": [
	    {"question": "Où habite Lina ?", "options": ["Paris", "Lyon", "Lille", "Nice"], "correct_answer": 1}
	  ]
	}`)

	items := normalizeObjective(payload)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	got := items[0]
	if got.OptionB != "Lyon" || got.Correct != "B" {
		t.Errorf("item = %+v, want option B Lyon correct from index 1", got)
	}
}

func TestNormalizeObjectiveChoicesWithIsCorrect(t *testing.T) {
	payload := decodePayload(t, `{
	  "exercises": [
	    {"stem": "Que cherche-t-elle ?", "choices": [
	      {"text": "Un emploi", "is_correct": false},
	      {"text": "Un logement", "is_correct": false},
	      {"text": "Un cours", "is_correct": true}
	    ]}
	  ]
	}`)

	items := normalizeObjective(payload)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].OptionC != "Un cours" || items[0].Correct != "C" {
		t.Errorf("item = %+v, want correct C from is_correct", items[0])
	}
}

func TestNormalizeObjectiveLetteredOptions(t *testing.T) {
	payload := decodePayload(t, `{
	  "items": [
	    {"question_text": "Complétez la phrase.", "option_a": "à", "option_b": "de", "option_c": "pour", "option_d": "chez", "correct_option": "c"}
	  ]
	}`)

	items := normalizeObjective(payload)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].OptionC != "pour" || items[0].Correct != "C" {
		t.Errorf("item = %+v, want lowercase letter normalised to C", items[0])
	}
}

func TestNormalizeObjectiveSkipsBrokenEntries(t *testing.T) {
	payload := decodePayload(t, `{
	  "questions": [
	    "pas un objet",
	    {"options": ["a", "b"]},
	    {"question": "Valide ?", "options": ["oui", "non"]}
	  ]
	}`)

	items := normalizeObjective(payload)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 (broken entries skipped)", len(items))
	}
	if items[0].Correct != "A" {
		t.Errorf("Correct = %q, want default A", items[0].Correct)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Au bureau", "au-bureau"},
		{"Mon projet professionnel", "mon-projet-professionnel"},
		{"Se présenter !", "se-presenter"},
		{"L'été à Paris", "l-ete-a-paris"},
		{"  espaces  multiples  ", "espaces-multiples"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
