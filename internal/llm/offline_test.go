package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func offlineGenerate(t *testing.T, userPrompt string) map[string]any {
	t.Helper()

	p := NewOfflineProvider()
	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: userPrompt}},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	return payload
}

func TestOfflineListeningLesson(t *testing.T) {
	payload := offlineGenerate(t, "Generate a CO lesson at level B1 in fr. Reply with JSON only.")

	if _, ok := payload["audio_script"]; !ok {
		t.Error("CO lesson payload missing audio_script")
	}
	if _, ok := payload["questions"]; !ok {
		t.Error("CO lesson payload missing questions")
	}
}

func TestOfflineReadingLesson(t *testing.T) {
	payload := offlineGenerate(t, "Generate a CE lesson at level A2 in fr. Reply with JSON only.")

	if _, ok := payload["reading_text"]; !ok {
		t.Error("CE lesson payload missing reading_text")
	}
}

func TestOfflineSpeakingLesson(t *testing.T) {
	payload := offlineGenerate(t, "Generate a EO lesson at level B2 in fr. Reply with JSON only.")

	if _, ok := payload["expected_points"]; !ok {
		t.Error("EO lesson payload missing expected_points")
	}
}

func TestOfflineWritingLesson(t *testing.T) {
	payload := offlineGenerate(t, "Generate a EE lesson at level B2 in fr. Reply with JSON only.")

	if _, ok := payload["min_words"]; !ok {
		t.Error("EE lesson payload missing min_words")
	}
}

func TestOfflineExamSection(t *testing.T) {
	payload := offlineGenerate(t, "Generate 5 exam-style multiple-choice questions for section CO at level B1 in fr.")

	questions, ok := payload["questions"].([]any)
	if !ok {
		t.Fatal("exam payload missing questions array")
	}
	if len(questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(questions))
	}

	first, ok := questions[0].(map[string]any)
	if !ok {
		t.Fatal("question is not an object")
	}
	if _, ok := first["stem"]; !ok {
		t.Error("exam question missing stem")
	}
	choices, ok := first["choices"].([]any)
	if !ok || len(choices) != 4 {
		t.Errorf("choices = %v, want 4 entries", first["choices"])
	}
}

func TestOfflineIsDeterministic(t *testing.T) {
	prompt := "Generate a CE lesson at level B1 in fr."
	a := offlineGenerate(t, prompt)
	b := offlineGenerate(t, prompt)

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Error("offline provider is not deterministic")
	}
}

func TestOfflinePayloadKeying(t *testing.T) {
	if !strings.Contains(offlinePayload("exam questions for section CE please"), "reouverture") {
		t.Error("CE exam prompt should select the reading exam payload")
	}
	if !strings.Contains(offlinePayload("something unrelated"), "audio_script") {
		t.Error("unmatched prompt should default to the listening lesson payload")
	}
}
