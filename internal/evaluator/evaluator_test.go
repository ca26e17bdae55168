package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/visaetude/prepcore/internal/llm"
)

func TestEvaluateSpeakingParsesVerdict(t *testing.T) {
	verdict := `{
		"score": 72,
		"feedback": "Bonne structure générale.",
		"points_covered": ["Introduction", "Conclusion"],
		"suggestions": ["Varier les connecteurs"],
		"criteria": {"pertinence": 20, "structure": 15}
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(verdict)})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{
		Transcript:     "Je pense que la vie en ville...",
		Topic:          "Ville ou campagne",
		Instructions:   "Donnez votre avis",
		Level:          "B1",
		ExpectedPoints: []string{"prise de position", "exemples"},
	})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if res.Degraded {
		t.Fatal("result should not be degraded")
	}
	if res.Score != 72 {
		t.Errorf("Score = %d, want 72", res.Score)
	}
	if len(res.PointsCovered) != 2 || res.Criteria["pertinence"] != 20 {
		t.Errorf("verdict not fully decoded: %+v", res)
	}

	// The user prompt carries topic, level and the expected points.
	call := mock.Calls[0]
	prompt := call.Messages[0].Content
	for _, fragment := range []string{"Ville ou campagne", "B1", "prise de position"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("user prompt missing %q", fragment)
		}
	}
}

func TestEvaluateSpeakingAcceptsFencedJSON(t *testing.T) {
	fenced := "Voici l'évaluation :\n```json\n{\"score\": 61, \"feedback\": \"ok\"}\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if res.Score != 61 || res.Degraded {
		t.Errorf("result = %+v, want score 61", res)
	}
}

func TestEvaluateSpeakingDegradesOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.TransportError{StatusCode: 503, Err: errors.New("down")}})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if !res.Degraded || res.Score != DegradedScore {
		t.Errorf("result = %+v, want degraded score %d", res, DegradedScore)
	}
	if res.Feedback == "" {
		t.Error("degraded result should still carry feedback")
	}
}

func TestEvaluateSpeakingDegradesOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("désolé, pas de JSON ici")})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if !res.Degraded {
		t.Error("unparseable output should degrade")
	}
}

func TestEvaluateSpeakingDegradesOnForeignPayload(t *testing.T) {
	// A well-formed JSON object that is not a verdict (no score, no
	// feedback) must degrade, not decode into a zero-score result.
	lesson := `{"title": "Au bureau", "audio_script": "Bonjour...", "questions": []}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(lesson)})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if !res.Degraded || res.Score != DegradedScore {
		t.Errorf("result = %+v, want degraded score %d", res, DegradedScore)
	}
}

func TestMockModeReturnsFixedVerdicts(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock, nil).WithMockMode(true)

	eo, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if eo.Score != 72 || eo.Degraded || len(eo.Suggestions) != 3 {
		t.Errorf("speaking verdict = %+v, want fixed score 72", eo)
	}

	ee, err := e.EvaluateWriting(context.Background(), WritingInput{Text: "y"})
	if err != nil {
		t.Fatalf("EvaluateWriting() error = %v", err)
	}
	if ee.Score != 68 || ee.Degraded || len(ee.Errors) != 2 {
		t.Errorf("writing verdict = %+v, want fixed score 68", ee)
	}

	if len(mock.Calls) != 0 {
		t.Errorf("mock mode made %d model calls, want 0", len(mock.Calls))
	}
}

func TestEvaluateWritingParsesCorrections(t *testing.T) {
	verdict := `{
		"score": 68,
		"feedback": "Production cohérente.",
		"errors": [{"original": "les gens ils veulent", "correction": "les gens veulent", "rule": "Pronom redondant"}],
		"corrected_version": "Version corrigée.",
		"criteria": {"grammaire": 19}
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(verdict)})
	e := New(mock, nil)

	res, err := e.EvaluateWriting(context.Background(), WritingInput{
		Text:         "les gens ils veulent...",
		Topic:        "Lettre formelle",
		Instructions: "Écrivez une lettre",
		Level:        "B2",
	})
	if err != nil {
		t.Fatalf("EvaluateWriting() error = %v", err)
	}
	if res.Score != 68 || len(res.Errors) != 1 {
		t.Errorf("result = %+v, want score 68 with one correction", res)
	}
	if res.Errors[0].Rule != "Pronom redondant" {
		t.Errorf("Rule = %q", res.Errors[0].Rule)
	}
}

func TestEvaluateWritingDegradedKeepsOriginalText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.TransportError{Err: errors.New("down")}})
	e := New(mock, nil)

	original := "Mon texte original."
	res, err := e.EvaluateWriting(context.Background(), WritingInput{Text: original})
	if err != nil {
		t.Fatalf("EvaluateWriting() error = %v", err)
	}
	if !res.Degraded || res.CorrectedVersion != original {
		t.Errorf("result = %+v, want degraded with original text", res)
	}
}

func TestEvaluateClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"score": 140, "feedback": "x"}`)})
	e := New(mock, nil)

	res, err := e.EvaluateSpeaking(context.Background(), SpeakingInput{Transcript: "x"})
	if err != nil {
		t.Fatalf("EvaluateSpeaking() error = %v", err)
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want clamped to 100", res.Score)
	}
}

func TestMockTranscriber(t *testing.T) {
	tr, err := NewTranscriber(true, "", "")
	if err != nil {
		t.Fatalf("NewTranscriber() error = %v", err)
	}
	text, err := tr.Transcribe(context.Background(), "whatever.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if !strings.Contains(text, "la vie en ville") {
		t.Errorf("unexpected transcript: %q", text)
	}
}

func TestWhisperTranscriberRequiresKey(t *testing.T) {
	if _, err := NewTranscriber(false, "", ""); err == nil {
		t.Error("missing API key should fail")
	}
}
