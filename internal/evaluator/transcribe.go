package evaluator

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber turns a recorded speaking answer into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// WhisperTranscriber transcribes audio through the OpenAI Whisper API.
type WhisperTranscriber struct {
	client   *openai.Client
	language string
}

// NewWhisperTranscriber builds a transcriber. baseURL may be empty for
// the public API.
func NewWhisperTranscriber(apiKey, baseURL string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("transcription: API key is required")
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &WhisperTranscriber{
		client:   openai.NewClientWithConfig(config),
		language: "fr",
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: t.language,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return resp.Text, nil
}

// MockTranscriber returns a canned transcript; used in mock mode and
// tests so the pipeline runs without audio or network.
type MockTranscriber struct{}

const mockTranscript = "Je pense que la vie en ville offre de nombreux avantages. " +
	"Premièrement, les transports en commun sont très accessibles, " +
	"ce qui facilite les déplacements quotidiens. Deuxièmement, " +
	"on trouve facilement des services comme les hôpitaux, les écoles " +
	"et les commerces. Cependant, la pollution et le bruit peuvent être " +
	"des inconvénients importants. En conclusion, il faut peser le pour " +
	"et le contre avant de choisir entre la ville et la campagne."

func (MockTranscriber) Transcribe(context.Context, string) (string, error) {
	return mockTranscript, nil
}

// NewTranscriber picks the backend: mock mode short-circuits to the
// canned transcript, otherwise Whisper.
func NewTranscriber(mock bool, apiKey, baseURL string) (Transcriber, error) {
	if mock {
		return MockTranscriber{}, nil
	}
	return NewWhisperTranscriber(apiKey, baseURL)
}
