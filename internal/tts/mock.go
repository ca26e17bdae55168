package tts

import (
	"context"
	"fmt"
	"os"
)

// MockSynthesizer writes a placeholder file instead of real audio. Used
// in mock mode and in tests; the file layout and naming match the http
// backend so downstream code cannot tell the difference.
type MockSynthesizer struct {
	cfg Config
}

// NewMockSynthesizer creates a mock backend rooted at mediaRoot.
func NewMockSynthesizer(mediaRoot string) *MockSynthesizer {
	return &MockSynthesizer{cfg: Config{MediaRoot: mediaRoot, AudioSubdir: "audio"}}
}

func (m *MockSynthesizer) Synthesize(_ context.Context, text, language string) (string, error) {
	clean, lang, voice, err := prepare(text, language)
	if err != nil {
		return "", err
	}

	absPath, relPath, err := freshAudioPath(m.cfg, ".mp3")
	if err != nil {
		return "", err
	}

	placeholder := fmt.Sprintf("MOCK AUDIO lang=%s voice=%s len=%d\n", lang, voice, len(clean))
	if err := os.WriteFile(absPath, []byte(placeholder), 0o644); err != nil {
		return "", fmt.Errorf("tts: write audio file: %w", err)
	}

	return relPath, nil
}
