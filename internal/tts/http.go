package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// HTTPSynthesizer calls an external synthesis endpoint and stores the
// returned audio under the media root.
type HTTPSynthesizer struct {
	cfg    Config
	client *http.Client
}

func newHTTPSynthesizer(cfg Config) *HTTPSynthesizer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPSynthesizer{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type synthesisRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	clean, lang, voice, err := prepare(text, language)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(synthesisRequest{Text: clean, Language: lang, Voice: voice})
	if err != nil {
		return "", &BackendError{Backend: "http", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", &BackendError{Backend: "http", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &BackendError{Backend: "http", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &BackendError{
			Backend: "http",
			Err:     fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: "http", Err: err}
	}
	if len(audio) == 0 {
		return "", &BackendError{Backend: "http", Err: fmt.Errorf("empty audio response")}
	}

	absPath, relPath, err := freshAudioPath(s.cfg, ".mp3")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("tts: write audio file: %w", err)
	}

	return relPath, nil
}
