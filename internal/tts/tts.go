// Package tts turns listening-lesson scripts into audio assets.
// Synthesised files land under the media root and are referenced by
// media-relative paths ("audio/co_<id>.mp3") so the storage layout can
// move without touching the database.
package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// maxTextLen caps the input passed to a backend. Longer scripts are
// truncated, not rejected.
const maxTextLen = 2500

// voices maps a normalised language to the backend voice to request.
var voices = map[string]string{
	"fr": "fr-FR-DeniseNeural",
	"en": "en-US-JennyNeural",
	"de": "de-DE-KatjaNeural",
}

// Synthesizer produces an audio asset from text and returns its
// media-relative path. Each call generates a fresh file name.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (string, error)
}

// UnsupportedLanguageError indicates the language has no configured voice.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("tts: unsupported language %q (supported: fr, en, de)", e.Language)
}

// EmptyInputError indicates the text was empty or whitespace-only.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "tts: text is empty"
}

// BackendError wraps a failure from the synthesis backend itself.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("tts backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Config selects and parameterises a backend.
type Config struct {
	// Backend is "http" or "mock".
	Backend string

	// URL is the synthesis endpoint for the http backend.
	URL string

	// MediaRoot is the absolute directory all assets live under.
	MediaRoot string

	// AudioSubdir is the directory under MediaRoot for audio files.
	// Default: "audio".
	AudioSubdir string

	Timeout time.Duration
}

// ConfigFromEnv reads PREPCORE_TTS_* and PREPCORE_MEDIA_ROOT.
func ConfigFromEnv() Config {
	cfg := Config{
		Backend:     "mock",
		MediaRoot:   "media",
		AudioSubdir: "audio",
		Timeout:     60 * time.Second,
	}
	if b := os.Getenv("PREPCORE_TTS_BACKEND"); b != "" {
		cfg.Backend = b
	}
	if u := os.Getenv("PREPCORE_TTS_URL"); u != "" {
		cfg.URL = u
	}
	if m := os.Getenv("PREPCORE_MEDIA_ROOT"); m != "" {
		cfg.MediaRoot = m
	}
	if s := os.Getenv("PREPCORE_AUDIO_SUBDIR"); s != "" {
		cfg.AudioSubdir = s
	}
	return cfg
}

// New creates the configured Synthesizer.
func New(cfg Config) (Synthesizer, error) {
	if cfg.AudioSubdir == "" {
		cfg.AudioSubdir = "audio"
	}
	switch cfg.Backend {
	case "mock", "":
		return &MockSynthesizer{cfg: cfg}, nil
	case "http":
		if cfg.URL == "" {
			return nil, fmt.Errorf("tts: http backend requires PREPCORE_TTS_URL")
		}
		return newHTTPSynthesizer(cfg), nil
	}
	return nil, fmt.Errorf("tts: unknown backend %q", cfg.Backend)
}

var spaceRun = regexp.MustCompile(`\s+`)

// prepare normalises inputs shared by all backends: collapses whitespace,
// truncates overlong text and resolves the voice for the language.
func prepare(text, language string) (clean, lang, voice string, err error) {
	clean = strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
	if clean == "" {
		return "", "", "", &EmptyInputError{}
	}
	if len(clean) > maxTextLen {
		cut := maxTextLen
		for cut > 0 && !utf8.RuneStart(clean[cut]) {
			cut--
		}
		clean = clean[:cut]
	}

	lang = normalizeLanguage(language)
	voice, ok := voices[lang]
	if !ok {
		return "", "", "", &UnsupportedLanguageError{Language: language}
	}
	return clean, lang, voice, nil
}

// normalizeLanguage reduces "fr-FR", "fr_CA" or " FR " to "fr".
func normalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	lang = strings.ReplaceAll(lang, "_", "-")
	if i := strings.Index(lang, "-"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

// freshAudioPath returns the absolute and media-relative paths for a new
// audio file, creating the directory as needed.
func freshAudioPath(cfg Config, ext string) (absPath, relPath string, err error) {
	dir := filepath.Join(cfg.MediaRoot, cfg.AudioSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("tts: create audio dir: %w", err)
	}

	name := fmt.Sprintf("co_%s%s", strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	return filepath.Join(dir, name), filepath.ToSlash(filepath.Join(cfg.AudioSubdir, name)), nil
}
