package tts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMockSynthesizeWritesFile(t *testing.T) {
	root := t.TempDir()
	s := NewMockSynthesizer(root)

	rel, err := s.Synthesize(context.Background(), "Bonjour tout le monde.", "fr")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if !strings.HasPrefix(rel, "audio/co_") || !strings.HasSuffix(rel, ".mp3") {
		t.Errorf("relative path = %q, want audio/co_*.mp3", rel)
	}

	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Errorf("audio file missing: %v", err)
	}
}

func TestSynthesizeFreshNameEachCall(t *testing.T) {
	s := NewMockSynthesizer(t.TempDir())

	a, err := s.Synthesize(context.Background(), "texte", "fr")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	b, err := s.Synthesize(context.Background(), "texte", "fr")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if a == b {
		t.Errorf("repeated calls should produce distinct paths, both = %q", a)
	}
}

func TestSynthesizeRejectsBlankText(t *testing.T) {
	s := NewMockSynthesizer(t.TempDir())

	_, err := s.Synthesize(context.Background(), "   \n\t ", "fr")
	var empty *EmptyInputError
	if !errors.As(err, &empty) {
		t.Fatalf("Synthesize() error = %v, want *EmptyInputError", err)
	}
}

func TestSynthesizeRejectsUnknownLanguage(t *testing.T) {
	s := NewMockSynthesizer(t.TempDir())

	_, err := s.Synthesize(context.Background(), "hola", "es")
	var unsupported *UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Synthesize() error = %v, want *UnsupportedLanguageError", err)
	}
}

func TestPrepareTruncatesOnRuneBoundary(t *testing.T) {
	// An accented character straddling the length cap must be dropped
	// whole, never split into a dangling byte.
	text := strings.Repeat("a", maxTextLen-1) + "éé"

	clean, _, _, err := prepare(text, "fr")
	if err != nil {
		t.Fatalf("prepare() error = %v", err)
	}
	if len(clean) > maxTextLen {
		t.Errorf("len = %d, want at most %d", len(clean), maxTextLen)
	}
	if !utf8.ValidString(clean) {
		t.Error("truncated text is not valid UTF-8")
	}
	if !strings.HasSuffix(clean, "a") {
		t.Errorf("unexpected tail %q", clean[len(clean)-4:])
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"fr":    "fr",
		"fr-FR": "fr",
		"fr_CA": "fr",
		" EN ":  "en",
		"de-DE": "de",
	}
	for in, want := range cases {
		if got := normalizeLanguage(in); got != want {
			t.Errorf("normalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHTTPSynthesizer(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, r.ContentLength)
		r.Body.Read(b)
		gotBody = string(b)
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer server.Close()

	root := t.TempDir()
	s, err := New(Config{Backend: "http", URL: server.URL, MediaRoot: root})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rel, err := s.Synthesize(context.Background(), "Bonjour   le  monde", "fr-FR")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if !strings.Contains(gotBody, `"language":"fr"`) {
		t.Errorf("request body = %s, want normalised language fr", gotBody)
	}
	if !strings.Contains(gotBody, "Bonjour le monde") {
		t.Errorf("request body = %s, want collapsed whitespace", gotBody)
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading audio file: %v", err)
	}
	if string(data) != "fake-mp3-bytes" {
		t.Errorf("audio content = %q", data)
	}
}

func TestHTTPSynthesizerBackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "voice unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	s, err := New(Config{Backend: "http", URL: server.URL, MediaRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = s.Synthesize(context.Background(), "texte", "fr")
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("Synthesize() error = %v, want *BackendError", err)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "espeak"}); err == nil {
		t.Error("New(espeak) should fail")
	}
}

func TestNewHTTPRequiresURL(t *testing.T) {
	if _, err := New(Config{Backend: "http"}); err == nil {
		t.Error("New(http) without URL should fail")
	}
}
