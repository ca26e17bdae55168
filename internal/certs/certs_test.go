package certs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := NewService(Config{
		MediaRoot:     t.TempDir(),
		CertsSubdir:   "certificates",
		VerifyBaseURL: "https://example.org",
	})
	return svc, st
}

func TestIssueCreatesCertificateAndPDF(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	iss, err := svc.Issue(ctx, st.Client(), "marie", "TEF", cefr.B2)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !iss.Created {
		t.Error("Created = false, want true on first issue")
	}
	if !regexp.MustCompile(`^[0-9A-F]{12}$`).MatchString(iss.PublicID) {
		t.Errorf("PublicID = %q, want 12 uppercase hex chars", iss.PublicID)
	}
	if iss.PDFPath == "" {
		t.Fatal("PDFPath is empty")
	}

	cert, err := svc.Verify(ctx, st.Client(), iss.PublicID)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if cert.UserID != "marie" || cert.ExamCode != "TEF" {
		t.Errorf("stored cert = %+v", cert)
	}
}

func TestIssueIsIdempotent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, st.Client(), "marie", "TEF", cefr.B1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	second, err := svc.Issue(ctx, st.Client(), "marie", "TEF", cefr.B1)
	if err != nil {
		t.Fatalf("Issue() second call error = %v", err)
	}

	if second.Created {
		t.Error("Created = true on repeat issue, want false")
	}
	if second.PublicID != first.PublicID {
		t.Errorf("PublicID changed: %q vs %q", first.PublicID, second.PublicID)
	}

	n, err := st.Client().CEFRCertificate.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("certificates = %d, want 1", n)
	}
}

func TestIssueDistinctLevels(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	a, err := svc.Issue(ctx, st.Client(), "marie", "TEF", cefr.A2)
	if err != nil {
		t.Fatalf("Issue(A2) error = %v", err)
	}
	b, err := svc.Issue(ctx, st.Client(), "marie", "TEF", cefr.B1)
	if err != nil {
		t.Fatalf("Issue(B1) error = %v", err)
	}
	if a.PublicID == b.PublicID {
		t.Error("distinct levels must get distinct public ids")
	}
}

func TestPDFWrittenToDisk(t *testing.T) {
	root := t.TempDir()
	svc := NewService(Config{MediaRoot: root, VerifyBaseURL: "https://example.org"})

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	iss, err := svc.Issue(context.Background(), st.Client(), "ahmed", "DELF", cefr.B2)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(iss.PDFPath)))
	if err != nil {
		t.Fatalf("pdf missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pdf file is empty")
	}
}

func TestRenderRetry(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	iss, err := svc.Issue(ctx, st.Client(), "lin", "TCF", cefr.C1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	path, err := svc.Render(ctx, st.Client(), iss.PublicID)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if path == "" {
		t.Error("Render() returned empty path")
	}
}

func TestVerifyURL(t *testing.T) {
	svc := NewService(Config{VerifyBaseURL: "https://example.org"})
	got := svc.VerifyURL("ABCDEF123456")
	want := "https://example.org/certificates/verify/ABCDEF123456"
	if got != want {
		t.Errorf("VerifyURL() = %q, want %q", got, want)
	}
}

func TestVerifyUnknownID(t *testing.T) {
	svc, st := newTestService(t)
	if _, err := svc.Verify(context.Background(), st.Client(), "000000000000"); err == nil {
		t.Error("Verify(unknown) should fail")
	}
}
