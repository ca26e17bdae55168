// Package certs issues CEFR certificates: one row per (user, exam,
// level) with a globally unique public id, plus a rendered PDF carrying
// a QR code for third-party verification.
package certs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/cefrcertificate"

	"github.com/visaetude/prepcore/internal/cefr"
)

// Issuance is the result of an Issue call.
type Issuance struct {
	PublicID string
	PDFPath  string

	// Created is false when the certificate already existed.
	Created bool
}

// RenderError indicates the PDF could not be rendered. The certificate
// row exists; rendering can be retried via Render.
type RenderError struct {
	PublicID string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render certificate %s: %v", e.PublicID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Config parameterises the issuer.
type Config struct {
	// MediaRoot is the directory all artifacts live under.
	MediaRoot string

	// CertsSubdir is the directory under MediaRoot for certificate PDFs.
	// Default: "certificates".
	CertsSubdir string

	// VerifyBaseURL is the public base for verification links, e.g.
	// "https://example.org". The QR code encodes
	// <base>/certificates/verify/<public_id>.
	VerifyBaseURL string
}

// ConfigFromEnv reads PREPCORE_MEDIA_ROOT, PREPCORE_CERTS_SUBDIR and
// PREPCORE_VERIFY_BASE_URL.
func ConfigFromEnv() Config {
	cfg := Config{
		MediaRoot:     "media",
		CertsSubdir:   "certificates",
		VerifyBaseURL: "https://prepcore.local",
	}
	if m := os.Getenv("PREPCORE_MEDIA_ROOT"); m != "" {
		cfg.MediaRoot = m
	}
	if s := os.Getenv("PREPCORE_CERTS_SUBDIR"); s != "" {
		cfg.CertsSubdir = s
	}
	if u := os.Getenv("PREPCORE_VERIFY_BASE_URL"); u != "" {
		cfg.VerifyBaseURL = strings.TrimRight(u, "/")
	}
	return cfg
}

// Service issues and verifies certificates.
type Service struct {
	cfg Config
}

// NewService creates a certificate service.
func NewService(cfg Config) *Service {
	if cfg.CertsSubdir == "" {
		cfg.CertsSubdir = "certificates"
	}
	return &Service{cfg: cfg}
}

// Issue creates (or returns) the certificate for (user, exam, level).
// Idempotent: an existing row is returned with Created=false and no new
// PDF is rendered. The client may be transaction-bound; the row is
// created through it so an enclosing progression transaction covers it.
// A *RenderError still returns the issuance: the row is committed and
// rendering can be retried later.
func (s *Service) Issue(ctx context.Context, client *ent.Client, userID, examCode string, level cefr.Level) (*Issuance, error) {
	existing, err := client.CEFRCertificate.Query().
		Where(
			cefrcertificate.UserID(userID),
			cefrcertificate.ExamCode(examCode),
			cefrcertificate.LevelEQ(cefrcertificate.Level(level)),
		).
		Only(ctx)
	if err == nil {
		return &Issuance{PublicID: existing.PublicID, PDFPath: existing.PdfPath, Created: false}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("look up certificate: %w", err)
	}

	publicID, err := newPublicID()
	if err != nil {
		return nil, err
	}

	cert, err := client.CEFRCertificate.Create().
		SetUserID(userID).
		SetExamCode(examCode).
		SetLevel(cefrcertificate.Level(level)).
		SetPublicID(publicID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	pdfPath, err := s.render(ctx, client, cert)
	if err != nil {
		return &Issuance{PublicID: publicID, Created: true}, &RenderError{PublicID: publicID, Err: err}
	}

	return &Issuance{PublicID: publicID, PDFPath: pdfPath, Created: true}, nil
}

// Render (re-)renders the PDF for an existing certificate, identified by
// public id, and stores the resulting path.
func (s *Service) Render(ctx context.Context, client *ent.Client, publicID string) (string, error) {
	cert, err := client.CEFRCertificate.Query().
		Where(cefrcertificate.PublicID(publicID)).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("load certificate %s: %w", publicID, err)
	}

	path, err := s.render(ctx, client, cert)
	if err != nil {
		return "", &RenderError{PublicID: publicID, Err: err}
	}
	return path, nil
}

// Verify looks a certificate up by public id.
func (s *Service) Verify(ctx context.Context, client *ent.Client, publicID string) (*ent.CEFRCertificate, error) {
	cert, err := client.CEFRCertificate.Query().
		Where(cefrcertificate.PublicID(strings.ToUpper(strings.TrimSpace(publicID)))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", publicID, err)
	}
	return cert, nil
}

// VerifyURL returns the public verification link for a certificate.
func (s *Service) VerifyURL(publicID string) string {
	return fmt.Sprintf("%s/certificates/verify/%s", s.cfg.VerifyBaseURL, publicID)
}

func (s *Service) render(ctx context.Context, client *ent.Client, cert *ent.CEFRCertificate) (string, error) {
	relPath, err := renderPDF(s.cfg, cert, s.VerifyURL(cert.PublicID))
	if err != nil {
		return "", err
	}

	if _, err := client.CEFRCertificate.UpdateOne(cert).
		SetPdfPath(relPath).
		Save(ctx); err != nil {
		return "", fmt.Errorf("store pdf path: %w", err)
	}
	return relPath, nil
}

// newPublicID generates 12 uppercase hex characters.
func newPublicID() (string, error) {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate public id: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf[:])), nil
}

// issuedOn formats the issue timestamp for the PDF.
func issuedOn(t time.Time) string {
	return t.Format("2 January 2006")
}
