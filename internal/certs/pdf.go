package certs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/visaetude/prepcore/ent"
)

// renderPDF writes a landscape A4 certificate and returns its
// media-relative path.
func renderPDF(cfg Config, cert *ent.CEFRCertificate, verifyURL string) (string, error) {
	dir := filepath.Join(cfg.MediaRoot, cfg.CertsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create certificates dir: %w", err)
	}

	name := fmt.Sprintf("certificate_%s.pdf", cert.PublicID)
	absPath := filepath.Join(dir, name)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("CEFR Certificate", false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border.
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(30, 58, 95)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")

	// Heading.
	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(30, 58, 95)
	pdf.SetY(30)
	pdf.CellFormat(0, 14, "Certificat de niveau CECR", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 10, "Ce document atteste que", "", 1, "C", false, 0, "")

	// Learner.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 14, cert.UserID, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 10, "a atteint le niveau", "", 1, "C", false, 0, "")

	// Level and exam.
	pdf.SetFont("Helvetica", "B", 40)
	pdf.SetTextColor(30, 58, 95)
	pdf.CellFormat(0, 20, string(cert.Level), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 10, fmt.Sprintf("Examen %s — délivré le %s", cert.ExamCode, issuedOn(cert.IssuedAt)), "", 1, "C", false, 0, "")

	// QR code linking to the verification endpoint.
	qrPNG, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode QR: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verify-qr", pageW-48, pageH-48, 32, 32, false, opts, 0, "")

	// Signature block.
	pdf.SetY(pageH - 42)
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "I", 16)
	pdf.SetTextColor(30, 58, 95)
	pdf.CellFormat(80, 10, "PrepCore", "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 100, pdf.GetY())
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetX(20)
	pdf.CellFormat(80, 6, "Direction pédagogique", "", 1, "L", false, 0, "")

	// Public id under the QR.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(pageW-48, pageH-15)
	pdf.CellFormat(32, 5, cert.PublicID, "", 0, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	return filepath.ToSlash(filepath.Join(cfg.CertsSubdir, name)), nil
}
