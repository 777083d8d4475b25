package infra

// pdf.go — PDF generation using go-pdf/fpdf:
//   - PastedTextPDF renders pasted text into an A4 document with the brand
//     logo, so plain-text quotes or order confirmations can be filed like any
//     uploaded artifact.
//   - ProjectSummaryPDF renders a per-project purchase summary: totals
//     (excl VAT / VAT / incl VAT) and a table of purchases with status.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// SummaryTotals are the project report money totals.
type SummaryTotals struct {
	ExclVAT decimal.Decimal
	VAT     decimal.Decimal
	InclVAT decimal.Decimal
}

func currencyFmt(v decimal.Decimal, currency string) string {
	return currency + " " + v.StringFixed(2)
}

func addLogo(pdf *fpdf.Fpdf, logoPath string) {
	if logoPath == "" {
		return
	}
	if _, err := os.Stat(logoPath); err != nil {
		return
	}
	pdf.ImageOptions(logoPath, 10, 8, 30, 0, false, fpdf.ImageOptions{}, 0, "")
}

// PastedTextPDF writes text into a timestamped PDF under destDir and returns
// the generated filename and full path.
func PastedTextPDF(text, destDir, logoPath string) (string, string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", "", fmt.Errorf("pdf: create dest dir: %w", err)
	}
	filename := fmt.Sprintf("Pasted_%s.pdf", time.Now().Format("20060102_150405"))
	dest := filepath.Join(destDir, filename)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	addLogo(pdf, logoPath)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, "OppWorks — Pasted Document", "", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, text, "", "L", false)

	if err := pdf.OutputFileAndClose(dest); err != nil {
		return "", "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filename, dest, nil
}

// ProjectSummaryPDF writes the project report to destDir and returns the path.
func ProjectSummaryPDF(project *model.Project, purchases []model.Purchase, totals SummaryTotals, currency, logoPath, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create dest dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	addLogo(pdf, logoPath)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Project Summary — %s", project.Name), "", 1, "R", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Generated: "+workflow.FormatDate(time.Now()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Totals (excl): "+currencyFmt(totals.ExclVAT, currency), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "VAT: "+currencyFmt(totals.VAT, currency), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Total (incl): "+currencyFmt(totals.InclVAT, currency), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(55, 8, "Supplier", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount Excl", "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, "Status", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range purchases {
		supplier := ""
		if p.Supplier != nil {
			if p.Supplier.Company != nil && *p.Supplier.Company != "" {
				supplier = *p.Supplier.Company
			} else {
				supplier = p.Supplier.ContactName
			}
		}
		if len(supplier) > 28 {
			supplier = supplier[:28]
		}
		pdf.CellFormat(55, 8, supplier, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, p.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, currencyFmt(p.AmountExclVAT, currency), "1", 0, "R", false, 0, "")
		pdf.CellFormat(55, 8, p.Status, "1", 1, "L", false, 0, "")
	}

	out := filepath.Join(destDir, fmt.Sprintf("project_summary_%s.pdf", sanitizeName(project.Name)))
	if err := pdf.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return out, nil
}

func sanitizeName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			out = append(out, '_')
		case r == '/' || r == '\\' || r == ':':
			// skip path separators entirely
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
