package formatter

import (
	"bytes"
	"os"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "NotoSansJP"

	// Relative paths where the TTF font may live: next to the binary in a
	// deployed layout, or under the package when running from the repo root.
	// Without the font the formatter falls back to a core font, which cannot
	// render Japanese glyphs.
	pdfFontRuntimePath = "ttf/NotoSansJP-Regular.ttf"
	pdfFontSourcePath  = "internal/pkg/formatter/ttf/NotoSansJP-Regular.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// resolveFontPath tries to find the Japanese-capable font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}

	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}

	return ""
}

func (pf *PDFFormatter) Format(proposal *entity.Proposal) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Pin the document creation date to the proposal timestamp so the
	// same proposal always renders to the same bytes.
	pdf.SetCreationDate(proposal.CreatedAt)

	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		// Register regular and bold styles under the same family name
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	pdf.AddPage()

	// Header
	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, docTitle)
	pdf.Ln(12)
	pdf.SetFont(fontName, "", 14)
	pdf.Cell(0, 8, formatCompanyLine(proposal))
	pdf.Ln(8)
	pdf.SetFont(fontName, "", 10)
	pdf.Cell(0, 6, formatCreatedAt(proposal))
	pdf.Ln(12)

	writeHeading := func(heading string) {
		pdf.SetFont(fontName, "B", 14)
		pdf.Cell(0, 8, heading)
		pdf.Ln(10)
		pdf.SetFont(fontName, "", 11)
	}

	writeParagraph := func(text string) {
		_, lineHeight := pdf.GetFontSize()
		pdf.MultiCell(0, lineHeight*1.5, text, "", "", false)
		pdf.Ln(2)
	}

	// Summary
	writeHeading(headingSummary)
	writeParagraph(proposal.Summary)
	pdf.Ln(4)

	// Recommendations, in stored order
	writeHeading(headingRecommendations)
	for i := range proposal.Recommendations {
		rec := &proposal.Recommendations[i]

		pdf.SetFont(fontName, "B", 12)
		pdf.Cell(0, 7, rec.Solution)
		pdf.Ln(7)
		pdf.SetFont(fontName, "", 9)
		pdf.Cell(0, 5, rec.Category)
		pdf.Ln(6)

		pdf.SetFont(fontName, "", 11)
		writeParagraph(rec.Description)

		pdf.SetFont(fontName, "B", 11)
		writeParagraph(formatSavings(rec))

		pdf.SetFont(fontName, "", 10)
		for _, benefit := range rec.ExpectedBenefits {
			writeParagraph("• " + benefit)
		}
		pdf.Ln(3)
	}

	// Implementation steps as a numbered list
	writeHeading(headingSteps)
	for i, step := range proposal.ImplementationSteps {
		writeParagraph(formatStep(i, step))
	}
	pdf.Ln(4)

	// Fixed service menu, in catalog order
	writeHeading(headingServices)
	for i := range proposal.ServiceOptions {
		opt := &proposal.ServiceOptions[i]

		pdf.SetFont(fontName, "B", 12)
		pdf.Cell(0, 7, opt.Name)
		pdf.Ln(7)
		pdf.SetFont(fontName, "", 10)
		writeParagraph(opt.Description)
		writeParagraph(formatServiceDetails(opt))
		pdf.Ln(2)
	}

	// Closing contact block
	writeHeading(headingContact)
	writeParagraph(contactLine1)
	writeParagraph(contactLine2)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
