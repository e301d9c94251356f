package formatter

import (
	"bytes"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(proposal *entity.Proposal) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	addStyled := func(style, text string) {
		par := doc.AddParagraph()
		if style != "" {
			par.SetStyle(style)
		}
		par.AddRun().AddText(text)
	}

	// Header
	addStyled("Heading1", docTitle)
	addStyled("", formatCompanyLine(proposal))
	addStyled("", formatCreatedAt(proposal))
	doc.AddParagraph()

	// Summary
	addStyled("Heading2", headingSummary)
	addStyled("", proposal.Summary)
	doc.AddParagraph()

	// Recommendations, in stored order
	addStyled("Heading2", headingRecommendations)
	for i := range proposal.Recommendations {
		rec := &proposal.Recommendations[i]
		addStyled("Heading3", rec.Solution)
		addStyled("", rec.Category)
		addStyled("", rec.Description)
		addStyled("", formatSavings(rec))
		for _, benefit := range rec.ExpectedBenefits {
			addStyled("", "• "+benefit)
		}
		doc.AddParagraph()
	}

	// Implementation steps
	addStyled("Heading2", headingSteps)
	for i, step := range proposal.ImplementationSteps {
		addStyled("", formatStep(i, step))
	}
	doc.AddParagraph()

	// Service menu
	addStyled("Heading2", headingServices)
	for i := range proposal.ServiceOptions {
		opt := &proposal.ServiceOptions[i]
		addStyled("Heading3", opt.Name)
		addStyled("", opt.Description)
		addStyled("", formatServiceDetails(opt))
	}
	doc.AddParagraph()

	// Contact
	addStyled("Heading2", headingContact)
	addStyled("", contactLine1)
	addStyled("", contactLine2)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
