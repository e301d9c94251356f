package formatter

import (
	"fmt"

	"github.com/futig/proposal-backend/internal/entity"
)

// Formatter renders a proposal into one export format. Rendering is a pure
// function of the proposal value: identical input yields identical bytes.
type Formatter interface {
	Format(proposal *entity.Proposal) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	case entity.FormatHTML:
		return NewHTMLFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}
