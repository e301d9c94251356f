package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
)

func sampleProposal() *entity.Proposal {
	return &entity.Proposal{
		ID:          "proposal_test",
		CompanyName: "株式会社アクメ",
		Summary:     "営業資料作成と問い合わせ対応に工数がかかっている。",
		Recommendations: []entity.Recommendation{
			{
				Category:                 "営業効率化",
				Solution:                 "提案書自動生成アシスタント",
				Description:              "過去の提案書から初稿を自動生成します。",
				ExpectedBenefits:         []string{"資料作成時間の短縮", "提案品質の均一化"},
				TimeSavingEstimate:       20,
				ImplementationComplexity: entity.ComplexityMedium,
				SuggestedTools:           []string{"ChatGPT API"},
			},
			{
				Category:                 "顧客対応自動化",
				Solution:                 "問い合わせ一次対応ボット",
				Description:              "よくある問い合わせをボットが一次回答します。",
				ExpectedBenefits:         []string{"対応時間の短縮"},
				TimeSavingEstimate:       12.5,
				ImplementationComplexity: entity.ComplexityLow,
				SuggestedTools:           []string{"FAQ検索"},
			},
		},
		DevelopmentScope:    []string{"提案書生成ツールの開発"},
		ImplementationSteps: []string{"現状業務のヒアリング", "PoC実施", "本格導入"},
		ServiceOptions:      entity.ServiceCatalog(),
		CreatedAt:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

// assertOrdered checks that every needle appears in s, each one after
// the previous.
func assertOrdered(t *testing.T, s string, needles []string) {
	t.Helper()
	offset := 0
	for _, needle := range needles {
		idx := strings.Index(s[offset:], needle)
		if idx < 0 {
			t.Fatalf("missing or out of order: %q", needle)
		}
		offset += idx + len(needle)
	}
}

func TestHTMLFormatter(t *testing.T) {
	proposal := sampleProposal()
	f := NewHTMLFormatter()

	data, err := f.Format(proposal)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	html := string(data)

	assertOrdered(t, html, sectionHeadings())
	assertOrdered(t, html, []string{"提案書自動生成アシスタント", "問い合わせ一次対応ボット"})

	for _, want := range []string{
		docTitle,
		"株式会社アクメ 様",
		"作成日: 2025/06/01",
		"期待される効果: 20時間/月の削減",
		"期待される効果: 12.5時間/月の削減",
		"AI活用研修プログラム",
		"期間: 2日間 / 料金: 50万円〜",
		contactLine1,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html output does not contain %q", want)
		}
	}

	if f.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("ContentType() = %q", f.ContentType())
	}
	if f.FileExtension() != ".html" {
		t.Errorf("FileExtension() = %q", f.FileExtension())
	}
}

func TestPDFFormatter(t *testing.T) {
	proposal := sampleProposal()
	f := NewPDFFormatter()

	data, err := f.Format(proposal)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF magic")
	}

	if f.ContentType() != "application/pdf" {
		t.Errorf("ContentType() = %q", f.ContentType())
	}
	if f.FileExtension() != ".pdf" {
		t.Errorf("FileExtension() = %q", f.FileExtension())
	}
}

func TestPDFFormatterDeterministic(t *testing.T) {
	proposal := sampleProposal()
	f := NewPDFFormatter()

	first, err := f.Format(proposal)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	second, err := f.Format(proposal)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("rendering the same proposal twice produced different bytes")
	}
}

func TestDOCXFormatter(t *testing.T) {
	proposal := sampleProposal()
	f := NewDOCXFormatter()

	data, err := f.Format(proposal)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "license") {
			t.Skipf("unioffice license not configured: %v", err)
		}
		t.Fatalf("Format() error = %v", err)
	}
	// DOCX is a zip container
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output does not start with the zip magic")
	}

	if f.FileExtension() != ".docx" {
		t.Errorf("FileExtension() = %q", f.FileExtension())
	}
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	for _, format := range []entity.ResultFormat{entity.FormatPDF, entity.FormatHTML, entity.FormatDOCX} {
		if _, err := factory.Create(format); err != nil {
			t.Errorf("Create(%q) error = %v", format, err)
		}
	}

	if _, err := factory.Create("xlsx"); !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Errorf("Create(xlsx) error = %v, want ErrUnsupportedFormat", err)
	}
}
