package formatter

import (
	"bytes"
	"html/template"

	"github.com/futig/proposal-backend/internal/entity"
)

const (
	htmlContentType   = "text/html; charset=utf-8"
	htmlFileExtension = ".html"
)

const htmlDocument = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.Proposal.CompanyName}}</title>
<style>
body { font-family: "Hiragino Sans", "Noto Sans JP", sans-serif; color: #1f2937; max-width: 800px; margin: 0 auto; padding: 30px; }
header { border-bottom: 2px solid #2563eb; padding-bottom: 10px; margin-bottom: 20px; }
h1 { font-size: 24px; margin: 0 0 10px 0; }
h2 { font-size: 16px; border-bottom: 1px solid #e5e7eb; padding-bottom: 5px; }
.date { font-size: 12px; color: #6b7280; }
.card { background: #f9fafb; border-radius: 5px; padding: 15px; margin-bottom: 15px; }
.category { display: inline-block; font-size: 10px; color: #2563eb; background: #dbeafe; border-radius: 3px; padding: 2px 8px; margin-bottom: 8px; }
.savings { font-weight: bold; }
ol li, ul li { margin-bottom: 6px; }
.details { font-size: 12px; color: #374151; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>{{.CompanyLine}}</p>
<p class="date">{{.CreatedLine}}</p>
</header>
<section>
<h2>{{.HeadingSummary}}</h2>
<p>{{.Proposal.Summary}}</p>
</section>
<section>
<h2>{{.HeadingRecommendations}}</h2>
{{range .Recommendations}}<div class="card">
<h3>{{.Solution}}</h3>
<span class="category">{{.Category}}</span>
<p>{{.Description}}</p>
<p class="savings">{{.SavingsLine}}</p>
<ul>
{{range .ExpectedBenefits}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{end}}</section>
<section>
<h2>{{.HeadingSteps}}</h2>
<ol>
{{range .Proposal.ImplementationSteps}}<li>{{.}}</li>
{{end}}</ol>
</section>
<section>
<h2>{{.HeadingServices}}</h2>
{{range .Services}}<div class="card">
<h3>{{.Name}}</h3>
<p>{{.Description}}</p>
<p class="details">{{.DetailsLine}}</p>
</div>
{{end}}</section>
<section>
<h2>{{.HeadingContact}}</h2>
<p>{{.ContactLine1}}</p>
<p>{{.ContactLine2}}</p>
</section>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("proposal").Parse(htmlDocument))

type htmlRecommendation struct {
	entity.Recommendation
	SavingsLine string
}

type htmlService struct {
	entity.ServiceOption
	DetailsLine string
}

type htmlDocumentData struct {
	Title                  string
	CompanyLine            string
	CreatedLine            string
	HeadingSummary         string
	HeadingRecommendations string
	HeadingSteps           string
	HeadingServices        string
	HeadingContact         string
	ContactLine1           string
	ContactLine2           string
	Proposal               *entity.Proposal
	Recommendations        []htmlRecommendation
	Services               []htmlService
}

type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

func (hf *HTMLFormatter) Format(proposal *entity.Proposal) ([]byte, error) {
	data := htmlDocumentData{
		Title:                  docTitle,
		CompanyLine:            formatCompanyLine(proposal),
		CreatedLine:            formatCreatedAt(proposal),
		HeadingSummary:         headingSummary,
		HeadingRecommendations: headingRecommendations,
		HeadingSteps:           headingSteps,
		HeadingServices:        headingServices,
		HeadingContact:         headingContact,
		ContactLine1:           contactLine1,
		ContactLine2:           contactLine2,
		Proposal:               proposal,
	}

	for i := range proposal.Recommendations {
		rec := proposal.Recommendations[i]
		data.Recommendations = append(data.Recommendations, htmlRecommendation{
			Recommendation: rec,
			SavingsLine:    formatSavings(&rec),
		})
	}

	for i := range proposal.ServiceOptions {
		opt := proposal.ServiceOptions[i]
		data.Services = append(data.Services, htmlService{
			ServiceOption: opt,
			DetailsLine:   formatServiceDetails(&opt),
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (hf *HTMLFormatter) ContentType() string {
	return htmlContentType
}

func (hf *HTMLFormatter) FileExtension() string {
	return htmlFileExtension
}
