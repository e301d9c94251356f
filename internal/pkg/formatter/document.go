package formatter

import (
	"fmt"
	"strconv"

	"github.com/futig/proposal-backend/internal/entity"
)

// Section headings and literal document text, shared by every formatter so
// PDF, HTML and DOCX exports carry the same wording in the same order.
const (
	docTitle = "AI活用提案書"

	headingSummary         = "課題サマリー"
	headingRecommendations = "AI活用提案"
	headingSteps           = "導入ステップ"
	headingServices        = "サービスメニュー"
	headingContact         = "お問い合わせ"

	contactLine1 = "本提案についてご質問やご相談がございましたら、お気軽にお問い合わせください。"
	contactLine2 = "3営業日以内に担当者よりご連絡させていただきます。"
)

func sectionHeadings() []string {
	return []string{
		headingSummary,
		headingRecommendations,
		headingSteps,
		headingServices,
		headingContact,
	}
}

func formatCompanyLine(p *entity.Proposal) string {
	return p.CompanyName + " 様"
}

func formatCreatedAt(p *entity.Proposal) string {
	return "作成日: " + p.CreatedAt.Format("2006/01/02")
}

func formatSavings(rec *entity.Recommendation) string {
	return fmt.Sprintf("期待される効果: %s時間/月の削減", strconv.FormatFloat(rec.TimeSavingEstimate, 'f', -1, 64))
}

func formatStep(index int, step string) string {
	return fmt.Sprintf("%d. %s", index+1, step)
}

func formatServiceDetails(opt *entity.ServiceOption) string {
	return fmt.Sprintf("期間: %s / 料金: %s", opt.Duration, opt.Price)
}
