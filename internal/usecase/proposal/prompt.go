package proposal

import (
	"fmt"
	"strings"

	"github.com/futig/proposal-backend/internal/entity"
)

const systemPrompt = "あなたはAI活用コンサルタントとして、企業の業務効率化提案を行う専門家です。具体的で実行可能な提案を心がけてください。"

const promptTemplate = `
以下の企業情報を分析し、AI活用による業務効率化の提案を作成してください。

企業情報:
- 会社名: %s
- 業種: %s
- 従業員数: %s
- 対象部門: %s
- 現在の課題: %s
- 業務フロー詳細: %s
- 予算: %s
- 導入時期: %s

以下の形式でJSONレスポンスを生成してください:

{
  "summary": "企業の課題を3行程度で要約",
  "recommendations": [
    {
      "category": "カテゴリ名（例：営業効率化、顧客対応自動化等）",
      "solution": "具体的なソリューション名",
      "description": "解決策の詳細説明",
      "expectedBenefits": ["期待される効果1", "期待される効果2"],
      "timeSavingEstimate": 削減時間数（時間/月）,
      "implementationComplexity": "low/medium/high",
      "suggestedTools": ["推奨ツール1", "推奨ツール2"]
    }
  ],
  "developmentScope": ["開発範囲1", "開発範囲2"],
  "implementationSteps": ["実装ステップ1", "実装ステップ2"]
}

実用性と具体性を重視し、ROIが明確になるよう数値も含めて提案してください。
`

// buildPrompt embeds every survey field into the consulting instruction
func buildPrompt(survey *entity.Survey) string {
	return fmt.Sprintf(promptTemplate,
		survey.CompanyName,
		survey.Industry,
		survey.EmployeeCount,
		survey.Department,
		strings.Join(survey.CurrentChallenges, ", "),
		survey.WorkflowDescription,
		survey.Budget,
		survey.Timeline,
	)
}
