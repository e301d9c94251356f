package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned completion for local development and tests
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockCompletion = `{
  "summary": "営業部門を中心に手作業によるデータ入力と報告書作成が多く、担当者の時間を大きく消費しています。生成AIの活用により、定型業務の自動化と情報共有の効率化が見込めます。まずは小規模な実証から始めることを推奨します。",
  "recommendations": [
    {
      "category": "営業効率化",
      "solution": "商談記録の自動要約システム",
      "description": "商談メモや通話録音をAIが自動で要約し、CRMへ登録します。担当者は確認と修正のみを行います。",
      "expectedBenefits": ["報告書作成時間の大幅削減", "商談情報の共有品質向上"],
      "timeSavingEstimate": 20,
      "implementationComplexity": "medium",
      "suggestedTools": ["ChatGPT API", "既存CRM連携"]
    },
    {
      "category": "書類作成の自動化",
      "solution": "提案書ドラフト自動生成",
      "description": "過去の提案書と顧客情報をもとに、AIが提案書の初稿を生成します。",
      "expectedBenefits": ["提案書作成の着手時間短縮", "品質の標準化"],
      "timeSavingEstimate": 12,
      "implementationComplexity": "low",
      "suggestedTools": ["生成AIテンプレート"]
    }
  ],
  "developmentScope": ["商談要約パイプラインの構築", "CRM連携コネクタの開発"],
  "implementationSteps": ["現状業務フローのヒアリング", "PoCによる効果検証", "本番導入と社内研修"]
}`

// Complete returns a fixed, valid proposal payload
func (m *MockConnector) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] requesting completion from LLM",
		zap.Int("prompt_length", len(userPrompt)),
	)

	ctxzap.Info(ctx, "[MOCK] completion generated", zap.Int("result_length", len(mockCompletion)))
	return mockCompletion, nil
}
