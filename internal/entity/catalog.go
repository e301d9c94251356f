package entity

// Survey form catalogs rendered by the intake UI. Submissions are not
// restricted to these values.
var (
	Industries = []string{
		"製造業", "IT・ソフトウェア", "金融・保険", "小売・EC", "医療・福祉",
		"コンサルティング", "不動産", "建設", "教育", "その他",
	}

	EmployeeCounts = []string{
		"1-10名", "11-50名", "51-100名", "101-300名", "301-1000名", "1000名以上",
	}

	Departments = []string{
		"営業・マーケティング", "バックオフィス", "カスタマーサポート",
		"人事・総務", "経営企画", "開発・技術", "その他",
	}

	ChallengeOptions = []string{
		"営業活動の効率化", "マーケティング施策の最適化", "顧客対応の自動化",
		"データ分析・レポート作成", "書類作成の自動化", "社内ナレッジ管理",
		"業務プロセスの標準化", "コスト削減", "その他",
	}

	Budgets = []string{
		"50万円未満", "50-100万円", "100-300万円", "300-500万円", "500万円以上", "未定",
	}

	Timelines = []string{
		"1ヶ月以内", "3ヶ月以内", "6ヶ月以内", "1年以内", "未定",
	}
)

// serviceOptions is the fixed three-entry service menu. Every proposal
// carries a copy of exactly these entries in this order.
var serviceOptions = []ServiceOption{
	{
		Type:        ServiceOptionTraining,
		Name:        "AI活用研修プログラム",
		Description: "ChatGPT・生成AI活用の基礎から実践まで、貴社の業務に特化した研修を実施",
		Duration:    "2日間",
		Price:       "50万円〜",
	},
	{
		Type:        ServiceOptionPoC,
		Name:        "PoC（概念実証）支援",
		Description: "小規模な実証実験で効果を確認してから本格導入を検討",
		Duration:    "1-2ヶ月",
		Price:       "100万円〜",
	},
	{
		Type:        ServiceOptionDevelopment,
		Name:        "AI システム開発",
		Description: "貴社専用のAIシステム・ツールを開発・運用支援",
		Duration:    "3-6ヶ月",
		Price:       "300万円〜",
	},
}

// ServiceCatalog returns the fixed service menu. Callers get a fresh slice so
// the catalog itself can never be mutated through a proposal.
func ServiceCatalog() []ServiceOption {
	catalog := make([]ServiceOption, len(serviceOptions))
	copy(catalog, serviceOptions)
	return catalog
}
