package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	pkgRetry "github.com/futig/proposal-backend/internal/pkg/retry"
	pkghttp "github.com/futig/proposal-backend/pkg/http"
	"go.uber.org/zap"
)

// Slack-compatible webhook payload
type chatMessage struct {
	Text        string           `json:"text"`
	Attachments []chatAttachment `json:"attachments,omitempty"`
}

type chatAttachment struct {
	Color  string      `json:"color,omitempty"`
	Fields []chatField `json:"fields"`
	Footer string      `json:"footer,omitempty"`
	Ts     int64       `json:"ts,omitempty"`
}

type chatField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// ChatChannel posts a structured lead summary to a chat webhook
type ChatChannel struct {
	webhookURL string
	connector  *pkghttp.Connector
	retryCfg   pkgRetry.RetryConfig
	logger     *zap.Logger
}

func NewChatChannel(cfg config.NotifyConfig, logger *zap.Logger) *ChatChannel {
	connector := pkghttp.NewConnector(
		&pkghttp.ConnectorConfig{Logger: logger},
		pkghttp.WithRequestTimeout(cfg.Timeout),
		pkghttp.WithRequestLogging(),
	)

	retryCfg := cfg.Retry
	if retryCfg.Attempts == 0 {
		retryCfg = *pkgRetry.DefaultRetryConfig()
	}

	return &ChatChannel{
		webhookURL: cfg.ChatWebhookURL,
		connector:  connector,
		retryCfg:   retryCfg,
		logger:     logger,
	}
}

func (c *ChatChannel) Name() string {
	return "chat"
}

func (c *ChatChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	budget := survey.Budget
	if budget == "" {
		budget = "未設定"
	}

	msg := &chatMessage{
		Text: "🎯 新しいAI活用ニーズ調査が完了しました！",
		Attachments: []chatAttachment{
			{
				Color: "good",
				Fields: []chatField{
					{Title: "会社名", Value: survey.CompanyName, Short: true},
					{Title: "業種", Value: survey.Industry, Short: true},
					{Title: "従業員数", Value: survey.EmployeeCount, Short: true},
					{Title: "予算", Value: budget, Short: true},
					{Title: "担当者", Value: fmt.Sprintf("%s (%s)", survey.ContactInfo.Name, survey.ContactInfo.Email)},
					{Title: "課題", Value: strings.Join(survey.CurrentChallenges, ", ")},
					{Title: "提案ID", Value: proposal.ID},
				},
				Footer: "AI活用ニーズ調査システム",
				Ts:     time.Now().Unix(),
			},
		},
	}

	opts := append(c.retryCfg.ToRetryOptions(), retry.Context(ctx), retry.RetryIf(retryableDelivery))

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, "", msg, nil, pkghttp.WithURL(c.webhookURL))
	}, opts...)
	if err != nil {
		return fmt.Errorf("post chat webhook: %w", err)
	}

	return nil
}
