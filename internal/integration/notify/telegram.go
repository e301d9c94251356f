package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramChannel posts the lead summary to a sales chat via a bot
type TelegramChannel struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegramChannel(cfg config.NotifyConfig, logger *zap.Logger) (*TelegramChannel, error) {
	endpoint := cfg.TelegramAPIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	// The bot library takes no context, so the client timeout is the only
	// bound on delivery. Keep it at the dispatcher's timeout.
	client := &http.Client{Timeout: cfg.Timeout}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramBotToken, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	return &TelegramChannel{
		bot:    bot,
		chatID: cfg.TelegramChatID,
		logger: logger,
	}, nil
}

func (c *TelegramChannel) Name() string {
	return "telegram"
}

func (c *TelegramChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	budget := survey.Budget
	if budget == "" {
		budget = "未設定"
	}

	var text strings.Builder
	text.WriteString("🎯 新しいAI活用ニーズ調査が完了しました！\n")
	fmt.Fprintf(&text, "会社名: %s\n", survey.CompanyName)
	fmt.Fprintf(&text, "業種: %s\n", survey.Industry)
	fmt.Fprintf(&text, "従業員数: %s\n", survey.EmployeeCount)
	fmt.Fprintf(&text, "予算: %s\n", budget)
	fmt.Fprintf(&text, "担当者: %s (%s)\n", survey.ContactInfo.Name, survey.ContactInfo.Email)
	fmt.Fprintf(&text, "課題: %s\n", strings.Join(survey.CurrentChallenges, ", "))
	fmt.Fprintf(&text, "提案ID: %s", proposal.ID)

	msg := tgbotapi.NewMessage(c.chatID, text.String())
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
