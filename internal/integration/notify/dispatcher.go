package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	pkghttp "github.com/futig/proposal-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Channel delivers one kind of sales notification. Implementations own their
// transport and their error handling; the dispatcher only logs failures.
type Channel interface {
	Name() string
	Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error
}

// Dispatcher fans a generated proposal out to every configured channel.
// Channels are independent: they run concurrently, and a failure in one never
// affects the others or the caller.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	logger   *zap.Logger
}

func NewDispatcher(cfg config.NotifyConfig, baseURL string, logger *zap.Logger) *Dispatcher {
	var channels []Channel

	if cfg.ChatWebhookURL != "" {
		channels = append(channels, NewChatChannel(cfg, logger))
	}

	if cfg.TelegramBotToken != "" {
		telegram, err := NewTelegramChannel(cfg, logger)
		if err != nil {
			logger.Warn("telegram channel disabled: bot initialization failed", zap.Error(err))
		} else {
			channels = append(channels, telegram)
		}
	}

	if cfg.SMTPCfg.Host != "" {
		sender := newSMTPSender(cfg.SMTPCfg)
		if cfg.SMTPCfg.SalesEmail != "" {
			channels = append(channels, NewSalesEmailChannel(sender, cfg.SMTPCfg.SalesEmail))
		}
		channels = append(channels, NewCustomerEmailChannel(sender, baseURL))
	}

	if cfg.CRMCfg.Url != "" {
		channels = append(channels, NewCRMChannel(cfg.CRMCfg, logger))
	}

	logger.Info("notification dispatcher initialized", zap.Int("channels", len(channels)))

	return &Dispatcher{
		channels: channels,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

// Channels reports how many delivery channels are configured
func (d *Dispatcher) Channels() int {
	return len(d.channels)
}

// Notify delivers the survey and proposal to every configured channel.
// It never returns an error: each delivery catches and logs its own failure.
// With zero configured channels no outbound call is made.
func (d *Dispatcher) Notify(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) {
	if len(d.channels) == 0 {
		ctxzap.Debug(ctx, "no notification channels configured, skipping dispatch")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, channel := range d.channels {
		wg.Add(1)
		go func(ch Channel) {
			defer wg.Done()

			if err := ch.Send(ctx, survey, proposal); err != nil {
				ctxzap.Error(ctx, "notification delivery failed",
					zap.String("channel", ch.Name()),
					zap.String("company", survey.CompanyName),
					zap.String("proposal_id", proposal.ID),
					zap.Error(err),
				)
				return
			}

			ctxzap.Info(ctx, "notification delivered",
				zap.String("channel", ch.Name()),
				zap.String("proposal_id", proposal.ID),
			)
		}(channel)
	}

	wg.Wait()
}

// retryableDelivery reports whether a webhook delivery error is worth another
// attempt. 4xx responses mean a bad URL or revoked credentials, which no
// retry will fix.
func retryableDelivery(err error) bool {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode < 400 || httpErr.StatusCode >= 500
	}
	return true
}
