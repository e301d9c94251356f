package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	"go.uber.org/zap"
)

type stubChannel struct {
	name  string
	err   error
	calls atomic.Int64
}

func (c *stubChannel) Name() string {
	return c.name
}

func (c *stubChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	c.calls.Add(1)
	return c.err
}

func testArgs() (*entity.Survey, *entity.Proposal) {
	survey := &entity.Survey{
		CompanyName:       "株式会社アクメ",
		CurrentChallenges: []string{"営業活動の効率化"},
		ContactInfo:       entity.ContactInfo{Name: "山田太郎", Email: "taro@example.co.jp"},
	}
	proposal := &entity.Proposal{ID: "proposal_notify", CompanyName: survey.CompanyName}
	return survey, proposal
}

func TestDispatcherZeroChannels(t *testing.T) {
	d := NewDispatcher(config.NotifyConfig{Timeout: time.Second}, "http://localhost:8080", zap.NewNop())

	if got := d.Channels(); got != 0 {
		t.Fatalf("Channels() = %d, want 0", got)
	}

	// Must return without any outbound call or panic
	survey, proposal := testArgs()
	d.Notify(context.Background(), survey, proposal)
}

func TestDispatcherFansOutToAllChannels(t *testing.T) {
	first := &stubChannel{name: "first"}
	second := &stubChannel{name: "second"}

	d := &Dispatcher{
		channels: []Channel{first, second},
		timeout:  time.Second,
		logger:   zap.NewNop(),
	}

	survey, proposal := testArgs()
	d.Notify(context.Background(), survey, proposal)

	if got := first.calls.Load(); got != 1 {
		t.Errorf("first channel called %d times, want 1", got)
	}
	if got := second.calls.Load(); got != 1 {
		t.Errorf("second channel called %d times, want 1", got)
	}
}

func TestDispatcherChannelFailureDoesNotStopOthers(t *testing.T) {
	failing := &stubChannel{name: "failing", err: errors.New("delivery refused")}
	healthy := &stubChannel{name: "healthy"}

	d := &Dispatcher{
		channels: []Channel{failing, healthy},
		timeout:  time.Second,
		logger:   zap.NewNop(),
	}

	survey, proposal := testArgs()
	d.Notify(context.Background(), survey, proposal)

	if got := healthy.calls.Load(); got != 1 {
		t.Errorf("healthy channel called %d times, want 1", got)
	}
}

func TestNewDispatcherChannelSelection(t *testing.T) {
	cfg := config.NotifyConfig{
		Timeout:        time.Second,
		ChatWebhookURL: "https://hooks.example.com/services/T000/B000/XXXX",
		SMTPCfg: config.SMTPConfig{
			Host:       "smtp.example.com",
			Port:       587,
			From:       "noreply@example.com",
			SalesEmail: "sales@example.com",
		},
	}
	cfg.CRMCfg.Url = "https://crm.example.com/webhook"

	d := NewDispatcher(cfg, "http://localhost:8080", zap.NewNop())

	// chat + sales email + customer email + crm
	if got := d.Channels(); got != 4 {
		t.Errorf("Channels() = %d, want 4", got)
	}
}
