package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/integration/common"
	pkgRetry "github.com/futig/proposal-backend/internal/pkg/retry"
	pkghttp "github.com/futig/proposal-backend/pkg/http"
	"go.uber.org/zap"
)

// crmRecord is the flattened lead record the CRM endpoint ingests
type crmRecord struct {
	CompanyName     string   `json:"companyName"`
	Industry        string   `json:"industry"`
	EmployeeCount   string   `json:"employeeCount"`
	Department      string   `json:"department"`
	ContactName     string   `json:"contactName"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone,omitempty"`
	Position        string   `json:"position,omitempty"`
	Challenges      []string `json:"challenges"`
	Budget          string   `json:"budget,omitempty"`
	Timeline        string   `json:"timeline,omitempty"`
	ProposalID      string   `json:"proposalId"`
	ProposalSummary string   `json:"proposalSummary"`
	ExpectedSavings float64  `json:"expectedSavings"`
	Status          string   `json:"status"`
	Source          string   `json:"source"`
	CreatedAt       string   `json:"createdAt"`
}

// CRMChannel pushes a lead record to a bearer-token JSON webhook
type CRMChannel struct {
	config    config.CRMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewCRMChannel(cfg config.CRMConnectorConfig, logger *zap.Logger) *CRMChannel {
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = *pkgRetry.DefaultRetryConfig()
	}

	return &CRMChannel{
		config:    cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		logger:    logger,
	}
}

func (c *CRMChannel) Name() string {
	return "crm"
}

func (c *CRMChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	record := &crmRecord{
		CompanyName:     survey.CompanyName,
		Industry:        survey.Industry,
		EmployeeCount:   survey.EmployeeCount,
		Department:      survey.Department,
		ContactName:     survey.ContactInfo.Name,
		ContactEmail:    survey.ContactInfo.Email,
		ContactPhone:    survey.ContactInfo.Phone,
		Position:        survey.ContactInfo.Position,
		Challenges:      survey.CurrentChallenges,
		Budget:          survey.Budget,
		Timeline:        survey.Timeline,
		ProposalID:      proposal.ID,
		ProposalSummary: proposal.Summary,
		ExpectedSavings: proposal.ExpectedSavings(),
		Status:          "lead",
		Source:          c.config.SourceTag,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	opts := append(c.config.Retry.ToRetryOptions(), retry.Context(ctx), retry.RetryIf(retryableDelivery))

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, "", record, nil)
	}, opts...)
	if err != nil {
		return fmt.Errorf("post crm record: %w", err)
	}

	return nil
}
