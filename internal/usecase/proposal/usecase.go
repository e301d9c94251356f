package proposal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/pkg/formatter"
	"github.com/futig/proposal-backend/internal/pkg/validator"
	"github.com/futig/proposal-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// RenderedDocument is a proposal exported into one download format
type RenderedDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// Usecase implements proposal generation, retrieval and document export
type Usecase struct {
	repo       repository.ProposalRepository
	llm        LLMConnector
	dispatcher Dispatcher
	validator  *validator.Validator
	factory    *formatter.Factory
	logger     *zap.Logger
}

// NewUsecase creates a new proposal use case. dispatcher may be nil in
// deployments that send no notifications (tests, local runs).
func NewUsecase(
	repo repository.ProposalRepository,
	llm LLMConnector,
	dispatcher Dispatcher,
	validator *validator.Validator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		repo:       repo,
		llm:        llm,
		dispatcher: dispatcher,
		validator:  validator,
		factory:    formatter.NewFactory(),
		logger:     logger,
	}
}

// Generate turns a validated survey into a stored proposal. The notification
// dispatch runs detached from the request: it can neither delay nor fail the
// caller's response.
func (uc *Usecase) Generate(ctx context.Context, survey *entity.Survey) (*entity.Proposal, error) {
	if err := uc.validator.ValidateSurvey(survey); err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "generating proposal",
		zap.String("company", survey.CompanyName),
		zap.String("industry", survey.Industry),
		zap.Int("challenges", len(survey.CurrentChallenges)),
	)

	raw, err := uc.llm.Complete(ctx, systemPrompt, buildPrompt(survey))
	if err != nil {
		return nil, fmt.Errorf("complete survey analysis: %w", err)
	}

	payload, err := parseCompletion(raw)
	if err != nil {
		ctxzap.Error(ctx, "completion did not match the expected shape",
			zap.String("company", survey.CompanyName),
			zap.Error(err),
		)
		return nil, err
	}

	proposal := &entity.Proposal{
		ID:                  newProposalID(),
		CompanyName:         survey.CompanyName,
		Summary:             payload.Summary,
		Recommendations:     payload.Recommendations,
		DevelopmentScope:    payload.DevelopmentScope,
		ImplementationSteps: payload.ImplementationSteps,
		ServiceOptions:      entity.ServiceCatalog(),
		CreatedAt:           time.Now().UTC(),
	}

	if err := uc.repo.Put(ctx, proposal); err != nil {
		return nil, fmt.Errorf("store proposal: %w", err)
	}

	ctxzap.Info(ctx, "proposal generated",
		zap.String("proposal_id", proposal.ID),
		zap.Int("recommendations", len(proposal.Recommendations)),
	)

	if uc.dispatcher != nil {
		// Detached context: the dispatch must survive the handler returning,
		// but keeps the request-scoped logger for traceability.
		bgCtx := ctxzap.ToContext(context.Background(), ctxzap.Extract(ctx))
		go uc.dispatcher.Notify(bgCtx, survey, proposal)
	}

	return proposal, nil
}

// GetProposal returns a stored proposal by id
func (uc *Usecase) GetProposal(ctx context.Context, id string) (*entity.Proposal, error) {
	proposal, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal %s: %w", id, err)
	}

	return proposal, nil
}

// RenderDocument exports a stored proposal in the requested format.
// Format defaults to PDF when empty.
func (uc *Usecase) RenderDocument(ctx context.Context, id string, format entity.ResultFormat) (*RenderedDocument, error) {
	if format == "" {
		format = entity.FormatPDF
	}

	proposal, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal %s: %w", id, err)
	}

	fmtr, err := uc.factory.Create(format)
	if err != nil {
		return nil, err
	}

	data, err := fmtr.Format(proposal)
	if err != nil {
		return nil, fmt.Errorf("render %s document: %w", format, err)
	}

	ctxzap.Info(ctx, "document rendered",
		zap.String("proposal_id", id),
		zap.String("format", string(format)),
		zap.Int("size_bytes", len(data)),
	)

	return &RenderedDocument{
		Bytes:       data,
		ContentType: fmtr.ContentType(),
		Filename:    fmt.Sprintf("AI活用提案書_%s%s", proposal.CompanyName, fmtr.FileExtension()),
	}, nil
}

func newProposalID() string {
	return "proposal_" + uuid.New().String()
}

// parseCompletion parses the raw completion text into a proposal payload and
// rejects anything that does not match the documented shape. Models often
// wrap JSON in markdown fences, so those are stripped first.
func parseCompletion(raw string) (*entity.ProposalPayload, error) {
	text := stripCodeFences(raw)

	var payload entity.ProposalPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedCompletion, err)
	}

	if strings.TrimSpace(payload.Summary) == "" {
		return nil, fmt.Errorf("%w: summary is empty", entity.ErrMalformedCompletion)
	}
	if len(payload.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: no recommendations", entity.ErrMalformedCompletion)
	}

	for i := range payload.Recommendations {
		rec := &payload.Recommendations[i]
		if strings.TrimSpace(rec.Solution) == "" {
			return nil, fmt.Errorf("%w: recommendation %d has no solution", entity.ErrMalformedCompletion, i)
		}
		if rec.TimeSavingEstimate < 0 {
			return nil, fmt.Errorf("%w: recommendation %d has negative time saving", entity.ErrMalformedCompletion, i)
		}
		if err := rec.ImplementationComplexity.Validate(); err != nil {
			return nil, fmt.Errorf("%w: recommendation %d: %v", entity.ErrMalformedCompletion, i, err)
		}
	}

	return &payload, nil
}

func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	return strings.TrimSpace(text)
}
