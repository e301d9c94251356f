package proposal

import (
	"context"

	"github.com/futig/proposal-backend/internal/entity"
	usecase "github.com/futig/proposal-backend/internal/usecase/proposal"
)

// ProposalUsecase is the business layer the handler depends on
type ProposalUsecase interface {
	Generate(ctx context.Context, survey *entity.Survey) (*entity.Proposal, error)
	GetProposal(ctx context.Context, id string) (*entity.Proposal, error)
	RenderDocument(ctx context.Context, id string, format entity.ResultFormat) (*usecase.RenderedDocument, error)
}
