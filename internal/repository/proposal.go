package repository

import (
	"context"

	"github.com/futig/proposal-backend/internal/entity"
)

// ProposalRepository defines the interface for proposal storage. Proposals
// are written exactly once at generation time and read back for document
// export and the online proposal view.
type ProposalRepository interface {
	Put(ctx context.Context, proposal *entity.Proposal) error
	Get(ctx context.Context, id string) (*entity.Proposal, error)
}
