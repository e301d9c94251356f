package repository

import (
	"context"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

var _ ProposalRepository = &ProposalMemory{}

// ProposalMemory keeps proposals in process memory with a TTL. It is the
// default store: proposals only need to outlive the submit/export round trip.
type ProposalMemory struct {
	cache *gocache.Cache
}

func NewProposalMemory(ttl time.Duration) *ProposalMemory {
	return &ProposalMemory{
		cache: gocache.New(ttl, ttl/2),
	}
}

func (r *ProposalMemory) Put(ctx context.Context, proposal *entity.Proposal) error {
	r.cache.Set(proposal.ID, proposal, gocache.DefaultExpiration)
	return nil
}

func (r *ProposalMemory) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	value, found := r.cache.Get(id)
	if !found {
		return nil, entity.ErrProposalNotFound
	}

	proposal, ok := value.(*entity.Proposal)
	if !ok {
		return nil, entity.ErrProposalNotFound
	}

	return proposal, nil
}
