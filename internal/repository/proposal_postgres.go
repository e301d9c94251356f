package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ProposalRepository = &ProposalPostgres{}

// ProposalPostgres implements ProposalRepository using PostgreSQL. The full
// proposal value is stored as JSONB next to a couple of queryable columns.
type ProposalPostgres struct {
	db *pgxpool.Pool
}

func NewProposalPostgres(db *pgxpool.Pool) *ProposalPostgres {
	return &ProposalPostgres{db: db}
}

func (r *ProposalPostgres) Put(ctx context.Context, proposal *entity.Proposal) error {
	payload, err := json.Marshal(proposal)
	if err != nil {
		return fmt.Errorf("marshal proposal: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO proposals (id, company_name, payload, created_at) VALUES ($1, $2, $3, $4)`,
		proposal.ID, proposal.CompanyName, payload, proposal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}

	return nil
}

func (r *ProposalPostgres) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM proposals WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrProposalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select proposal: %w", err)
	}

	var proposal entity.Proposal
	if err := json.Unmarshal(payload, &proposal); err != nil {
		return nil, fmt.Errorf("unmarshal proposal: %w", err)
	}

	return &proposal, nil
}
