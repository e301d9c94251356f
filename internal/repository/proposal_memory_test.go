package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
)

func TestProposalMemoryPutGet(t *testing.T) {
	repo := NewProposalMemory(time.Hour)
	ctx := context.Background()

	proposal := &entity.Proposal{
		ID:          "proposal_mem",
		CompanyName: "株式会社アクメ",
		Summary:     "サマリー",
		CreatedAt:   time.Now().UTC(),
	}

	if err := repo.Put(ctx, proposal); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := repo.Get(ctx, proposal.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.CompanyName != proposal.CompanyName {
		t.Errorf("CompanyName = %q, want %q", got.CompanyName, proposal.CompanyName)
	}
}

func TestProposalMemoryGetMissing(t *testing.T) {
	repo := NewProposalMemory(time.Hour)

	if _, err := repo.Get(context.Background(), "proposal_absent"); !errors.Is(err, entity.ErrProposalNotFound) {
		t.Errorf("Get() error = %v, want ErrProposalNotFound", err)
	}
}

func TestProposalMemoryExpiry(t *testing.T) {
	repo := NewProposalMemory(10 * time.Millisecond)
	ctx := context.Background()

	proposal := &entity.Proposal{ID: "proposal_short", CreatedAt: time.Now().UTC()}
	if err := repo.Put(ctx, proposal); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := repo.Get(ctx, proposal.ID); !errors.Is(err, entity.ErrProposalNotFound) {
		t.Errorf("Get() after TTL error = %v, want ErrProposalNotFound", err)
	}
}
