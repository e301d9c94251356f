package proposal

import (
	"context"

	"github.com/futig/proposal-backend/internal/entity"
)

// LLMConnector is the external text-completion capability
type LLMConnector interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Dispatcher delivers sales notifications, best-effort. Implementations must
// never propagate delivery failures.
type Dispatcher interface {
	Notify(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal)
}
