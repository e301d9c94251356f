package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/integration/common"
	pkghttp "github.com/futig/proposal-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends a system+user message pair to the chat-completions endpoint
// and returns the raw text of the first choice. Temperature and model come
// from config, not per call, so generations stay comparable across requests.
func (c *Connector) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctxzap.Info(ctx, "requesting completion from LLM service",
		zap.String("model", c.config.Model),
		zap.Int("prompt_length", len(userPrompt)),
	)

	req := &entity.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []entity.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.config.Temperature,
	}

	opts := append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))

	resp, err := retry.DoWithData(func() (*entity.ChatCompletionResponse, error) {
		var raw entity.ChatCompletionResponse
		if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.CompletionsEndpoint, req, &raw); err != nil {
			return nil, err
		}
		return &raw, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", entity.ErrEmptyCompletion
	}

	content := resp.Choices[0].Message.Content

	ctxzap.Info(ctx, "completion received", zap.Int("result_length", len(content)))

	return content, nil
}
