package proposal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/pkg/logger"
	"github.com/futig/proposal-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ProposalUsecase
	validator *validator.Validator
}

func NewHandler(usecase ProposalUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Analyze handles POST /analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var survey entity.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		ctxzap.Error(ctx, "failed to decode survey", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "analyzing survey",
		zap.String("company", survey.CompanyName),
		zap.String("industry", survey.Industry),
	)

	proposal, err := h.usecase.Generate(ctx, &survey)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "survey analyzed successfully", zap.String("proposal_id", proposal.ID))
	h.respondJSON(w, http.StatusOK, proposal)
}

// GenerateDocument handles POST /generate-document
func (h *Handler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateDocument")

	var req entity.GenerateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerateDocument(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.String("proposal_id", req.ProposalID),
		zap.String("format", string(req.Format)),
	)

	doc, err := h.usecase.RenderDocument(ctx, req.ProposalID, req.Format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "document generated successfully", zap.Int("size_bytes", len(doc.Bytes)))

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename})
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Bytes)
}

// Helper methods
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrProposalNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "proposal not found", err)
	} else if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidEmail) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, fmt.Sprintf("invalid survey: %v", err), err)
	} else if errors.Is(err, entity.ErrUnsupportedFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported document format", err)
	} else if errors.Is(err, entity.ErrCompletionFailed) || errors.Is(err, entity.ErrEmptyCompletion) || errors.Is(err, entity.ErrMalformedCompletion) {
		h.respondError(ctx, w, http.StatusInternalServerError, "proposal generation failed", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
