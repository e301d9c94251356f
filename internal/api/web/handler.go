package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/pkg/logger"
	"github.com/futig/proposal-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ProposalReader fetches stored proposals for the view page
type ProposalReader interface {
	GetProposal(ctx context.Context, id string) (*entity.Proposal, error)
}

// Handler serves the survey intake form and the proposal view page
type Handler struct {
	reader    ProposalReader
	templates *template.Template
}

func NewHandler(reader ProposalReader) *Handler {
	return &Handler{
		reader: reader,
		templates: template.Must(template.New("web").Funcs(template.FuncMap{
			"complexityLabel": complexityLabel,
			"inc":             func(i int) int { return i + 1 },
		}).ParseFS(templatesFS, "templates/*.html")),
	}
}

// Index handles GET / with the survey intake form
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Index")

	data := entity.SurveyCatalogs{
		Industries:       entity.Industries,
		EmployeeCounts:   entity.EmployeeCounts,
		Departments:      entity.Departments,
		ChallengeOptions: entity.ChallengeOptions,
		Budgets:          entity.Budgets,
		Timelines:        entity.Timelines,
	}

	h.renderPage(ctx, w, "index.html", data)
}

// Proposal handles GET /proposal/{proposal_id}. Browsers get the tabbed view
// page, everything else gets the proposal as JSON so the route also serves
// API clients following the emailed link.
func (h *Handler) Proposal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	proposalID := chi.URLParam(r, "proposal_id")

	ctx = logger.AddFields(ctx,
		zap.String("proposal_id", proposalID),
		zap.String("action", "ViewProposal"),
	)

	proposal, err := h.reader.GetProposal(ctx, proposalID)
	if err != nil {
		ctxzap.Warn(ctx, "proposal not found", zap.Error(err))
		h.respondNotFound(w, r)
		return
	}

	if !wantsHTML(r) {
		response.Success(w, proposal)
		return
	}

	h.renderPage(ctx, w, "proposal.html", proposal)
}

// renderPage executes the template into a buffer first so a mid-render
// failure becomes a clean 500 instead of a truncated 200 page.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		ctxzap.Error(ctx, "failed to render page",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (h *Handler) respondNotFound(w http.ResponseWriter, r *http.Request) {
	if !wantsHTML(r) {
		response.Error(w, http.StatusNotFound, "proposal not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("<!DOCTYPE html><html lang=\"ja\"><body><h1>提案書が見つかりません</h1><p><a href=\"/\">調査フォームへ戻る</a></p></body></html>"))
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func complexityLabel(c entity.ImplementationComplexity) string {
	switch c {
	case entity.ComplexityLow:
		return "低"
	case entity.ComplexityMedium:
		return "中"
	case entity.ComplexityHigh:
		return "高"
	default:
		return "不明"
	}
}
