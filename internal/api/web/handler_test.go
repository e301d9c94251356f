package web

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/go-chi/chi/v5"
)

type fakeReader struct {
	proposal *entity.Proposal
}

func (r *fakeReader) GetProposal(ctx context.Context, id string) (*entity.Proposal, error) {
	if r.proposal == nil || r.proposal.ID != id {
		return nil, entity.ErrProposalNotFound
	}
	return r.proposal, nil
}

func testProposal() *entity.Proposal {
	return &entity.Proposal{
		ID:          "proposal_web_test",
		CompanyName: "株式会社アクメ",
		Summary:     "営業資料作成に工数がかかっている。",
		Recommendations: []entity.Recommendation{
			{
				Category:                 "営業効率化",
				Solution:                 "提案書自動生成アシスタント",
				Description:              "初稿を自動生成します。",
				ExpectedBenefits:         []string{"時間短縮"},
				TimeSavingEstimate:       20,
				ImplementationComplexity: entity.ComplexityMedium,
				SuggestedTools:           []string{"ChatGPT API"},
			},
		},
		ImplementationSteps: []string{"ヒアリング", "PoC実施"},
		ServiceOptions:      entity.ServiceCatalog(),
		CreatedAt:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newTestRouter(reader ProposalReader) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(reader))
	return r
}

func TestIndexRendersSurveyForm(t *testing.T) {
	router := newTestRouter(&fakeReader{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"AI活用ニーズ調査システム",
		"会社名",
		"現在の課題",
		"AI分析を実行する",
		entity.Industries[0],
		entity.ChallengeOptions[0],
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page does not contain %q", want)
		}
	}
}

func TestProposalPageHTML(t *testing.T) {
	router := newTestRouter(&fakeReader{proposal: testProposal()})

	req := httptest.NewRequest(http.MethodGet, "/proposal/proposal_web_test", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"AI活用提案書",
		"株式会社アクメ 様",
		"概要",
		"提案内容",
		"サービス",
		"提案書自動生成アシスタント",
		"PDF ダウンロード",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("proposal page does not contain %q", want)
		}
	}
}

func TestProposalPageJSON(t *testing.T) {
	router := newTestRouter(&fakeReader{proposal: testProposal()})

	req := httptest.NewRequest(http.MethodGet, "/proposal/proposal_web_test", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var got entity.Proposal
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "proposal_web_test" {
		t.Errorf("proposal ID = %q", got.ID)
	}
}

func TestProposalPageNotFound(t *testing.T) {
	router := newTestRouter(&fakeReader{})

	req := httptest.NewRequest(http.MethodGet, "/proposal/proposal_absent", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProposalPageRenderFailure(t *testing.T) {
	// A template that fails mid-execution must yield a 500, not a
	// truncated 200 page.
	h := &Handler{
		reader:    &fakeReader{proposal: testProposal()},
		templates: template.Must(template.New("proposal.html").Parse("<h1>ok</h1>{{.NoSuchField}}")),
	}
	r := chi.NewRouter()
	RegisterRoutes(r, h)

	req := httptest.NewRequest(http.MethodGet, "/proposal/proposal_web_test", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<h1>ok</h1>") {
		t.Error("response contains partial template output")
	}
}

func TestComplexityLabel(t *testing.T) {
	tests := []struct {
		in   entity.ImplementationComplexity
		want string
	}{
		{entity.ComplexityLow, "低"},
		{entity.ComplexityMedium, "中"},
		{entity.ComplexityHigh, "高"},
		{"weird", "不明"},
	}

	for _, tt := range tests {
		if got := complexityLabel(tt.in); got != tt.want {
			t.Errorf("complexityLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
