package proposal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futig/proposal-backend/internal/entity"
	"github.com/futig/proposal-backend/internal/pkg/validator"
	usecase "github.com/futig/proposal-backend/internal/usecase/proposal"
	"github.com/go-chi/chi/v5"
)

type fakeUsecase struct {
	generateErr error
	renderErr   error
	proposal    *entity.Proposal
}

func (u *fakeUsecase) Generate(ctx context.Context, survey *entity.Survey) (*entity.Proposal, error) {
	if u.generateErr != nil {
		return nil, u.generateErr
	}
	return u.proposal, nil
}

func (u *fakeUsecase) GetProposal(ctx context.Context, id string) (*entity.Proposal, error) {
	if u.proposal == nil || u.proposal.ID != id {
		return nil, entity.ErrProposalNotFound
	}
	return u.proposal, nil
}

func (u *fakeUsecase) RenderDocument(ctx context.Context, id string, format entity.ResultFormat) (*usecase.RenderedDocument, error) {
	if u.renderErr != nil {
		return nil, u.renderErr
	}
	if u.proposal == nil || u.proposal.ID != id {
		return nil, entity.ErrProposalNotFound
	}
	return &usecase.RenderedDocument{
		Bytes:       []byte("%PDF-1.4 test"),
		ContentType: "application/pdf",
		Filename:    "AI活用提案書_" + u.proposal.CompanyName + ".pdf",
	}, nil
}

func testProposal() *entity.Proposal {
	return &entity.Proposal{
		ID:          "proposal_api_test",
		CompanyName: "株式会社アクメ",
		Summary:     "サマリー",
		Recommendations: []entity.Recommendation{
			{Solution: "提案書自動生成", TimeSavingEstimate: 20, ImplementationComplexity: entity.ComplexityLow},
		},
		ServiceOptions: entity.ServiceCatalog(),
		CreatedAt:      time.Now().UTC(),
	}
}

func newTestRouter(uc ProposalUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, validator.NewSurveyValidator()))
	return r
}

func surveyBody() *bytes.Buffer {
	survey := entity.Survey{
		CompanyName:         "株式会社アクメ",
		Industry:            "IT・ソフトウェア",
		EmployeeCount:       "51-100名",
		Department:          "営業・マーケティング",
		CurrentChallenges:   []string{"営業活動の効率化"},
		WorkflowDescription: "営業資料作成に時間がかかっている",
		ContactInfo:         entity.ContactInfo{Name: "山田太郎", Email: "taro@example.co.jp"},
	}
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(survey)
	return &buf
}

func TestAnalyze(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	req := httptest.NewRequest(http.MethodPost, "/analyze", surveyBody())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var got entity.Proposal
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "proposal_api_test" {
		t.Errorf("proposal ID = %q", got.ID)
	}
	if len(got.ServiceOptions) != 3 {
		t.Errorf("got %d service options, want 3", len(got.ServiceOptions))
	}
}

func TestAnalyzeInvalidBody(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeValidationError(t *testing.T) {
	uc := &fakeUsecase{generateErr: fmt.Errorf("%w: companyName", entity.ErrMissingField)}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", surveyBody())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	uc := &fakeUsecase{generateErr: fmt.Errorf("complete survey analysis: %w", entity.ErrCompletionFailed)}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", surveyBody())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body entity.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Message != "proposal generation failed" {
		t.Errorf("error message = %q", body.Message)
	}
}

func TestGenerateDocument(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	body := strings.NewReader(`{"proposalId": "proposal_api_test", "format": "pdf"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-document", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty document body")
	}
}

func TestGenerateDocumentUnknownProposal(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	body := strings.NewReader(`{"proposalId": "proposal_missing"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-document", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateDocumentBadFormat(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	body := strings.NewReader(`{"proposalId": "proposal_api_test", "format": "xlsx"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-document", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateDocumentMissingID(t *testing.T) {
	router := newTestRouter(&fakeUsecase{proposal: testProposal()})

	body := strings.NewReader(`{"format": "pdf"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-document", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
