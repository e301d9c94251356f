package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/futig/proposal-backend/internal/entity"
)

// basic local@domain shape; full RFC 5322 parsing is not the goal here
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator validates survey submissions
type Validator struct{}

func NewSurveyValidator() *Validator {
	return &Validator{}
}

// ValidateSurvey checks the server-side invariants of a submitted survey:
// required fields are non-empty, at least one challenge is selected and the
// contact email has a plausible shape. The intake form enforces the same
// rules client-side, so a failure here means the form was bypassed.
func (v *Validator) ValidateSurvey(survey *entity.Survey) error {
	if strings.TrimSpace(survey.CompanyName) == "" {
		return fmt.Errorf("%w: companyName", entity.ErrMissingField)
	}
	if strings.TrimSpace(survey.Industry) == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}
	if strings.TrimSpace(survey.EmployeeCount) == "" {
		return fmt.Errorf("%w: employeeCount", entity.ErrMissingField)
	}
	if strings.TrimSpace(survey.Department) == "" {
		return fmt.Errorf("%w: department", entity.ErrMissingField)
	}
	if len(survey.CurrentChallenges) == 0 {
		return fmt.Errorf("%w: currentChallenges", entity.ErrMissingField)
	}
	for _, challenge := range survey.CurrentChallenges {
		if strings.TrimSpace(challenge) == "" {
			return fmt.Errorf("%w: currentChallenges contains an empty entry", entity.ErrInvalidParameter)
		}
	}
	if strings.TrimSpace(survey.WorkflowDescription) == "" {
		return fmt.Errorf("%w: workflowDescription", entity.ErrMissingField)
	}
	if strings.TrimSpace(survey.ContactInfo.Name) == "" {
		return fmt.Errorf("%w: contactInfo.name", entity.ErrMissingField)
	}
	if survey.ContactInfo.Email == "" {
		return fmt.Errorf("%w: contactInfo.email", entity.ErrMissingField)
	}
	if !emailPattern.MatchString(survey.ContactInfo.Email) {
		return fmt.Errorf("%w: %s", entity.ErrInvalidEmail, survey.ContactInfo.Email)
	}

	return nil
}

// ValidateGenerateDocument checks a document export request
func (v *Validator) ValidateGenerateDocument(req *entity.GenerateDocumentRequest) error {
	if req.ProposalID == "" {
		return fmt.Errorf("%w: proposalId", entity.ErrMissingField)
	}
	if req.Format != "" && !req.Format.IsValid() {
		return fmt.Errorf("%w: format must be one of: pdf, html, docx", entity.ErrUnsupportedFormat)
	}

	return nil
}
