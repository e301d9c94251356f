package entity

type ResultFormat string

const (
	FormatPDF  ResultFormat = "pdf"
	FormatHTML ResultFormat = "html"
	FormatDOCX ResultFormat = "docx"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatPDF, FormatHTML, FormatDOCX:
		return true
	default:
		return false
	}
}

// GenerateDocumentRequest asks for an export of a stored proposal.
// Format defaults to PDF when empty.
type GenerateDocumentRequest struct {
	ProposalID string       `json:"proposalId"`
	Format     ResultFormat `json:"format,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SurveyCatalogs carries the option lists the intake form renders into its
// selects and challenge checkboxes.
type SurveyCatalogs struct {
	Industries       []string `json:"industries"`
	EmployeeCounts   []string `json:"employeeCounts"`
	Departments      []string `json:"departments"`
	ChallengeOptions []string `json:"challengeOptions"`
	Budgets          []string `json:"budgets"`
	Timelines        []string `json:"timelines"`
}
