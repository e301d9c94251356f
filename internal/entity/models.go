package entity

import (
	"fmt"
	"time"
)

type ImplementationComplexity string

const (
	ComplexityLow    ImplementationComplexity = "low"
	ComplexityMedium ImplementationComplexity = "medium"
	ComplexityHigh   ImplementationComplexity = "high"
)

func (c ImplementationComplexity) Validate() error {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return nil
	default:
		return fmt.Errorf("unknown implementation complexity: %s", c)
	}
}

type ServiceOptionType string

const (
	ServiceOptionTraining    ServiceOptionType = "training"
	ServiceOptionPoC         ServiceOptionType = "poc"
	ServiceOptionDevelopment ServiceOptionType = "development"
)

// ContactInfo identifies the person who submitted the survey
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Position string `json:"position,omitempty"`
}

// Survey is one submitted business-process questionnaire. It is owned by the
// request that created it and is consumed exactly once by proposal generation.
type Survey struct {
	CompanyName         string      `json:"companyName"`
	Industry            string      `json:"industry"`
	EmployeeCount       string      `json:"employeeCount"`
	Department          string      `json:"department"`
	CurrentChallenges   []string    `json:"currentChallenges"`
	WorkflowDescription string      `json:"workflowDescription"`
	Budget              string      `json:"budget,omitempty"`
	Timeline            string      `json:"timeline,omitempty"`
	ContactInfo         ContactInfo `json:"contactInfo"`
}

// Recommendation is one suggested intervention within a proposal.
// ExpectedBenefits and SuggestedTools keep their display order.
type Recommendation struct {
	Category                 string                   `json:"category"`
	Solution                 string                   `json:"solution"`
	Description              string                   `json:"description"`
	ExpectedBenefits         []string                 `json:"expectedBenefits"`
	TimeSavingEstimate       float64                  `json:"timeSavingEstimate"`
	ImplementationComplexity ImplementationComplexity `json:"implementationComplexity"`
	SuggestedTools           []string                 `json:"suggestedTools"`
}

// ServiceOption is one of the fixed service-package offerings attached to
// every generated proposal. The catalog lives in catalog.go.
type ServiceOption struct {
	Type        ServiceOptionType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    string            `json:"duration"`
	Price       string            `json:"price"`
}

// Proposal is the generated artifact for one survey. Created once, never
// mutated; retrievable by ID while the store keeps it.
type Proposal struct {
	ID                  string           `json:"id"`
	CompanyName         string           `json:"companyName"`
	Summary             string           `json:"summary"`
	Recommendations     []Recommendation `json:"recommendations"`
	DevelopmentScope    []string         `json:"developmentScope"`
	ImplementationSteps []string         `json:"implementationSteps"`
	ServiceOptions      []ServiceOption  `json:"serviceOptions"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// ExpectedSavings sums the monthly time-saving estimates of all
// recommendations. Reported to the CRM as the lead value.
func (p *Proposal) ExpectedSavings() float64 {
	var total float64
	for _, rec := range p.Recommendations {
		total += rec.TimeSavingEstimate
	}
	return total
}
