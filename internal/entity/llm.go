package entity

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type ChatCompletionChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

// ProposalPayload is the JSON document the model is instructed to return.
// Fields are validated in the usecase before a Proposal is assembled.
type ProposalPayload struct {
	Summary             string           `json:"summary"`
	Recommendations     []Recommendation `json:"recommendations"`
	DevelopmentScope    []string         `json:"developmentScope"`
	ImplementationSteps []string         `json:"implementationSteps"`
}
