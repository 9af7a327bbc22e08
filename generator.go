package coverletter

import "context"

// Generator produces text from a prompt using a generative text service.
// Implementations are opaque and non-deterministic.
type Generator interface {
	// Generate returns text for prompt, producing at most maxTokens output tokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// GenerateRequest carries the context shared by both generated artifacts.
type GenerateRequest struct {
	ResumeText  string `json:"resumeText"`
	JobText     string `json:"jobText"`
	CompanyText string `json:"companyText"`
	RoleTitle   string `json:"roleTitle"`
	CompanyName string `json:"companyName"`
}

// Validate returns an error if the request cannot be used for generation.
func (r *GenerateRequest) Validate() error {
	if r.JobText == "" {
		return Errorf(EINVALID, "Job description is required")
	}
	return nil
}

// GenerationService produces a cover letter and resume bullets for a
// request and records the result as a downloadable session.
type GenerationService interface {
	Generate(ctx context.Context, req *GenerateRequest) (*Session, error)
}
