package domain

import "context"

type SuggestionRequest struct {
	JobDescription string   `json:"jobDescription" binding:"required"`
	CurrentSkills  []string `json:"currentSkills"`
}

type SuggestionResult struct {
	Skills []string `json:"skills"`
}

// SkillSuggester is the external text-generation collaborator mapping a job
// description to relevant skill names. Opaque to this core.
type SkillSuggester interface {
	SuggestSkills(ctx context.Context, jobDescription string) ([]string, error)
}

type SuggestionUsecase interface {
	Suggest(ctx context.Context, req *SuggestionRequest) (*SuggestionResult, error)
}
