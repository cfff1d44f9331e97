package usecase

import (
	"context"
	"strings"

	"profilecard-backend/internal/domain"
	"profilecard-backend/pkg/apperror"
)

type suggestionUsecase struct {
	suggester domain.SkillSuggester
}

// NewSuggestionUsecase creates the best-effort skill suggestion flow. The
// suggester may be nil when no provider is configured; suggestions then come
// back empty rather than failing.
func NewSuggestionUsecase(suggester domain.SkillSuggester) domain.SuggestionUsecase {
	return &suggestionUsecase{
		suggester: suggester,
	}
}

func (u *suggestionUsecase) Suggest(ctx context.Context, req *domain.SuggestionRequest) (*domain.SuggestionResult, error) {
	// Caller-side guard: blank input is rejected before any external call.
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, apperror.BadRequest("Job description is required.")
	}

	result := &domain.SuggestionResult{Skills: []string{}}

	if u.suggester == nil {
		return result, nil
	}

	skills, err := u.suggester.SuggestSkills(ctx, req.JobDescription)
	if err != nil {
		// Best-effort enrichment: any collaborator failure is absorbed and the
		// edit flow continues with no suggestions.
		return result, nil
	}

	current := make(map[string]struct{}, len(req.CurrentSkills))
	for _, s := range req.CurrentSkills {
		current[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, exists := current[s]; exists {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		result.Skills = append(result.Skills, s)
	}

	return result, nil
}
