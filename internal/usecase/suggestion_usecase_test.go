package usecase_test

import (
	"context"
	"errors"
	"testing"

	"profilecard-backend/internal/domain"
	"profilecard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSuggestBlankInputGuard(t *testing.T) {
	mockSuggester := new(MockSuggester)
	uc := usecase.NewSuggestionUsecase(mockSuggester)

	_, err := uc.Suggest(context.Background(), &domain.SuggestionRequest{JobDescription: "   "})
	assert.Error(t, err)
	// Guard fires before any external call
	mockSuggester.AssertNotCalled(t, "SuggestSkills", mock.Anything, mock.Anything)
}

func TestSuggestFailureIsolation(t *testing.T) {
	mockSuggester := new(MockSuggester)
	uc := usecase.NewSuggestionUsecase(mockSuggester)

	mockSuggester.On("SuggestSkills", mock.Anything, "Data Scientist").
		Return(nil, errors.New("provider timeout")).Once()

	result, err := uc.Suggest(context.Background(), &domain.SuggestionRequest{JobDescription: "Data Scientist"})
	assert.NoError(t, err)
	assert.Equal(t, []string{}, result.Skills)
}

func TestSuggestFiltersAndCleans(t *testing.T) {
	mockSuggester := new(MockSuggester)
	uc := usecase.NewSuggestionUsecase(mockSuggester)

	mockSuggester.On("SuggestSkills", mock.Anything, "Backend Engineer").
		Return([]string{"Go", " PostgreSQL ", "", "Docker", "Docker"}, nil).Once()

	result, err := uc.Suggest(context.Background(), &domain.SuggestionRequest{
		JobDescription: "Backend Engineer",
		CurrentSkills:  []string{"Go"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"PostgreSQL", "Docker"}, result.Skills)
}

func TestSuggestWithoutProvider(t *testing.T) {
	uc := usecase.NewSuggestionUsecase(nil)

	result, err := uc.Suggest(context.Background(), &domain.SuggestionRequest{JobDescription: "Frontend Developer"})
	assert.NoError(t, err)
	assert.Empty(t, result.Skills)
}
