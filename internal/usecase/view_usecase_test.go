package usecase_test

import (
	"testing"

	"profilecard-backend/internal/domain"
	"profilecard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func sectionTypes(view *domain.ProfileView) []domain.SectionType {
	types := make([]domain.SectionType, 0, len(view.Sections))
	for _, s := range view.Sections {
		types = append(types, s.Type)
	}
	return types
}

func fullProfile() *domain.UserProfile {
	p := validProfile("janedoe")
	p.Summary = "Builds backends."
	p.WorkExperience = []domain.WorkExperience{
		{ID: "exp1", Company: "Acme", Role: "Engineer", StartDate: "2020-01-01", EndDate: "2022-12-31", Description: "Built things."},
		{ID: "exp2", Company: "Globex", Role: "Lead", StartDate: "2023-01-01", Description: "Leads things."},
	}
	p.Education = []domain.Education{
		{ID: "edu1", Institution: "State University", Degree: "B.S.", StartDate: "2014-09-01", EndDate: "2018-05-31"},
	}
	p.Projects = []domain.Project{
		{ID: "proj1", Name: "Site", Description: "Portfolio.", Technologies: []string{"Go"}},
	}
	return p
}

func TestRenderVisibilityGating(t *testing.T) {
	uc := usecase.NewViewUsecase()

	t.Run("All flags on, everything present", func(t *testing.T) {
		view := uc.Render(fullProfile())
		assert.Equal(t, []domain.SectionType{
			domain.SectionContact,
			domain.SectionSummary,
			domain.SectionExperience,
			domain.SectionEducation,
			domain.SectionProjects,
			domain.SectionSkills,
		}, sectionTypes(view))
	})

	t.Run("Hidden skills never render, even when non-empty", func(t *testing.T) {
		p := fullProfile()
		p.Settings.ShowSkills = false
		assert.NotContains(t, sectionTypes(uc.Render(p)), domain.SectionSkills)
	})

	t.Run("Shown but empty skills are also omitted", func(t *testing.T) {
		p := fullProfile()
		p.Skills = nil
		assert.NotContains(t, sectionTypes(uc.Render(p)), domain.SectionSkills)
	})

	t.Run("Summary needs flag and content", func(t *testing.T) {
		p := fullProfile()
		p.Summary = ""
		assert.NotContains(t, sectionTypes(uc.Render(p)), domain.SectionSummary)
	})

	t.Run("Contact is gated by flag alone", func(t *testing.T) {
		p := fullProfile()
		p.Settings.ShowContact = false
		assert.NotContains(t, sectionTypes(uc.Render(p)), domain.SectionContact)
	})
}

func TestRenderPreservesOrderAndContent(t *testing.T) {
	uc := usecase.NewViewUsecase()
	view := uc.Render(fullProfile())

	var experience []domain.ExperienceView
	for _, s := range view.Sections {
		if s.Type == domain.SectionExperience {
			experience = s.Experience
		}
	}

	assert.Len(t, experience, 2)
	assert.Equal(t, "Acme", experience[0].Company)
	assert.Equal(t, "Jan 2020 - Dec 2022", experience[0].DateRange)
	assert.Equal(t, "Globex", experience[1].Company)
	assert.Equal(t, "Jan 2023 - Present", experience[1].DateRange)
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Dec 2022", usecase.FormatDateRange("2020-01-01", "2022-12-31"))
	assert.Equal(t, "Jun 2018 - Present", usecase.FormatDateRange("2018-06-01", ""))
	assert.Equal(t, "", usecase.FormatDateRange("", "2022-12-31"))
	// Unparseable input is shown as typed
	assert.Equal(t, "sometime - Present", usecase.FormatDateRange("sometime", ""))
}
