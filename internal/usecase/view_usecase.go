package usecase

import (
	"strings"
	"time"

	"profilecard-backend/internal/domain"
)

type viewUsecase struct{}

func NewViewUsecase() domain.ViewUsecase {
	return &viewUsecase{}
}

// Render projects a stored profile into its public sections. Each section is
// gated by the matching visibility flag; content-bearing sections are also
// omitted when empty. Entries keep their stored insertion order.
func (v *viewUsecase) Render(profile *domain.UserProfile) *domain.ProfileView {
	view := &domain.ProfileView{
		Username:  profile.Username,
		FullName:  profile.FullName,
		Headline:  profile.Headline,
		AvatarURL: profile.AvatarURL,
		Sections:  []domain.ProfileSection{},
	}

	settings := profile.Settings

	if settings.ShowContact {
		contact := profile.ContactInfo
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:    domain.SectionContact,
			Title:   "Contact & Links",
			Contact: &contact,
		})
	}

	if settings.ShowSummary && profile.Summary != "" {
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:  domain.SectionSummary,
			Title: "Summary",
			Text:  profile.Summary,
		})
	}

	if settings.ShowExperience && len(profile.WorkExperience) > 0 {
		entries := make([]domain.ExperienceView, 0, len(profile.WorkExperience))
		for _, exp := range profile.WorkExperience {
			entries = append(entries, domain.ExperienceView{
				Role:        exp.Role,
				Company:     exp.Company,
				Location:    exp.Location,
				DateRange:   FormatDateRange(exp.StartDate, exp.EndDate),
				Description: exp.Description,
			})
		}
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:       domain.SectionExperience,
			Title:      "Work Experience",
			Experience: entries,
		})
	}

	if settings.ShowEducation && len(profile.Education) > 0 {
		entries := make([]domain.EducationView, 0, len(profile.Education))
		for _, edu := range profile.Education {
			entries = append(entries, domain.EducationView{
				Degree:       edu.Degree,
				FieldOfStudy: edu.FieldOfStudy,
				Institution:  edu.Institution,
				DateRange:    FormatDateRange(edu.StartDate, edu.EndDate),
				Description:  edu.Description,
			})
		}
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:      domain.SectionEducation,
			Title:     "Education",
			Education: entries,
		})
	}

	if settings.ShowProjects && len(profile.Projects) > 0 {
		entries := make([]domain.ProjectView, 0, len(profile.Projects))
		for _, proj := range profile.Projects {
			entries = append(entries, domain.ProjectView{
				Name:         proj.Name,
				Description:  proj.Description,
				Technologies: append([]string(nil), proj.Technologies...),
				URL:          proj.URL,
				RepoURL:      proj.RepoURL,
			})
		}
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:     domain.SectionProjects,
			Title:    "Projects",
			Projects: entries,
		})
	}

	if settings.ShowSkills && len(profile.Skills) > 0 {
		view.Sections = append(view.Sections, domain.ProfileSection{
			Type:   domain.SectionSkills,
			Title:  "Skills",
			Skills: append([]string(nil), profile.Skills...),
		})
	}

	return view
}

// Date strings arrive in the form the edit form produces.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FormatDateRange renders "Jan 2020 - Dec 2022", with "Present" standing in
// for a blank end date. An unparseable date is shown as typed.
func FormatDateRange(startDate, endDate string) string {
	startDate = strings.TrimSpace(startDate)
	if startDate == "" {
		return ""
	}
	end := "Present"
	if e := strings.TrimSpace(endDate); e != "" {
		end = formatMonthYear(e)
	}
	return formatMonthYear(startDate) + " - " + end
}

func formatMonthYear(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			if layout == "2006" {
				return t.Format("2006")
			}
			return t.Format("Jan 2006")
		}
	}
	return value
}
