package domain

import (
	"context"
	"strings"
	"time"
)

// UserProfile is the root aggregate, one per username. The same shape crosses
// the save/load boundary and the render boundary; there is no separate wire format.
type UserProfile struct {
	ID             string           `json:"id"`
	Username       string           `json:"username" validate:"required,min=3,username"`
	FullName       string           `json:"fullName" validate:"required,min=2"`
	Headline       string           `json:"headline" validate:"required,min=5"`
	Summary        string           `json:"summary,omitempty"`
	AvatarURL      string           `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	ContactInfo    ContactInfo      `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []string         `json:"skills" validate:"required,min=1,unique"`
	Projects       []Project        `json:"projects" validate:"dive"`
	Settings       ProfileSettings  `json:"settings"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type ContactInfo struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Github    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"` // empty means current position
	Description string `json:"description" validate:"required"`
	Location    string `json:"location,omitempty"`
}

type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,min=1,unique"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	RepoURL      string   `json:"repoUrl,omitempty" validate:"omitempty,url"`
}

// ProfileSettings controls which sections the public view renders.
type ProfileSettings struct {
	ShowContact    bool   `json:"showContact"`
	ShowSummary    bool   `json:"showSummary"`
	ShowExperience bool   `json:"showExperience"`
	ShowEducation  bool   `json:"showEducation"`
	ShowSkills     bool   `json:"showSkills"`
	ShowProjects   bool   `json:"showProjects"`
	ThemeColor     string `json:"themeColor,omitempty"`
}

// DefaultSettings returns the visibility defaults for a new profile: everything shown.
func DefaultSettings() ProfileSettings {
	return ProfileSettings{
		ShowContact:    true,
		ShowSummary:    true,
		ShowExperience: true,
		ShowEducation:  true,
		ShowSkills:     true,
		ShowProjects:   true,
	}
}

// NewEmptyProfile builds the starting point for a user with no stored record.
func NewEmptyProfile(id, username, email string) *UserProfile {
	initial := "P"
	if username != "" {
		initial = strings.ToUpper(username[:1])
	}
	now := time.Now()
	return &UserProfile{
		ID:             id,
		Username:       username,
		AvatarURL:      "https://placehold.co/128x128.png?text=" + initial,
		ContactInfo:    ContactInfo{Email: email},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []string{},
		Projects:       []Project{},
		Settings:       DefaultSettings(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy so stored state and in-progress edits never alias.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.WorkExperience = append([]WorkExperience(nil), p.WorkExperience...)
	cp.Education = append([]Education(nil), p.Education...)
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		cp.Projects[i] = proj
		cp.Projects[i].Technologies = append([]string(nil), proj.Technologies...)
	}
	return &cp
}

// SaveResult reports the outcome of a store upsert.
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type ProfileRepository interface {
	// Save upserts by username (last write wins) and stamps UpdatedAt.
	Save(ctx context.Context, profile *UserProfile) (*SaveResult, error)
	// GetByUsername is an exact, case-sensitive lookup. A miss returns (nil, nil):
	// not-found is a valid outcome, not an error.
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, username string) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile *UserProfile) (*SaveResult, error)
}
