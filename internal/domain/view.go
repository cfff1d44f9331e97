package domain

type SectionType string

const (
	SectionContact    SectionType = "contact"
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionProjects   SectionType = "projects"
)

// ProfileView is the public read-only projection of a stored profile.
// Section inclusion is decided entirely by the profile's visibility settings;
// the header fields render unconditionally.
type ProfileView struct {
	Username  string           `json:"username"`
	FullName  string           `json:"fullName"`
	Headline  string           `json:"headline"`
	AvatarURL string           `json:"avatarUrl,omitempty"`
	Sections  []ProfileSection `json:"sections"`
}

type ProfileSection struct {
	Type       SectionType      `json:"type"`
	Title      string           `json:"title"`
	Text       string           `json:"text,omitempty"`
	Contact    *ContactInfo     `json:"contact,omitempty"`
	Experience []ExperienceView `json:"experience,omitempty"`
	Education  []EducationView  `json:"education,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Projects   []ProjectView    `json:"projects,omitempty"`
}

type ExperienceView struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	DateRange   string `json:"dateRange"`
	Description string `json:"description"`
}

type EducationView struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	Institution  string `json:"institution"`
	DateRange    string `json:"dateRange"`
	Description  string `json:"description,omitempty"`
}

type ProjectView struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	RepoURL      string   `json:"repoUrl,omitempty"`
}

// ViewUsecase projects a stored profile into its public sections. Pure; no mutation.
type ViewUsecase interface {
	Render(profile *UserProfile) *ProfileView
}
