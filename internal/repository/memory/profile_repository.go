package memory

import (
	"context"
	"sync"
	"time"

	"profilecard-backend/internal/domain"
)

// SampleUsername is the distinguished demo key seeded at startup.
const SampleUsername = "sample-user"

// ProfileRepository is the in-memory store: one profile per username,
// last write wins. Profiles are deep-copied across the boundary so stored
// state never aliases an in-progress edit.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.UserProfile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]*domain.UserProfile),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) (*domain.SaveResult, error) {
	// Defensive store-level check, independent of schema validation.
	if profile == nil || profile.Username == "" {
		return &domain.SaveResult{Success: false, Message: "Username is required."}, nil
	}

	stored := profile.Clone()
	now := time.Now()
	stored.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.profiles[stored.Username]; ok {
		// createdAt is set once at creation and survives every later save.
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}

	r.profiles[stored.Username] = stored

	return &domain.SaveResult{
		Success: true,
		Message: "Profile saved successfully!",
		ID:      stored.ID,
	}, nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[username]
	if !ok {
		return nil, nil
	}
	return profile.Clone(), nil
}

// Seed inserts the fixed demonstration profile once, at store initialization.
// Lookups themselves never create records: unknown usernames stay not-found.
func (r *ProfileRepository) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[SampleUsername]; ok {
		return nil
	}
	r.profiles[SampleUsername] = sampleProfile()
	return nil
}

func sampleProfile() *domain.UserProfile {
	now := time.Now()
	return &domain.UserProfile{
		ID:        "sample-user-id",
		Username:  SampleUsername,
		FullName:  "Sample User",
		Headline:  "Creative Designer & Developer",
		Summary:   "A passionate designer and developer with a knack for creating intuitive and beautiful user experiences. Proficient in various design tools and front-end technologies.",
		AvatarURL: "https://placehold.co/128x128.png?text=SU",
		ContactInfo: domain.ContactInfo{
			Email:     "sample.user@example.com",
			Phone:     "123-456-7890",
			Linkedin:  "linkedin.com/in/sampleuser",
			Github:    "github.com/sampleuser",
			Portfolio: "sampleuser.dev",
		},
		WorkExperience: []domain.WorkExperience{
			{
				ID:          "exp1",
				Company:     "Tech Solutions Inc.",
				Role:        "UX Designer",
				StartDate:   "2020-01-01",
				EndDate:     "2022-12-31",
				Description: "Designed user interfaces for web and mobile applications, conducted user research, and created prototypes.",
				Location:    "San Francisco, CA",
			},
			{
				ID:          "exp2",
				Company:     "Innovate Ltd.",
				Role:        "Junior Web Developer",
				StartDate:   "2018-06-01",
				EndDate:     "2019-12-31",
				Description: "Developed and maintained company websites using HTML, CSS, and JavaScript.",
				Location:    "Remote",
			},
		},
		Education: []domain.Education{
			{
				ID:           "edu1",
				Institution:  "State University",
				Degree:       "B.S. in Computer Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2014-09-01",
				EndDate:      "2018-05-31",
				Description:  "Graduated with honors.",
			},
		},
		Skills: []string{"UI/UX Design", "Prototyping", "User Research", "HTML", "CSS", "JavaScript", "React", "Figma", "Adobe XD"},
		Projects: []domain.Project{
			{
				ID:           "proj1",
				Name:         "Portfolio Website",
				Description:  "Personal portfolio website to showcase projects and skills.",
				Technologies: []string{"Next.js", "Tailwind CSS", "TypeScript"},
				URL:          "sampleuser.dev",
			},
			{
				ID:           "proj2",
				Name:         "Task Management App",
				Description:  "A concept app for managing daily tasks.",
				Technologies: []string{"React Native", "Firebase"},
				RepoURL:      "github.com/sampleuser/taskapp",
			},
		},
		Settings:  domain.DefaultSettings(),
		CreatedAt: now.Add(-30 * 24 * time.Hour),
		UpdatedAt: now,
	}
}
