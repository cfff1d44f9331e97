package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"profilecard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Table layout: one row per username.
//
//	CREATE TABLE profiles (
//	    id              TEXT NOT NULL,
//	    username        TEXT PRIMARY KEY,
//	    full_name       TEXT NOT NULL,
//	    headline        TEXT NOT NULL,
//	    summary         TEXT NOT NULL DEFAULT '',
//	    avatar_url      TEXT NOT NULL DEFAULT '',
//	    contact_info    JSONB NOT NULL,
//	    work_experience JSONB NOT NULL DEFAULT '[]',
//	    education       JSONB NOT NULL DEFAULT '[]',
//	    skills          TEXT[] NOT NULL DEFAULT '{}',
//	    projects        JSONB NOT NULL DEFAULT '[]',
//	    settings        JSONB NOT NULL,
//	    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.UserProfile) (*domain.SaveResult, error) {
	if profile == nil || profile.Username == "" {
		return &domain.SaveResult{Success: false, Message: "Username is required."}, nil
	}

	contactInfo, err := json.Marshal(profile.ContactInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal contact info: %w", err)
	}
	workExperience, err := json.Marshal(profile.WorkExperience)
	if err != nil {
		return nil, fmt.Errorf("marshal work experience: %w", err)
	}
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return nil, fmt.Errorf("marshal education: %w", err)
	}
	projects, err := json.Marshal(profile.Projects)
	if err != nil {
		return nil, fmt.Errorf("marshal projects: %w", err)
	}
	settings, err := json.Marshal(profile.Settings)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	// Upsert keyed by username: last write wins, created_at survives updates.
	query := `
		INSERT INTO profiles (
			id, username, full_name, headline, summary, avatar_url,
			contact_info, work_experience, education, skills, projects, settings,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET
			id = EXCLUDED.id,
			full_name = EXCLUDED.full_name,
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			avatar_url = EXCLUDED.avatar_url,
			contact_info = EXCLUDED.contact_info,
			work_experience = EXCLUDED.work_experience,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			settings = EXCLUDED.settings,
			updated_at = NOW()
		RETURNING id`

	var id string
	err = r.db.QueryRow(ctx, query,
		profile.ID, profile.Username, profile.FullName, profile.Headline,
		profile.Summary, profile.AvatarURL,
		contactInfo, workExperience, education,
		pq.Array(profile.Skills), projects, settings,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &domain.SaveResult{
		Success: true,
		Message: "Profile saved successfully!",
		ID:      id,
	}, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	query := `
		SELECT
			id, username, full_name, headline, summary, avatar_url,
			contact_info, work_experience, education, skills, projects, settings,
			created_at, updated_at
		FROM profiles WHERE username = $1`

	var (
		p              domain.UserProfile
		contactInfo    []byte
		workExperience []byte
		education      []byte
		skills         []string
		projects       []byte
		settings       []byte
	)

	err := r.db.QueryRow(ctx, query, username).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Headline, &p.Summary, &p.AvatarURL,
		&contactInfo, &workExperience, &education,
		pq.Array(&skills), &projects, &settings,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Skills = skills
	if err := json.Unmarshal(contactInfo, &p.ContactInfo); err != nil {
		return nil, fmt.Errorf("unmarshal contact info: %w", err)
	}
	if err := json.Unmarshal(workExperience, &p.WorkExperience); err != nil {
		return nil, fmt.Errorf("unmarshal work experience: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(projects, &p.Projects); err != nil {
		return nil, fmt.Errorf("unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(settings, &p.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return &p, nil
}
