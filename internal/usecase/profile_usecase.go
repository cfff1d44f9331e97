package usecase

import (
	"context"

	"profilecard-backend/internal/domain"
	"profilecard-backend/pkg/apperror"
	"profilecard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	profile, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.SaveResult, error) {
	// Full-profile validation: every violation is collected so the user can fix
	// them in one pass. Nothing is persisted unless the whole profile passes.
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.Validation(validation.Fields(err))
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	return u.repo.Save(ctx, profile)
}
