package memory_test

import (
	"context"
	"testing"
	"time"

	"profilecard-backend/internal/domain"
	"profilecard-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(username string) *domain.UserProfile {
	p := domain.NewEmptyProfile("id-1", username, "jane@example.com")
	p.FullName = "Jane Doe"
	p.Headline = "Software Engineer"
	p.Skills = []string{"Go"}
	return p
}

func TestSaveRoundTrip(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	p := profile("janedoe")
	before := p.UpdatedAt

	result, err := repo.Save(ctx, p)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "id-1", result.ID)

	got, err := repo.GetByUsername(ctx, "janedoe")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.FullName, got.FullName)
	assert.Equal(t, p.Skills, got.Skills)
	assert.False(t, got.UpdatedAt.Before(before))
}

func TestSaveRejectsMissingUsername(t *testing.T) {
	repo := memory.NewProfileRepository()

	result, err := repo.Save(context.Background(), profile(""))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Username is required.", result.Message)
}

func TestSavePreservesCreatedAt(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	p := profile("janedoe")
	created := time.Now().Add(-48 * time.Hour)
	p.CreatedAt = created
	_, err := repo.Save(ctx, p)
	require.NoError(t, err)

	// Second save attempts to overwrite createdAt; the store keeps the original
	p2 := profile("janedoe")
	p2.CreatedAt = time.Now()
	_, err = repo.Save(ctx, p2)
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "janedoe")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestLastWriteWins(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	p := profile("janedoe")
	_, err := repo.Save(ctx, p)
	require.NoError(t, err)

	p2 := profile("janedoe")
	p2.Headline = "Staff Engineer"
	_, err = repo.Save(ctx, p2)
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "janedoe")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Headline)
}

func TestLookupMissIsNotAnError(t *testing.T) {
	repo := memory.NewProfileRepository()

	got, err := repo.GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoredStateDoesNotAliasCallerState(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	p := profile("janedoe")
	_, err := repo.Save(ctx, p)
	require.NoError(t, err)

	// Mutating the caller's copy after save must not touch the stored record
	p.Skills = append(p.Skills, "Rust")

	got, err := repo.GetByUsername(ctx, "janedoe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.Skills)

	// And mutating a fetched copy must not either
	got.Skills[0] = "COBOL"
	again, err := repo.GetByUsername(ctx, "janedoe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Skills)
}

func TestSeedIsExplicitAndIdempotent(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	// Before seeding, even the demo key is a plain miss
	got, err := repo.GetByUsername(ctx, memory.SampleUsername)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Seed(ctx))

	first, err := repo.GetByUsername(ctx, memory.SampleUsername)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Sample User", first.FullName)
	assert.NotEmpty(t, first.Skills)
	assert.True(t, first.Settings.ShowProjects)

	// Seeding again must not reset or duplicate anything
	require.NoError(t, repo.Seed(ctx))
	second, err := repo.GetByUsername(ctx, memory.SampleUsername)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Seeding never invents records for other usernames
	ghost, err := repo.GetByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}
