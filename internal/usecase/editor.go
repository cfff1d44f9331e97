package usecase

import (
	"context"
	"fmt"
	"strings"

	"profilecard-backend/internal/domain"

	"github.com/google/uuid"
)

// Editor holds one in-progress profile and exposes the structural operations
// the edit form needs, decoupled from any UI binding. All operations are
// synchronous in-memory mutations; Submit is the only store call.
type Editor struct {
	profileUC domain.ProfileUsecase
	draft     *domain.UserProfile
}

// NewEditor seeds an editor from an existing profile, or from a freshly
// constructed empty one when the user has no stored record yet.
func NewEditor(profileUC domain.ProfileUsecase, seed *domain.UserProfile) *Editor {
	if seed == nil {
		seed = domain.NewEmptyProfile(uuid.NewString(), "", "")
	}
	return &Editor{
		profileUC: profileUC,
		draft:     seed.Clone(),
	}
}

// Draft exposes the in-progress profile for reading and direct field edits.
func (e *Editor) Draft() *domain.UserProfile {
	return e.draft
}

// AddExperience appends a new entry and returns its generated id.
func (e *Editor) AddExperience(entry domain.WorkExperience) string {
	entry.ID = uuid.NewString()
	e.draft.WorkExperience = append(e.draft.WorkExperience, entry)
	return entry.ID
}

// UpdateExperience replaces the entry at index in place, preserving its id.
func (e *Editor) UpdateExperience(index int, entry domain.WorkExperience) error {
	if index < 0 || index >= len(e.draft.WorkExperience) {
		return fmt.Errorf("work experience index %d out of range", index)
	}
	entry.ID = e.draft.WorkExperience[index].ID
	e.draft.WorkExperience[index] = entry
	return nil
}

// RemoveExperience deletes the entry at index; later entries shift and keep their ids.
func (e *Editor) RemoveExperience(index int) error {
	if index < 0 || index >= len(e.draft.WorkExperience) {
		return fmt.Errorf("work experience index %d out of range", index)
	}
	e.draft.WorkExperience = append(e.draft.WorkExperience[:index], e.draft.WorkExperience[index+1:]...)
	return nil
}

func (e *Editor) AddEducation(entry domain.Education) string {
	entry.ID = uuid.NewString()
	e.draft.Education = append(e.draft.Education, entry)
	return entry.ID
}

func (e *Editor) UpdateEducation(index int, entry domain.Education) error {
	if index < 0 || index >= len(e.draft.Education) {
		return fmt.Errorf("education index %d out of range", index)
	}
	entry.ID = e.draft.Education[index].ID
	e.draft.Education[index] = entry
	return nil
}

func (e *Editor) RemoveEducation(index int) error {
	if index < 0 || index >= len(e.draft.Education) {
		return fmt.Errorf("education index %d out of range", index)
	}
	e.draft.Education = append(e.draft.Education[:index], e.draft.Education[index+1:]...)
	return nil
}

func (e *Editor) AddProject(entry domain.Project) string {
	entry.ID = uuid.NewString()
	if entry.Technologies == nil {
		entry.Technologies = []string{}
	}
	e.draft.Projects = append(e.draft.Projects, entry)
	return entry.ID
}

func (e *Editor) UpdateProject(index int, entry domain.Project) error {
	if index < 0 || index >= len(e.draft.Projects) {
		return fmt.Errorf("project index %d out of range", index)
	}
	entry.ID = e.draft.Projects[index].ID
	e.draft.Projects[index] = entry
	return nil
}

func (e *Editor) RemoveProject(index int) error {
	if index < 0 || index >= len(e.draft.Projects) {
		return fmt.Errorf("project index %d out of range", index)
	}
	e.draft.Projects = append(e.draft.Projects[:index], e.draft.Projects[index+1:]...)
	return nil
}

// AddSkill trims the value and appends it unless blank or already present
// (case-sensitive exact match). Returns whether the list changed.
func (e *Editor) AddSkill(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || containsExact(e.draft.Skills, value) {
		return false
	}
	e.draft.Skills = append(e.draft.Skills, value)
	return true
}

// RemoveSkill deletes a skill by value.
func (e *Editor) RemoveSkill(value string) {
	e.draft.Skills = removeExact(e.draft.Skills, value)
}

// AddTechnology adds a technology to the project at index with the same
// trim/dedup semantics as AddSkill.
func (e *Editor) AddTechnology(index int, value string) (bool, error) {
	if index < 0 || index >= len(e.draft.Projects) {
		return false, fmt.Errorf("project index %d out of range", index)
	}
	value = strings.TrimSpace(value)
	if value == "" || containsExact(e.draft.Projects[index].Technologies, value) {
		return false, nil
	}
	e.draft.Projects[index].Technologies = append(e.draft.Projects[index].Technologies, value)
	return true, nil
}

func (e *Editor) RemoveTechnology(index int, value string) error {
	if index < 0 || index >= len(e.draft.Projects) {
		return fmt.Errorf("project index %d out of range", index)
	}
	e.draft.Projects[index].Technologies = removeExact(e.draft.Projects[index].Technologies, value)
	return nil
}

// Submit validates the whole draft and saves it. On validation or store
// failure nothing is persisted and the draft is left exactly as-is for retry.
func (e *Editor) Submit(ctx context.Context) (*domain.SaveResult, error) {
	result, err := e.profileUC.SaveProfile(ctx, e.draft.Clone())
	if err != nil {
		return nil, err
	}
	if result.Success {
		e.draft.ID = result.ID
	}
	return result, nil
}

func containsExact(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func removeExact(values []string, value string) []string {
	out := values[:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
