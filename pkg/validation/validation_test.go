package validation_test

import (
	"testing"

	"profilecard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Email string `json:"email" validate:"required,email"`
}

type form struct {
	Username string   `json:"username" validate:"required,min=3,username"`
	Contact  contact  `json:"contact"`
	Tags     []string `json:"tags" validate:"required,min=1,unique"`
}

func TestUsernameValidator(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Var("jane_doe-1", "username"))
	assert.Error(t, v.Var("jane doe", "username"))
	assert.Error(t, v.Var("jane!", "username"))
}

func TestFieldsUsesJSONPaths(t *testing.T) {
	v := validation.New()

	err := v.Struct(&form{Username: "a b", Tags: []string{}})
	require.Error(t, err)

	fields := validation.Fields(err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "contact.email")
	assert.Contains(t, fields, "tags")
	assert.Equal(t, "is required", fields["contact.email"])
	assert.Equal(t, "can only contain letters, numbers, hyphens, and underscores", fields["username"])
}

func TestFieldsCollectsEveryViolation(t *testing.T) {
	v := validation.New()

	err := v.Struct(&form{Username: "", Contact: contact{Email: "nope"}, Tags: []string{"a", "a"}})
	require.Error(t, err)

	fields := validation.Fields(err)
	assert.Len(t, fields, 3)
	assert.Equal(t, "must be a valid email address", fields["contact.email"])
	assert.Equal(t, "must not contain duplicate entries", fields["tags"])
}
