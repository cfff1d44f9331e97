package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilecard-backend/config"
	v1 "profilecard-backend/internal/delivery/http/v1"
	"profilecard-backend/internal/repository/memory"
	"profilecard-backend/internal/usecase"
	"profilecard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSuggester struct{}

func (failingSuggester) SuggestSkills(ctx context.Context, jobDescription string) ([]string, error) {
	return nil, errors.New("provider down")
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewProfileRepository()
	require.NoError(t, repo.Seed(context.Background()))

	cfg := &config.Config{
		FrontendURL:               "http://localhost:3000",
		RateLimitWindowSeconds:    60,
		RateLimitSuggestThreshold: 10000,
		RateLimitGlobalThreshold:  100000,
	}

	return v1.NewRouter(v1.RouterDeps{
		ProfileUC:    usecase.NewProfileUsecase(repo, validation.New()),
		ViewUC:       usecase.NewViewUsecase(),
		SuggestionUC: usecase.NewSuggestionUsecase(failingSuggester{}),
		Config:       cfg,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetSeededProfile(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/v1/profiles/sample-user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "Sample User")
}

func TestGetUnknownProfileIs404(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/v1/profiles/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestSaveThenView(t *testing.T) {
	router := newTestRouter(t)

	profile := map[string]any{
		"fullName": "Jane Doe",
		"headline": "Software Engineer",
		"contactInfo": map[string]any{
			"email": "jane@example.com",
		},
		"skills": []string{"Go", "Rust"},
		"settings": map[string]any{
			"showContact":    true,
			"showSummary":    true,
			"showExperience": true,
			"showEducation":  true,
			"showSkills":     false,
			"showProjects":   true,
		},
	}

	w, env := doJSON(t, router, http.MethodPut, "/v1/profiles/janedoe", profile)
	require.Equal(t, http.StatusOK, w.Code, env.Message)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "/v1/profiles/janedoe/view")

	// The saved record is addressable under the path username
	w, env = doJSON(t, router, http.MethodGet, "/v1/profiles/janedoe", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Jane Doe")

	// The public view hides the skills section per settings
	w, env = doJSON(t, router, http.MethodGet, "/v1/profiles/janedoe/view", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), `"type":"skills"`)
	assert.Contains(t, string(env.Data), `"type":"contact"`)
}

func TestSaveValidationFailureNamesFields(t *testing.T) {
	router := newTestRouter(t)

	profile := map[string]any{
		"fullName": "",
		"headline": "hey",
		"contactInfo": map[string]any{
			"email": "not-an-email",
		},
		"skills": []string{},
	}

	w, env := doJSON(t, router, http.MethodPut, "/v1/profiles/janedoe", profile)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Error), "fullName")
	assert.Contains(t, string(env.Error), "headline")
	assert.Contains(t, string(env.Error), "contactInfo.email")
	assert.Contains(t, string(env.Error), "skills")

	// Nothing was persisted
	w, _ = doJSON(t, router, http.MethodGet, "/v1/profiles/janedoe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestEndpointAbsorbsProviderFailure(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/v1/skills/suggest", map[string]any{
		"jobDescription": "Data Scientist",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"skills":[]}`, string(env.Data))
}

func TestSuggestEndpointRejectsBlankInput(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/v1/skills/suggest", map[string]any{
		"jobDescription": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}
