package v1

import (
	"net/http"

	"profilecard-backend/internal/delivery/http/response"
	"profilecard-backend/internal/domain"
	"profilecard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	viewUC    domain.ViewUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, viewUC domain.ViewUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, viewUC: viewUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/:username", handler.GetProfile)
		profiles.PUT("/:username", handler.SaveProfile)
		profiles.GET("/:username/view", handler.GetPublicView)
	}
}

// GetProfile godoc
// @Summary      Get a profile for editing
// @Description  Fetch the full stored profile for a username. A 404 means no record exists yet and the editor should start from an empty profile.
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response{data=domain.UserProfile}
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileUC.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile found", profile)
}

// SaveProfile godoc
// @Summary      Save a profile
// @Description  Validate and upsert the full profile for a username. Nothing is persisted unless every rule passes; violations come back per field.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        username  path      string              true  "Username"
// @Param        profile   body      domain.UserProfile  true  "Profile Data"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /profiles/{username} [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// The path is the authority on which record is being written.
	profile.Username = c.Param("username")

	result, err := h.profileUC.SaveProfile(c.Request.Context(), &profile)
	if err != nil {
		c.Error(err)
		return
	}
	if !result.Success {
		response.Error(c, http.StatusBadRequest, result.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result.Message, gin.H{
		"id":       result.ID,
		"viewPath": "/v1/profiles/" + profile.Username + "/view",
	})
}

// GetPublicView godoc
// @Summary      Public profile view
// @Description  The shareable read-only rendering: sections are included according to the profile's visibility settings.
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response{data=domain.ProfileView}
// @Failure      404       {object}  response.Response
// @Router       /profiles/{username}/view [get]
func (h *ProfileHandler) GetPublicView(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileUC.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public profile", h.viewUC.Render(profile))
}
