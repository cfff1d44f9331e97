package v1

import (
	"net/http"

	"profilecard-backend/internal/delivery/http/response"
	"profilecard-backend/internal/domain"
	"profilecard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionUC domain.SuggestionUsecase
}

// NewSuggestionHandler registers the AI suggestion route. The rate limiter is
// passed in because this is the only endpoint that spends provider credits.
func NewSuggestionHandler(r *gin.RouterGroup, suggestionUC domain.SuggestionUsecase, rateLimiter gin.HandlerFunc) {
	handler := &SuggestionHandler{suggestionUC: suggestionUC}

	r.POST("/skills/suggest", rateLimiter, handler.SuggestSkills)
}

// SuggestSkills godoc
// @Summary      Suggest skills from a job description
// @Description  Best-effort AI enrichment: provider failures come back as an empty skill list, never an error. Skills already in currentSkills are filtered out.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SuggestionRequest  true  "Job description and current skills"
// @Success      200      {object}  response.Response{data=domain.SuggestionResult}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /skills/suggest [post]
func (h *SuggestionHandler) SuggestSkills(c *gin.Context) {
	var req domain.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.suggestionUC.Suggest(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill suggestions", result)
}
