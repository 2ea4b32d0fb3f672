package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise-backend/internal/http/response"
	"github.com/platewise/platewise-backend/internal/services"
)

type RecipeHandler struct {
	svc      services.RecipeService
	variants services.RecipeVariantService
}

func NewRecipeHandler(svc services.RecipeService, variants services.RecipeVariantService) *RecipeHandler {
	return &RecipeHandler{svc: svc, variants: variants}
}

type preferredRecipeRequest struct {
	Preferences []string `json:"preferences"`
}

// GET /api/recipes?search=
func (h *RecipeHandler) ListOriginals(c *gin.Context) {
	recipes, err := h.svc.ListOriginals(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": recipes})
}

// GET /api/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	recipe, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": recipe})
}

// POST /api/recipes/:id/preferred
func (h *RecipeHandler) GetPreferredRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	var req preferredRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	recipe, err := h.variants.GetPreferredRecipe(c.Request.Context(), id, req.Preferences)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": recipe})
}

func recipeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_recipe_id", err)
		return 0, false
	}
	return id, true
}
