package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise-backend/internal/http/response"
	"github.com/platewise/platewise-backend/internal/services"
)

type PreferenceHandler struct {
	svc services.PreferenceService
}

func NewPreferenceHandler(svc services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

// GET /api/preferences
func (h *PreferenceHandler) ListPreferences(c *gin.Context) {
	prefs, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"preferences": prefs})
}
