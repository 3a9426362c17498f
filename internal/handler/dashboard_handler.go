package handler

import (
	"net/http"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/service"
)

type DashboardHandler struct {
	svc *service.SurveyService
}

func NewDashboardHandler(svc *service.SurveyService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

// Health is the liveness probe. It never touches the database.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Backend API is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
