package handler

import (
	"net/http"

	"github.com/parisxmas/OxiSurvey/internal/service"
)

type AdminHandler struct {
	svc *service.SurveyService
}

func NewAdminHandler(svc *service.SurveyService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit := service.ParsePagination(q.Get("page"), q.Get("limit"))

	surveys, pagination, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"data":       surveys,
		"pagination": pagination,
	})
}
