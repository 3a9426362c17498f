package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/parisxmas/OxiSurvey/internal/service"
)

type SurveyHandler struct {
	svc *service.SurveyService
}

func NewSurveyHandler(svc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// Submit stores one survey response. Only userId and answers are read from
// the body; everything else on the record is set by the server.
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string          `json:"userId"`
		Answers json.RawMessage `json:"answers"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	answers, ok := decodeAnswers(req.Answers)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	sub, err := h.svc.Submit(r.Context(), service.SubmitInput{
		UserID:    req.UserID,
		Answers:   answers,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      sub.ID.Hex(),
		"message": "Survey submitted successfully",
	})
}

// decodeAnswers accepts only a JSON object; null, arrays and scalars are
// rejected.
func decodeAnswers(raw json.RawMessage) (map[string]any, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var answers map[string]any
	if err := json.Unmarshal(raw, &answers); err != nil || answers == nil {
		return nil, false
	}
	return answers, true
}
