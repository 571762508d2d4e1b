package handler

import (
	"encoding/json"
	"net/http"

	"masil/pkg/dto"
	"masil/services/member/service"
)

type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// 프로필 + 선호 정보 제출
func (h *PreferenceHandler) SavePreference(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.SavePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.preferenceService.SaveMemberPreference(memberID, req); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 저장된 선호 정보 조회
func (h *PreferenceHandler) FindPreference(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDFromHeader(w, r)
	if !ok {
		return
	}

	preference, err := h.preferenceService.GetMemberPreference(memberID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(preference)
}
