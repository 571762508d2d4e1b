package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"masil/pkg/dto"
	"masil/pkg/redis"
	"masil/services/member/service"

	"github.com/google/uuid"
)

type MemberHandler struct {
	memberService *service.MemberService
	redisClient   *redis.RedisClient
}

func NewMemberHandler(memberService *service.MemberService, redisClient *redis.RedisClient) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		redisClient:   redisClient,
	}
}

// 회원 가입 (가입과 동시에 세션 발급)
func (h *MemberHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	member, err := h.memberService.RegisterMember(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Redis에 세션 생성 후 쿠키로 전달
	sessionID := fmt.Sprintf("session-%d-%s", member.ID, uuid.NewString())
	if err := h.redisClient.RegisterSession(sessionID, member.ID); err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, sessionID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(member)
}

// 로그아웃 (세션 삭제)
func (h *MemberHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "No session ID provided", http.StatusUnauthorized)
		return
	}

	if err := h.redisClient.DeleteSession(cookie.Value); err != nil {
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 내 정보 조회
func (h *MemberHandler) FindMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDFromHeader(w, r)
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByID(memberID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(member)
}

// 푸시 토큰 업데이트
func (h *MemberHandler) UpdatePushToken(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.memberService.UpdatePushToken(memberID, req); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 회원 탈퇴
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(memberID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 세션 쿠키 설정
func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
	})
}

// 세션 미들웨어가 채워 주는 X-User-ID 헤더에서 회원 ID 추출
func memberIDFromHeader(w http.ResponseWriter, r *http.Request) (int, bool) {
	xUserID := r.Header.Get("X-User-ID")
	if xUserID == "" {
		http.Error(w, "User ID is required", http.StatusUnauthorized)
		return 0, false
	}

	memberID, err := strconv.Atoi(xUserID)
	if err != nil {
		http.Error(w, fmt.Sprintf("User ID is not number, xUserID: %s", xUserID), http.StatusUnauthorized)
		return 0, false
	}
	return memberID, true
}

// 서비스 에러를 HTTP 상태 코드로 변환
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrPreferenceNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidPriorities):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("❌ Internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
