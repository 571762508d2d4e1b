package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"masil/services/matching/service"

	"github.com/labstack/echo/v4"
)

type MatchingHandler struct {
	matchingService *service.MatchingService
}

func NewMatchingHandler(matchingService *service.MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingService: matchingService}
}

// 선택 회원의 선택 대기 매칭 목록 조회
func (h *MatchingHandler) GetMatchingList(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchings, err := h.matchingService.GetSelectorMatchingList(memberID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, matchings)
}

// 선택 회원의 후보 선택
func (h *MatchingHandler) SelectCandidate(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchingID, err := strconv.Atoi(c.Param("matchingID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Matching ID is not a number")
	}

	if err := h.matchingService.SelectCandidate(memberID, matchingID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// 후보 회원의 수락 대기 매칭 목록 조회
func (h *MatchingHandler) GetPendingMatchings(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchings, err := h.matchingService.GetCandidatePendingMatchings(memberID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, matchings)
}

// 후보 회원의 매칭 수락
func (h *MatchingHandler) AcceptMatching(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchingID, err := strconv.Atoi(c.Param("matchingID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Matching ID is not a number")
	}

	if err := h.matchingService.AcceptByCandidate(memberID, matchingID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// 후보 회원의 매칭 거절
func (h *MatchingHandler) RejectMatching(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchingID, err := strconv.Atoi(c.Param("matchingID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Matching ID is not a number")
	}

	if err := h.matchingService.RejectByCandidate(memberID, matchingID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// 선택 회원의 진행 중 매칭 상태 조회
func (h *MatchingHandler) GetSelectedStatus(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	matchings, err := h.matchingService.GetSelectedMatchingStatus(memberID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, matchings)
}

// 선택 회원의 전체 매칭 철회
func (h *MatchingHandler) WithdrawMatchings(c echo.Context) error {
	memberID, err := memberIDFromHeader(c)
	if err != nil {
		return err
	}

	if err := h.matchingService.WithdrawAllBySelector(memberID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// 세션 미들웨어가 채워 주는 X-User-ID 헤더에서 회원 ID 추출
func memberIDFromHeader(c echo.Context) (int, error) {
	xUserID := c.Request().Header.Get("X-User-ID")
	memberID, err := strconv.Atoi(xUserID)
	if err != nil {
		log.Printf("User ID is not a number: %s", xUserID)
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "User ID is not a number")
	}
	return memberID, nil
}

// 서비스 에러를 HTTP 상태 코드로 변환
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrMatchingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidOwnership):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrInvalidBatch):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		log.Printf("❌ Internal error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
