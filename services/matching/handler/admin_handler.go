package handler

import (
	"net/http"
	"strconv"

	"masil/pkg/dto"
	"masil/services/matching/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// 승인 대기 회원 목록 조회
func (h *AdminHandler) GetPendingMembers(c echo.Context) error {
	members, err := h.adminService.GetPendingApprovalMembers()
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, members)
}

// 회원 상세 조회
func (h *AdminHandler) GetMemberDetail(c echo.Context) error {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Member ID is not a number")
	}

	member, err := h.adminService.GetMemberDetail(memberID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, member)
}

// 회원 승인/블랙리스트 처리
func (h *AdminHandler) ChangeMemberStatus(c echo.Context) error {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Member ID is not a number")
	}

	var req dto.ChangeMemberStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.adminService.ChangeMemberStatus(memberID, req); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// 승인된 선택 회원 목록 조회
func (h *AdminHandler) GetApprovedSelectors(c echo.Context) error {
	selectors, err := h.adminService.GetApprovedSelectors()
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, selectors)
}

// 선택 회원 기준 후보 랭킹 조회 (호환 점수 내림차순)
func (h *AdminHandler) GetMatchingCandidates(c echo.Context) error {
	selectorID, err := strconv.Atoi(c.Param("selectorID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Selector ID is not a number")
	}

	candidates, err := h.adminService.GetMatchingCandidates(selectorID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, candidates)
}

// 매칭 배치 생성 (선택 회원 1명 + 후보 3명)
func (h *AdminHandler) CreateMatching(c echo.Context) error {
	var req dto.CreateMatchingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.adminService.CreateMatching(req); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusCreated)
}

// 전체 매칭 현황 조회 (선택 회원별 그룹)
func (h *AdminHandler) GetAllMatchings(c echo.Context) error {
	matchings, err := h.adminService.GetAllMatchings()
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, matchings)
}
