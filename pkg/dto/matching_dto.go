package dto

import (
	"masil/pkg/models"
)

// CreateMatchingRequest는 관리자 매칭 배치 생성 요청 (선택 회원 1명 + 후보 3명)
type CreateMatchingRequest struct {
	SelectorID   int   `json:"selector_id"`
	CandidateIDs []int `json:"candidate_ids"`
}

// ChangeMemberStatusRequest는 관리자 승인/블랙 처리 요청
type ChangeMemberStatusRequest struct {
	Status models.MemberStatus `json:"status"`
}

// MatchingScoreResponse는 선택 회원 기준 후보 랭킹 항목
type MatchingScoreResponse struct {
	MemberID      int               `json:"member_id"`
	Name          string            `json:"name"`
	Height        *int              `json:"height"`
	Religion      *models.Religion  `json:"religion"`
	Education     *models.Education `json:"education"`
	Asset         *models.Asset     `json:"asset"`
	MatchingScore float64           `json:"matching_score"`
	ScoreColor    string            `json:"score_color"`
	ScoreLevel    string            `json:"score_level"`
	MatchingCount int               `json:"matching_count"` // 이미 참여 중인 매칭 수
}

// MatchingListResponse는 선택 회원에게 보여줄 매칭 목록 항목
type MatchingListResponse struct {
	MatchingID    int                   `json:"matching_id"`
	MatchingOrder int                   `json:"matching_order"`
	Status        models.MatchingStatus `json:"status"`
	Candidate     MemberDTO             `json:"candidate"`
}

// CandidatePendingResponse는 후보 회원에게 보여줄 수락 대기 매칭 항목
type CandidatePendingResponse struct {
	MatchingID int                   `json:"matching_id"`
	Status     models.MatchingStatus `json:"status"`
	Selector   MemberDTO             `json:"selector"`
}

// MatchedMemberListResponse는 관리자용 매칭 배치 현황
type MatchedMemberListResponse struct {
	SelectorID   int            `json:"selector_id"`
	SelectorName string         `json:"selector_name"`
	Matchings    []MatchedEntry `json:"matchings"`
}

type MatchedEntry struct {
	MatchingID    int                   `json:"matching_id"`
	CandidateID   int                   `json:"candidate_id"`
	CandidateName string                `json:"candidate_name"`
	MatchingOrder int                   `json:"matching_order"`
	Status        models.MatchingStatus `json:"status"`
}
