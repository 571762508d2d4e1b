package service

import (
	"masil/pkg/models"
)

// MatchingStore는 매칭 엔진이 요구하는 저장소 계약.
// 회원/매칭 엔티티는 항상 이 계약을 통해서만 읽고 쓴다 (메모리 캐싱 금지).
type MatchingStore interface {
	// 존재하지 않으면 (nil, nil)
	FindMemberByID(id int) (*models.Member, error)
	FindMatchingByID(id int) (*models.Matching, error)

	FindMatchingsBySelectorAndStatus(selectorID int, status models.MatchingStatus) ([]models.Matching, error)
	FindMatchingsByCandidateAndStatus(candidateID int, status models.MatchingStatus) ([]models.Matching, error)
	FindMatchingsBySelectorAndStatusIn(selectorID int, statuses []models.MatchingStatus) ([]models.Matching, error)
	FindMatchingsBySelectorOrderByMatchingOrder(selectorID int) ([]models.Matching, error)
	FindDistinctSelectorIDs() ([]int, error)
	CountMatchingsByCandidate(candidateID int) (int64, error)

	FindMembersByStatus(status models.MemberStatus) ([]models.Member, error)
	FindMembersByRoleAndStatus(role models.MemberRole, status models.MemberStatus) ([]models.Member, error)
	FindMembersByRoleAndStatusIn(role models.MemberRole, statuses []models.MemberStatus) ([]models.Member, error)

	FindPreferenceByMemberID(memberID int) (*models.MemberPreference, error)

	// upsert, 트랜잭션 내부라면 해당 트랜잭션의 일부로 수행
	SaveMember(member *models.Member) error
	SaveMatching(matching *models.Matching) error
}

// TxMatchingStore는 트랜잭션 경계를 추가한 저장소 계약.
// 라이프사이클/배치 연산은 각각 정확히 하나의 트랜잭션 안에서 수행된다.
type TxMatchingStore interface {
	MatchingStore

	// fn 내부의 모든 읽기/쓰기는 하나의 트랜잭션으로 묶인다.
	// fn이 에러를 반환하면 전체 롤백.
	InTransaction(fn func(tx MatchingStore) error) error
}
