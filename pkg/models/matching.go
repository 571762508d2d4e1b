package models

import (
	"time"
)

// MatchingStatus는 매칭의 상태. 한번 종결(ACCEPTED/REJECTED)되면 되돌리지 않는다.
type MatchingStatus string

const (
	MatchingStatusPendingSelectorChoice      MatchingStatus = "PENDING_SELECTOR_CHOICE"      // 선택 회원의 선택 대기
	MatchingStatusPendingCandidateAcceptance MatchingStatus = "PENDING_CANDIDATE_ACCEPTANCE" // 후보 회원의 수락 대기
	MatchingStatusAccepted                   MatchingStatus = "ACCEPTED"                     // 매칭 성사
	MatchingStatusRejected                   MatchingStatus = "REJECTED"                     // 매칭 거절
)

// Matching은 선택 회원 1명과 후보 회원 1명을 잇는 조인 레코드.
// 회원 객체를 직접 들지 않고 id만 참조한다.
type Matching struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	SelectorID    int            `gorm:"index;not null" json:"selector_id"`
	CandidateID   int            `gorm:"index;not null" json:"candidate_id"`
	MatchingOrder int            `gorm:"not null" json:"matching_order"` // 배치 내 순번 1..3
	Status        MatchingStatus `gorm:"size:40;not null" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Matching) TableName() string {
	return "matchings"
}

// NewMatching은 선택 대기 상태의 매칭을 생성
func NewMatching(selectorID, candidateID, order int) *Matching {
	return &Matching{
		SelectorID:    selectorID,
		CandidateID:   candidateID,
		MatchingOrder: order,
		Status:        MatchingStatusPendingSelectorChoice,
	}
}

func (m *Matching) SelectBySelector() {
	m.Status = MatchingStatusPendingCandidateAcceptance
}

func (m *Matching) AcceptByCandidate() {
	m.Status = MatchingStatusAccepted
}

func (m *Matching) Reject() {
	m.Status = MatchingStatusRejected
}

// IsTerminal은 매칭이 종결 상태인지 확인
func (m *Matching) IsTerminal() bool {
	return m.Status == MatchingStatusAccepted || m.Status == MatchingStatusRejected
}
