package models

import (
	"time"
)

// MemberRole은 회원의 역할 (가입 시 결정되며 변경 불가)
type MemberRole string

const (
	RoleSelector  MemberRole = "SELECTOR"  // 매칭 상대 3명 중 1명을 선택하는 회원
	RoleCandidate MemberRole = "CANDIDATE" // 매칭 후보로 제시되는 회원
)

// MemberStatus는 회원의 상태
type MemberStatus string

const (
	MemberStatusIncompleteProfile MemberStatus = "INCOMPLETE_PROFILE" // 가입 직후, 프로필 미완성
	MemberStatusPendingApproval   MemberStatus = "PENDING_APPROVAL"   // 프로필 제출 완료, 관리자 승인 대기
	MemberStatusApproved          MemberStatus = "APPROVED"           // 승인 완료, 매칭 가능
	MemberStatusConnecting        MemberStatus = "CONNECTING"         // 매칭 진행 중
	MemberStatusConnected         MemberStatus = "CONNECTED"          // 매칭 성사
	MemberStatusBlacklisted       MemberStatus = "BLACKLISTED"        // 블랙 유저
)

type Member struct {
	ID        int          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string       `gorm:"size:100" json:"name"`
	Email     string       `gorm:"size:100;uniqueIndex" json:"email"`
	Role      MemberRole   `gorm:"size:20;not null" json:"role"`
	Status    MemberStatus `gorm:"size:30;not null" json:"status"`
	Height    *int         `json:"height"`
	Religion  *Religion    `gorm:"size:20" json:"religion"`
	Education *Education   `gorm:"size:30" json:"education"`
	Asset     *Asset       `gorm:"size:30" json:"asset"`
	OtherInfo string       `gorm:"type:text" json:"other_info"`
	PushToken string       `gorm:"size:500" json:"push_token"`
	IsDeleted bool         `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) ChangeStatus(status MemberStatus) {
	m.Status = status
}

func (m *Member) ChangeToConnecting() {
	m.Status = MemberStatusConnecting
}
