package dto

import (
	"masil/pkg/models"
)

type MemberDTO struct {
	ID        int                 `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Role      models.MemberRole   `json:"role"`
	Status    models.MemberStatus `json:"status"`
	Height    *int                `json:"height"`
	Religion  *models.Religion    `json:"religion"`
	Education *models.Education   `json:"education"`
	Asset     *models.Asset       `json:"asset"`
	OtherInfo string              `json:"other_info"`
}

func MemberToDTO(m *models.Member) MemberDTO {
	return MemberDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		Status:    m.Status,
		Height:    m.Height,
		Religion:  m.Religion,
		Education: m.Education,
		Asset:     m.Asset,
		OtherInfo: m.OtherInfo,
	}
}

type RegisterMemberRequest struct {
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  models.MemberRole `json:"role"`
}

type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token"`
}
