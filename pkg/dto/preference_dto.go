package dto

import (
	"masil/pkg/models"
)

// SavePreferenceRequest는 프로필 + 선호 정보 제출 요청
type SavePreferenceRequest struct {
	// 프로필 속성
	Name      string            `json:"name"`
	Height    *int              `json:"height"`
	Religion  *models.Religion  `json:"religion"`
	Education *models.Education `json:"education"`
	Asset     *models.Asset     `json:"asset"`
	OtherInfo string            `json:"other_info"`

	// 선호 정보
	PreferredHeightMin       *int                       `json:"preferred_height_min"`
	PreferredHeightMax       *int                       `json:"preferred_height_max"`
	AvoidReligions           []models.Religion          `json:"avoid_religions"`
	PreferredEducation       *models.Education          `json:"preferred_education"`
	PreferredAppearanceStyle *models.AppearanceStyle    `json:"preferred_appearance_style"`
	ParentAssetRequirement   *models.ParentAssetLevel   `json:"parent_asset_requirement"`
	PreferredAssetMin        *int64                     `json:"preferred_asset_min"`
	PreferredAssetMax        *int64                     `json:"preferred_asset_max"`
	PreferredJobs            []models.JobType           `json:"preferred_jobs"`
	AvoidedJobs              []models.JobType           `json:"avoided_jobs"`
	Priority1                *models.PreferenceCategory `json:"priority1"`
	Priority2                *models.PreferenceCategory `json:"priority2"`
	Priority3                *models.PreferenceCategory `json:"priority3"`
}

// PreferenceResponse는 저장된 선호 정보 조회 응답
type PreferenceResponse struct {
	MemberID                 int                        `json:"member_id"`
	PreferredHeightMin       *int                       `json:"preferred_height_min"`
	PreferredHeightMax       *int                       `json:"preferred_height_max"`
	AvoidReligions           []models.Religion          `json:"avoid_religions"`
	PreferredEducation       *models.Education          `json:"preferred_education"`
	PreferredAppearanceStyle *models.AppearanceStyle    `json:"preferred_appearance_style"`
	ParentAssetRequirement   *models.ParentAssetLevel   `json:"parent_asset_requirement"`
	PreferredAssetMin        *int64                     `json:"preferred_asset_min"`
	PreferredAssetMax        *int64                     `json:"preferred_asset_max"`
	PreferredJobs            []models.JobType           `json:"preferred_jobs"`
	AvoidedJobs              []models.JobType           `json:"avoided_jobs"`
	Priority1                *models.PreferenceCategory `json:"priority1"`
	Priority2                *models.PreferenceCategory `json:"priority2"`
	Priority3                *models.PreferenceCategory `json:"priority3"`
}
