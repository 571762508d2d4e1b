package models

import (
	"time"
)

// PreferenceCategory는 선택 회원이 1~3순위로 매기는 선호 카테고리
type PreferenceCategory string

const (
	CategoryHeight      PreferenceCategory = "HEIGHT"
	CategoryReligion    PreferenceCategory = "RELIGION"
	CategoryEducation   PreferenceCategory = "EDUCATION"
	CategoryAsset       PreferenceCategory = "ASSET"
	CategoryAppearance  PreferenceCategory = "APPEARANCE"
	CategoryJob         PreferenceCategory = "JOB"
	CategoryParentAsset PreferenceCategory = "PARENT_ASSET"
)

// AllCategories는 닫힌 카테고리 집합 (스코어러는 이 집합 전체를 처리해야 함)
var AllCategories = []PreferenceCategory{
	CategoryHeight,
	CategoryReligion,
	CategoryEducation,
	CategoryAsset,
	CategoryAppearance,
	CategoryJob,
	CategoryParentAsset,
}

func (c PreferenceCategory) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// MemberPreference는 선택 회원 1명당 1개의 선호 정보
type MemberPreference struct {
	ID                       int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID                 int                 `gorm:"uniqueIndex;not null" json:"member_id"`
	PreferredHeightMin       *int                `json:"preferred_height_min"`
	PreferredHeightMax       *int                `json:"preferred_height_max"`
	AvoidReligionsBitmask    *int                `json:"avoid_religions_bitmask"`
	PreferredEducation       *Education          `gorm:"size:30" json:"preferred_education"`
	PreferredAppearanceStyle *AppearanceStyle    `gorm:"size:30" json:"preferred_appearance_style"`
	ParentAssetRequirement   *ParentAssetLevel   `gorm:"size:30" json:"parent_asset_requirement"`
	PreferredAssetMin        *int64              `json:"preferred_asset_min"`
	PreferredAssetMax        *int64              `json:"preferred_asset_max"`
	PreferredJobs            string              `gorm:"type:text" json:"preferred_jobs"` // JobType 목록 JSON
	AvoidedJobs              string              `gorm:"type:text" json:"avoided_jobs"`   // JobType 목록 JSON
	Priority1                *PreferenceCategory `gorm:"size:30" json:"priority1"`
	Priority2                *PreferenceCategory `gorm:"size:30" json:"priority2"`
	Priority3                *PreferenceCategory `gorm:"size:30" json:"priority3"`
	CreatedAt                time.Time           `json:"created_at"`
	UpdatedAt                time.Time           `json:"updated_at"`
}

func (MemberPreference) TableName() string {
	return "member_preferences"
}
