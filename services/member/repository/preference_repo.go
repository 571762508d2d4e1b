package repository

import (
	"errors"
	"log"

	"masil/pkg/models"

	"gorm.io/gorm"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// 선호 정보 삽입 또는 업데이트
func (r *PreferenceRepository) UpsertPreference(preference models.MemberPreference) error {
	if err := r.db.Save(&preference).Error; err != nil {
		log.Printf("❌ Failed to upsert preference for member ID %d: %v", preference.MemberID, err)
		return err
	}
	return nil
}

// 선호 정보 조회
func (r *PreferenceRepository) GetPreferenceByMemberID(memberID int) (*models.MemberPreference, error) {
	var preference models.MemberPreference
	err := r.db.First(&preference, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to get preference for member ID %d: %v", memberID, err)
		return nil, err
	}
	return &preference, nil
}
