package repository

import (
	"errors"
	"log"

	"masil/pkg/models"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// 데이터베이스 초기화
func (r *MemberRepository) InitDB() error {
	err := r.db.AutoMigrate(&models.Member{}, &models.MemberPreference{})
	if err != nil {
		log.Printf("❌ Failed to migrate tables: %v", err)
		return err
	}
	log.Println("✅ Tables members and member_preferences migrated or already exist.")
	return nil
}

// 회원 생성
func (r *MemberRepository) InsertMember(member models.Member) (int, error) {
	if err := r.db.Create(&member).Error; err != nil {
		log.Printf("❌ Failed to insert member: %v", err)
		return 0, err
	}
	return member.ID, nil
}

// 회원 조회 (ID)
func (r *MemberRepository) GetMemberByID(id int) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("is_deleted = ?", false).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to get member by ID %d: %v", id, err)
		return nil, err
	}
	return &member, nil
}

// 회원 조회 (이메일)
func (r *MemberRepository) GetMemberByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("is_deleted = ? AND email = ?", false, email).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to get member by email %s: %v", email, err)
		return nil, err
	}
	return &member, nil
}

// 회원 업데이트
func (r *MemberRepository) UpdateMember(member *models.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		log.Printf("❌ Failed to update member ID %d: %v", member.ID, err)
		return err
	}
	return nil
}

// 푸시 토큰 업데이트
func (r *MemberRepository) UpdatePushToken(memberID int, pushToken string) error {
	result := r.db.Model(&models.Member{}).Where("id = ? AND is_deleted = ?", memberID, false).
		Update("push_token", pushToken)
	if result.Error != nil {
		log.Printf("❌ Failed to update push token for member ID %d: %v", memberID, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		log.Printf("⚠️ No member found with ID %d to update push token", memberID)
		return errors.New("member not found")
	}
	return nil
}

// 회원 삭제 (soft delete)
func (r *MemberRepository) DeleteMember(id int) error {
	result := r.db.Model(&models.Member{}).Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("❌ Failed to delete member ID %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		log.Printf("⚠️ No member found with ID %d to delete", id)
		return errors.New("member not found")
	}
	return nil
}
