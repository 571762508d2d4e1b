package repository

import (
	"errors"
	"log"

	"masil/pkg/models"
	"masil/services/matching/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchingRepository는 service.TxMatchingStore의 MySQL 구현.
// 트랜잭션 안에서는 조회 시 행 잠금(SELECT ... FOR UPDATE)을 건다.
type MatchingRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewMatchingRepository(db *gorm.DB) *MatchingRepository {
	return &MatchingRepository{db: db}
}

// 데이터베이스 초기화
func (r *MatchingRepository) InitDB() error {
	err := r.db.AutoMigrate(&models.Member{}, &models.MemberPreference{}, &models.Matching{})
	if err != nil {
		log.Printf("❌ Failed to migrate tables: %v", err)
		return err
	}
	log.Println("✅ Tables members, member_preferences and matchings migrated or already exist.")
	return nil
}

// InTransaction은 fn의 모든 읽기/쓰기를 하나의 트랜잭션으로 묶는다.
func (r *MatchingRepository) InTransaction(fn func(tx service.MatchingStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&MatchingRepository{db: tx, inTx: true})
	})
}

// 삭제되지 않은 회원 조회 쿼리 (트랜잭션 내에서는 행 잠금)
func (r *MatchingRepository) memberQuery() *gorm.DB {
	q := r.db.Where("is_deleted = ?", false)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

func (r *MatchingRepository) matchingQuery() *gorm.DB {
	q := r.db
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// 회원 조회 (ID)
func (r *MatchingRepository) FindMemberByID(id int) (*models.Member, error) {
	var member models.Member
	err := r.memberQuery().First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to find member by ID %d: %v", id, err)
		return nil, err
	}
	return &member, nil
}

// 매칭 조회 (ID)
func (r *MatchingRepository) FindMatchingByID(id int) (*models.Matching, error) {
	var matching models.Matching
	err := r.matchingQuery().First(&matching, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to find matching by ID %d: %v", id, err)
		return nil, err
	}
	return &matching, nil
}

// 선택 회원의 특정 상태 매칭 목록 조회 (순번 정렬)
func (r *MatchingRepository) FindMatchingsBySelectorAndStatus(selectorID int, status models.MatchingStatus) ([]models.Matching, error) {
	var matchings []models.Matching
	err := r.matchingQuery().
		Where("selector_id = ? AND status = ?", selectorID, status).
		Order("matching_order").
		Find(&matchings).Error
	if err != nil {
		log.Printf("❌ Failed to find matchings for selector %d: %v", selectorID, err)
		return nil, err
	}
	return matchings, nil
}

// 후보 회원의 특정 상태 매칭 목록 조회
func (r *MatchingRepository) FindMatchingsByCandidateAndStatus(candidateID int, status models.MatchingStatus) ([]models.Matching, error) {
	var matchings []models.Matching
	err := r.matchingQuery().
		Where("candidate_id = ? AND status = ?", candidateID, status).
		Find(&matchings).Error
	if err != nil {
		log.Printf("❌ Failed to find matchings for candidate %d: %v", candidateID, err)
		return nil, err
	}
	return matchings, nil
}

// 선택 회원의 여러 상태 매칭 목록 조회
func (r *MatchingRepository) FindMatchingsBySelectorAndStatusIn(selectorID int, statuses []models.MatchingStatus) ([]models.Matching, error) {
	var matchings []models.Matching
	err := r.matchingQuery().
		Where("selector_id = ? AND status IN ?", selectorID, statuses).
		Order("matching_order").
		Find(&matchings).Error
	if err != nil {
		log.Printf("❌ Failed to find matchings for selector %d with statuses %v: %v", selectorID, statuses, err)
		return nil, err
	}
	return matchings, nil
}

// 선택 회원의 전체 매칭 목록 조회 (순번 정렬)
func (r *MatchingRepository) FindMatchingsBySelectorOrderByMatchingOrder(selectorID int) ([]models.Matching, error) {
	var matchings []models.Matching
	err := r.db.
		Where("selector_id = ?", selectorID).
		Order("matching_order").
		Find(&matchings).Error
	if err != nil {
		log.Printf("❌ Failed to find matchings for selector %d: %v", selectorID, err)
		return nil, err
	}
	return matchings, nil
}

// 매칭이 존재하는 선택 회원 ID 목록 조회
func (r *MatchingRepository) FindDistinctSelectorIDs() ([]int, error) {
	var ids []int
	err := r.db.Model(&models.Matching{}).
		Distinct("selector_id").
		Order("selector_id").
		Pluck("selector_id", &ids).Error
	if err != nil {
		log.Printf("❌ Failed to find distinct selector IDs: %v", err)
		return nil, err
	}
	return ids, nil
}

// 후보 회원이 참여 중인 매칭 수 조회
func (r *MatchingRepository) CountMatchingsByCandidate(candidateID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Matching{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error
	if err != nil {
		log.Printf("❌ Failed to count matchings for candidate %d: %v", candidateID, err)
		return 0, err
	}
	return count, nil
}

// 특정 상태의 회원 목록 조회
func (r *MatchingRepository) FindMembersByStatus(status models.MemberStatus) ([]models.Member, error) {
	var members []models.Member
	err := r.db.
		Where("is_deleted = ? AND status = ?", false, status).
		Find(&members).Error
	if err != nil {
		log.Printf("❌ Failed to find members by status %s: %v", status, err)
		return nil, err
	}
	return members, nil
}

// 역할과 상태로 회원 목록 조회
func (r *MatchingRepository) FindMembersByRoleAndStatus(role models.MemberRole, status models.MemberStatus) ([]models.Member, error) {
	var members []models.Member
	err := r.db.
		Where("is_deleted = ? AND role = ? AND status = ?", false, role, status).
		Find(&members).Error
	if err != nil {
		log.Printf("❌ Failed to find members by role %s and status %s: %v", role, status, err)
		return nil, err
	}
	return members, nil
}

// 역할과 여러 상태로 회원 목록 조회
func (r *MatchingRepository) FindMembersByRoleAndStatusIn(role models.MemberRole, statuses []models.MemberStatus) ([]models.Member, error) {
	var members []models.Member
	err := r.db.
		Where("is_deleted = ? AND role = ? AND status IN ?", false, role, statuses).
		Find(&members).Error
	if err != nil {
		log.Printf("❌ Failed to find members by role %s and statuses %v: %v", role, statuses, err)
		return nil, err
	}
	return members, nil
}

// 선호 정보 조회
func (r *MatchingRepository) FindPreferenceByMemberID(memberID int) (*models.MemberPreference, error) {
	var preference models.MemberPreference
	err := r.db.First(&preference, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to find preference for member %d: %v", memberID, err)
		return nil, err
	}
	return &preference, nil
}

// 회원 저장 (upsert)
func (r *MatchingRepository) SaveMember(member *models.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		log.Printf("❌ Failed to save member %d: %v", member.ID, err)
		return err
	}
	return nil
}

// 매칭 저장 (upsert)
func (r *MatchingRepository) SaveMatching(matching *models.Matching) error {
	if err := r.db.Save(matching).Error; err != nil {
		log.Printf("❌ Failed to save matching %d: %v", matching.ID, err)
		return err
	}
	return nil
}
