package service

import (
	"encoding/json"
	"fmt"
	"log"

	"masil/pkg/dto"
	"masil/pkg/models"
	"masil/services/member/repository"
)

type PreferenceService struct {
	repo  *repository.MemberRepository
	prepo *repository.PreferenceRepository
}

func NewPreferenceService(repo *repository.MemberRepository, prepo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo, prepo: prepo}
}

// 프로필 + 선호 정보 제출
// 제출이 완료되면 회원은 관리자 승인 대기 상태가 된다.
func (s *PreferenceService) SaveMemberPreference(memberID int, req dto.SavePreferenceRequest) error {
	member, err := s.repo.GetMemberByID(memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
	}

	// 프로필 제출은 미완성/승인 대기 상태에서만 허용 (승인 이후에는 관리자 경유)
	if member.Status != models.MemberStatusIncompleteProfile &&
		member.Status != models.MemberStatusPendingApproval {
		return fmt.Errorf("%w: 현재 상태 %s에서는 프로필을 수정할 수 없습니다", ErrInvalidState, member.Status)
	}

	if err := validatePriorities(req.Priority1, req.Priority2, req.Priority3); err != nil {
		return err
	}

	preferredJobs, err := marshalJobs(req.PreferredJobs)
	if err != nil {
		return err
	}
	avoidedJobs, err := marshalJobs(req.AvoidedJobs)
	if err != nil {
		return err
	}

	preference := models.MemberPreference{
		MemberID:                 memberID,
		PreferredHeightMin:       req.PreferredHeightMin,
		PreferredHeightMax:       req.PreferredHeightMax,
		PreferredEducation:       req.PreferredEducation,
		PreferredAppearanceStyle: req.PreferredAppearanceStyle,
		ParentAssetRequirement:   req.ParentAssetRequirement,
		PreferredAssetMin:        req.PreferredAssetMin,
		PreferredAssetMax:        req.PreferredAssetMax,
		PreferredJobs:            preferredJobs,
		AvoidedJobs:              avoidedJobs,
		Priority1:                req.Priority1,
		Priority2:                req.Priority2,
		Priority3:                req.Priority3,
	}

	if len(req.AvoidReligions) > 0 {
		mask := models.ReligionsToBitmask(req.AvoidReligions)
		preference.AvoidReligionsBitmask = &mask
	}

	// 재제출이면 기존 행을 덮어쓴다
	existing, err := s.prepo.GetPreferenceByMemberID(memberID)
	if err != nil {
		return err
	}
	if existing != nil {
		preference.ID = existing.ID
		preference.CreatedAt = existing.CreatedAt
	}

	if err := s.prepo.UpsertPreference(preference); err != nil {
		return err
	}

	// 프로필 속성 반영
	if req.Name != "" {
		member.Name = req.Name
	}
	member.Height = req.Height
	member.Religion = req.Religion
	member.Education = req.Education
	member.Asset = req.Asset
	member.OtherInfo = req.OtherInfo
	member.ChangeStatus(models.MemberStatusPendingApproval)

	if err := s.repo.UpdateMember(member); err != nil {
		return err
	}

	log.Printf("✅ 회원 %d 프로필 제출 완료, 승인 대기 상태로 전환", memberID)
	return nil
}

// 저장된 선호 정보 조회
func (s *PreferenceService) GetMemberPreference(memberID int) (*dto.PreferenceResponse, error) {
	member, err := s.repo.GetMemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
	}

	preference, err := s.prepo.GetPreferenceByMemberID(memberID)
	if err != nil {
		return nil, err
	}
	if preference == nil {
		return nil, fmt.Errorf("%w: member %d", ErrPreferenceNotFound, memberID)
	}

	resp := &dto.PreferenceResponse{
		MemberID:                 preference.MemberID,
		PreferredHeightMin:       preference.PreferredHeightMin,
		PreferredHeightMax:       preference.PreferredHeightMax,
		PreferredEducation:       preference.PreferredEducation,
		PreferredAppearanceStyle: preference.PreferredAppearanceStyle,
		ParentAssetRequirement:   preference.ParentAssetRequirement,
		PreferredAssetMin:        preference.PreferredAssetMin,
		PreferredAssetMax:        preference.PreferredAssetMax,
		Priority1:                preference.Priority1,
		Priority2:                preference.Priority2,
		Priority3:                preference.Priority3,
	}

	if preference.AvoidReligionsBitmask != nil {
		resp.AvoidReligions = models.ReligionsFromBitmask(*preference.AvoidReligionsBitmask)
	}

	resp.PreferredJobs, err = unmarshalJobs(preference.PreferredJobs)
	if err != nil {
		return nil, err
	}
	resp.AvoidedJobs, err = unmarshalJobs(preference.AvoidedJobs)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// 우선순위 검증: 설정된 순위는 유효한 카테고리여야 하고 서로 달라야 한다
func validatePriorities(priorities ...*models.PreferenceCategory) error {
	seen := make(map[models.PreferenceCategory]bool)
	for _, p := range priorities {
		if p == nil {
			continue
		}
		if !p.Valid() {
			return fmt.Errorf("%w: 알 수 없는 카테고리 %s", ErrInvalidPriorities, *p)
		}
		if seen[*p] {
			return fmt.Errorf("%w: 중복된 카테고리 %s", ErrInvalidPriorities, *p)
		}
		seen[*p] = true
	}
	return nil
}

func marshalJobs(jobs []models.JobType) (string, error) {
	if len(jobs) == 0 {
		return "", nil
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job list: %w", err)
	}
	return string(data), nil
}

func unmarshalJobs(data string) ([]models.JobType, error) {
	if data == "" {
		return nil, nil
	}
	var jobs []models.JobType
	if err := json.Unmarshal([]byte(data), &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job list: %w", err)
	}
	return jobs, nil
}
