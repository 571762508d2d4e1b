package service

import (
	"fmt"
	"log"

	"masil/pkg/dto"
	"masil/pkg/models"
	"masil/services/member/repository"
)

type MemberService struct {
	repo *repository.MemberRepository
}

func NewMemberService(repo *repository.MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// 회원 가입 (가입 직후에는 프로필 미완성 상태)
func (s *MemberService) RegisterMember(req dto.RegisterMemberRequest) (*dto.MemberDTO, error) {
	if req.Role != models.RoleSelector && req.Role != models.RoleCandidate {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, req.Role)
	}

	existing, err := s.repo.GetMemberByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
	}

	member := models.Member{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: models.MemberStatusIncompleteProfile,
	}
	id, err := s.repo.InsertMember(member)
	if err != nil {
		return nil, err
	}
	member.ID = id

	log.Printf("✅ 회원 가입 완료: %s (ID %d, %s)", member.Name, member.ID, member.Role)

	memberDTO := dto.MemberToDTO(&member)
	return &memberDTO, nil
}

// 특정 회원 조회
func (s *MemberService) GetMemberByID(id int) (*dto.MemberDTO, error) {
	member, err := s.repo.GetMemberByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, id)
	}

	memberDTO := dto.MemberToDTO(member)
	return &memberDTO, nil
}

// 푸시 토큰 업데이트
func (s *MemberService) UpdatePushToken(memberID int, req dto.UpdatePushTokenRequest) error {
	member, err := s.repo.GetMemberByID(memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
	}

	return s.repo.UpdatePushToken(memberID, req.PushToken)
}

// 회원 탈퇴 (soft delete)
func (s *MemberService) DeleteMember(id int) error {
	member, err := s.repo.GetMemberByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("%w: %d", ErrMemberNotFound, id)
	}

	return s.repo.DeleteMember(id)
}
