package service

import (
	"fmt"
	"log"
	"sort"

	"masil/pkg/dto"
	"masil/pkg/models"
	eventtypes "masil/pkg/types/eventtype"

	"github.com/samber/lo"
)

// 배치당 후보 수
const batchCandidateCount = 3

// AdminService는 관리자 주도 연산을 수행한다.
// 승인 처리, 후보 랭킹 조회, 매칭 배치 생성.
type AdminService struct {
	store        TxMatchingStore
	scoreService *ScoreService
	emitter      PushEmitter
}

func NewAdminService(store TxMatchingStore, scoreService *ScoreService, emitter PushEmitter) *AdminService {
	return &AdminService{store: store, scoreService: scoreService, emitter: emitter}
}

// 승인 대기 상태 회원 목록 조회
func (s *AdminService) GetPendingApprovalMembers() ([]dto.MemberDTO, error) {
	members, err := s.store.FindMembersByStatus(models.MemberStatusPendingApproval)
	if err != nil {
		return nil, err
	}

	log.Printf("승인 대기 회원 조회: %d명", len(members))

	return lo.Map(members, func(m models.Member, _ int) dto.MemberDTO {
		return dto.MemberToDTO(&m)
	}), nil
}

// 회원 상세 정보 조회
func (s *AdminService) GetMemberDetail(memberID int) (*dto.MemberDTO, error) {
	member, err := s.store.FindMemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: memberId=%d", ErrMemberNotFound, memberID)
	}

	memberDTO := dto.MemberToDTO(member)
	return &memberDTO, nil
}

// 승인 대기 회원 상태 변경: 승인 완료 또는 블랙 유저
func (s *AdminService) ChangeMemberStatus(memberID int, req dto.ChangeMemberStatusRequest) error {
	var notice *pushNotice

	err := s.store.InTransaction(func(tx MatchingStore) error {
		member, err := tx.FindMemberByID(memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return fmt.Errorf("%w: memberId=%d", ErrMemberNotFound, memberID)
		}

		// 승인 대기 상태가 아니면 에러
		if member.Status != models.MemberStatusPendingApproval {
			return fmt.Errorf("%w: 승인 대기 상태의 회원만 상태를 변경할 수 있습니다 (status=%s)", ErrInvalidState, member.Status)
		}

		// 승인 완료 또는 블랙 유저로만 변경 가능
		if req.Status != models.MemberStatusApproved && req.Status != models.MemberStatusBlacklisted {
			return fmt.Errorf("%w: 승인 대기 회원은 APPROVED 또는 BLACKLISTED로만 변경할 수 있습니다 (requested=%s)", ErrInvalidState, req.Status)
		}

		member.ChangeStatus(req.Status)
		if err := tx.SaveMember(member); err != nil {
			return err
		}

		notice = &pushNotice{
			token: member.PushToken,
			title: "회원 상태 변경 알림",
			body:  statusChangeMessage(req.Status),
		}

		log.Printf("관리자 회원 상태 변경: memberId=%d, PENDING_APPROVAL → %s", memberID, req.Status)
		return nil
	})
	if err != nil {
		return err
	}

	if notice != nil {
		s.sendNotice(*notice)
	}
	return nil
}

// 승인 완료 상태의 선택 회원 목록 조회
func (s *AdminService) GetApprovedSelectors() ([]dto.MemberDTO, error) {
	members, err := s.store.FindMembersByRoleAndStatus(models.RoleSelector, models.MemberStatusApproved)
	if err != nil {
		return nil, err
	}

	return lo.Map(members, func(m models.Member, _ int) dto.MemberDTO {
		return dto.MemberToDTO(&m)
	}), nil
}

// 선택 회원 기준으로 매칭 가능한 후보 목록 조회 (점수 내림차순)
func (s *AdminService) GetMatchingCandidates(selectorID int) ([]dto.MatchingScoreResponse, error) {
	selector, err := s.store.FindMemberByID(selectorID)
	if err != nil {
		return nil, err
	}
	if selector == nil {
		return nil, fmt.Errorf("%w: memberId=%d", ErrMemberNotFound, selectorID)
	}

	if selector.Role != models.RoleSelector {
		return nil, fmt.Errorf("%w: 선택 회원만 후보를 조회할 수 있습니다 (memberId=%d)", ErrInvalidRole, selectorID)
	}

	// 승인 완료 상태인 선택 회원만 후보 조회 가능
	if selector.Status != models.MemberStatusApproved {
		return nil, fmt.Errorf("%w: 승인 완료 상태의 선택 회원만 후보를 조회할 수 있습니다 (status=%s)", ErrInvalidState, selector.Status)
	}

	preference, err := s.store.FindPreferenceByMemberID(selectorID)
	if err != nil {
		return nil, err
	}

	// APPROVED 또는 CONNECTING 상태 후보 조회 (이미 매칭에 참여 중인 후보도 포함)
	candidates, err := s.store.FindMembersByRoleAndStatusIn(
		models.RoleCandidate,
		[]models.MemberStatus{models.MemberStatusApproved, models.MemberStatusConnecting},
	)
	if err != nil {
		return nil, err
	}

	log.Printf("매칭 후보 조회: selectorId=%d, 후보 수=%d (APPROVED 및 CONNECTING 상태)", selectorID, len(candidates))

	responses := make([]dto.MatchingScoreResponse, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		score := s.scoreService.CalculateMatchingScore(preference, candidate)

		matchingCount, err := s.store.CountMatchingsByCandidate(candidate.ID)
		if err != nil {
			return nil, err
		}

		responses = append(responses, dto.MatchingScoreResponse{
			MemberID:      candidate.ID,
			Name:          candidate.Name,
			Height:        candidate.Height,
			Religion:      candidate.Religion,
			Education:     candidate.Education,
			Asset:         candidate.Asset,
			MatchingScore: score,
			ScoreColor:    s.scoreService.GetScoreColorGradient(score),
			ScoreLevel:    s.scoreService.GetScoreLevel(score),
			MatchingCount: int(matchingCount),
		})
	}

	// 점수 내림차순 정렬
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].MatchingScore > responses[j].MatchingScore
	})

	return responses, nil
}

// 최종 매칭 배치 생성 (선택 회원 1명 + 후보 3명)
func (s *AdminService) CreateMatching(req dto.CreateMatchingRequest) error {
	return s.store.InTransaction(func(tx MatchingStore) error {
		// 선택 회원 조회 및 검증
		selector, err := tx.FindMemberByID(req.SelectorID)
		if err != nil {
			return err
		}
		if selector == nil {
			return fmt.Errorf("%w: selectorId=%d", ErrMemberNotFound, req.SelectorID)
		}

		if selector.Role != models.RoleSelector {
			return fmt.Errorf("%w: 선택 회원만 배치를 받을 수 있습니다 (memberId=%d)", ErrInvalidRole, req.SelectorID)
		}

		if selector.Status != models.MemberStatusApproved {
			return fmt.Errorf("%w: 승인 완료 상태의 선택 회원만 매칭할 수 있습니다 (status=%s)", ErrInvalidState, selector.Status)
		}

		// 후보 수 검증
		if len(req.CandidateIDs) != batchCandidateCount {
			return fmt.Errorf("%w: 후보는 정확히 %d명을 선택해야 합니다 (count=%d)", ErrInvalidBatch, batchCandidateCount, len(req.CandidateIDs))
		}

		// 중복 체크
		if len(lo.Uniq(req.CandidateIDs)) != batchCandidateCount {
			return fmt.Errorf("%w: 중복된 후보가 선택되었습니다", ErrInvalidBatch)
		}

		// 후보 조회 및 검증
		candidates := make([]*models.Member, 0, batchCandidateCount)
		for _, candidateID := range req.CandidateIDs {
			candidate, err := tx.FindMemberByID(candidateID)
			if err != nil {
				return err
			}
			if candidate == nil {
				return fmt.Errorf("%w: candidateId=%d", ErrMemberNotFound, candidateID)
			}
			if candidate.Role != models.RoleCandidate {
				return fmt.Errorf("%w: 후보 회원만 배치에 포함할 수 있습니다 (memberId=%d)", ErrInvalidRole, candidateID)
			}
			if candidate.Status != models.MemberStatusApproved && candidate.Status != models.MemberStatusConnecting {
				return fmt.Errorf("%w: 매칭 불가 상태의 후보가 있습니다 (memberId=%d, status=%s)", ErrInvalidState, candidateID, candidate.Status)
			}
			candidates = append(candidates, candidate)
		}

		// 상태 변경: 승인 완료 → 연결 중
		selector.ChangeToConnecting()
		if err := tx.SaveMember(selector); err != nil {
			return err
		}

		// 이미 CONNECTING인 후보는 다른 배치에 참여 중이므로 건드리지 않음
		for _, candidate := range candidates {
			if candidate.Status == models.MemberStatusApproved {
				candidate.ChangeToConnecting()
				if err := tx.SaveMember(candidate); err != nil {
					return err
				}
			}
		}

		// 매칭 레코드 생성 (순번 1..3)
		for i, candidate := range candidates {
			matching := models.NewMatching(selector.ID, candidate.ID, i+1)
			if err := tx.SaveMatching(matching); err != nil {
				return err
			}
		}

		log.Printf("매칭 배치 생성 완료: selectorId=%d, candidateIds=%v", req.SelectorID, req.CandidateIDs)
		return nil
	})
}

// 생성된 매칭 배치 현황 조회 (선택 회원별 그룹)
func (s *AdminService) GetAllMatchings() ([]dto.MatchedMemberListResponse, error) {
	selectorIDs, err := s.store.FindDistinctSelectorIDs()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MatchedMemberListResponse, 0, len(selectorIDs))
	for _, selectorID := range selectorIDs {
		selector, err := s.store.FindMemberByID(selectorID)
		if err != nil {
			return nil, err
		}
		if selector == nil {
			continue
		}

		matchings, err := s.store.FindMatchingsBySelectorOrderByMatchingOrder(selectorID)
		if err != nil {
			return nil, err
		}

		entries := make([]dto.MatchedEntry, 0, len(matchings))
		for _, m := range matchings {
			candidate, err := s.store.FindMemberByID(m.CandidateID)
			if err != nil {
				return nil, err
			}
			candidateName := ""
			if candidate != nil {
				candidateName = candidate.Name
			}
			entries = append(entries, dto.MatchedEntry{
				MatchingID:    m.ID,
				CandidateID:   m.CandidateID,
				CandidateName: candidateName,
				MatchingOrder: m.MatchingOrder,
				Status:        m.Status,
			})
		}

		responses = append(responses, dto.MatchedMemberListResponse{
			SelectorID:   selectorID,
			SelectorName: selector.Name,
			Matchings:    entries,
		})
	}

	return responses, nil
}

// sendNotice는 커밋 이후 단건 알림을 발송한다. 실패는 로그만 남긴다.
func (s *AdminService) sendNotice(notice pushNotice) {
	if s.emitter == nil {
		return
	}
	if notice.token == "" {
		log.Printf("푸시 토큰이 없어 알림을 전송할 수 없습니다: title=%s", notice.title)
		return
	}
	event := eventtypes.PushEvent{
		PushTokens: []string{notice.token},
		Title:      notice.title,
		Body:       notice.body,
	}
	if err := s.emitter.PublishPushEvent(event); err != nil {
		log.Printf("❌ 푸시 이벤트 발행 실패 (무시): %v", err)
	}
}

func statusChangeMessage(status models.MemberStatus) string {
	switch status {
	case models.MemberStatusIncompleteProfile:
		return "프로필을 완성해주세요."
	case models.MemberStatusPendingApproval:
		return "회원님의 프로필이 검토 중입니다."
	case models.MemberStatusApproved:
		return "회원님의 가입이 승인되었습니다! 🎉"
	case models.MemberStatusConnecting:
		return "매칭이 진행 중입니다."
	case models.MemberStatusConnected:
		return "매칭이 완료되었습니다! 축하드립니다! 🎊"
	case models.MemberStatusBlacklisted:
		return "회원님의 계정이 제한되었습니다."
	}
	return ""
}
