package service

import (
	"fmt"
	"log"

	"masil/pkg/dto"
	"masil/pkg/models"
	eventtypes "masil/pkg/types/eventtype"
)

// PushEmitter는 푸시 알림 이벤트를 발행하는 경계.
// 발행/전달 실패는 매칭 트랜잭션을 롤백시키지 않는다.
type PushEmitter interface {
	PublishPushEvent(event eventtypes.PushEvent) error
}

// MatchingService는 매칭 라이프사이클 상태 머신을 수행한다.
// 모든 연산은 저장소 트랜잭션 하나로 수행되며,
// 연쇄 변경에 필요한 조회는 같은 트랜잭션에서 쓰기 전에 끝낸다.
type MatchingService struct {
	store   TxMatchingStore
	emitter PushEmitter
}

func NewMatchingService(store TxMatchingStore, emitter PushEmitter) *MatchingService {
	return &MatchingService{store: store, emitter: emitter}
}

// pushNotice는 커밋 이후 발송할 알림
type pushNotice struct {
	token string
	title string
	body  string
}

// 선택 회원에게 매칭된 후보 목록 조회 (선택 대기 상태, 순번 정렬)
func (s *MatchingService) GetSelectorMatchingList(selectorID int) ([]dto.MatchingListResponse, error) {
	selector, err := s.validateMember(s.store, selectorID, models.RoleSelector)
	if err != nil {
		return nil, err
	}

	matchings, err := s.store.FindMatchingsBySelectorAndStatus(selector.ID, models.MatchingStatusPendingSelectorChoice)
	if err != nil {
		return nil, err
	}

	return s.toMatchingListResponses(matchings)
}

// 선택 회원이 후보 1명 선택.
// 같은 배치의 나머지 선택 대기 매칭은 모두 거절 처리되고,
// 선택된 매칭은 후보 수락 대기로 넘어간다. 회원 상태는 이 단계에서 바뀌지 않는다.
func (s *MatchingService) SelectCandidate(selectorID, matchingID int) error {
	var notices []pushNotice

	err := s.store.InTransaction(func(tx MatchingStore) error {
		selector, err := s.validateMember(tx, selectorID, models.RoleSelector)
		if err != nil {
			return err
		}

		selected, err := tx.FindMatchingByID(matchingID)
		if err != nil {
			return err
		}
		if selected == nil {
			return fmt.Errorf("%w: matchingId=%d", ErrMatchingNotFound, matchingID)
		}

		if selected.SelectorID != selectorID {
			return fmt.Errorf("%w: matchingId=%d, selectorId=%d", ErrInvalidOwnership, matchingID, selectorID)
		}

		if selected.Status != models.MatchingStatusPendingSelectorChoice {
			return fmt.Errorf("%w: 선택 대기 중인 매칭만 선택할 수 있습니다 (status=%s)", ErrInvalidState, selected.Status)
		}

		// 같은 선택 회원의 다른 매칭들을 먼저 조회 (변경 전에 조회해야 함)
		siblings, err := tx.FindMatchingsBySelectorAndStatus(selectorID, models.MatchingStatusPendingSelectorChoice)
		if err != nil {
			return err
		}

		// 선택되지 않은 형제 매칭들을 거절 상태로 변경
		for i := range siblings {
			if siblings[i].ID == matchingID {
				continue
			}
			siblings[i].Reject()
			if err := tx.SaveMatching(&siblings[i]); err != nil {
				return err
			}
		}

		selected.SelectBySelector()
		if err := tx.SaveMatching(selected); err != nil {
			return err
		}

		// 선택된 후보에게 알림 (커밋 후 발송)
		candidate, err := tx.FindMemberByID(selected.CandidateID)
		if err != nil {
			return err
		}
		if candidate != nil {
			notices = append(notices, pushNotice{
				token: candidate.PushToken,
				title: "매칭 알림",
				body:  fmt.Sprintf("%s님이 당신을 선택했습니다. 수락하시겠습니까?", selector.Name),
			})
		}

		log.Printf("선택 회원이 후보 선택: selectorId=%d, matchingId=%d, candidateId=%d",
			selectorID, matchingID, selected.CandidateID)
		return nil
	})
	if err != nil {
		return err
	}

	s.sendNotices(notices)
	return nil
}

// 후보 회원에게 수락 대기 중인 매칭 조회
func (s *MatchingService) GetCandidatePendingMatchings(candidateID int) ([]dto.CandidatePendingResponse, error) {
	candidate, err := s.validateMember(s.store, candidateID, models.RoleCandidate)
	if err != nil {
		return nil, err
	}

	matchings, err := s.store.FindMatchingsByCandidateAndStatus(candidate.ID, models.MatchingStatusPendingCandidateAcceptance)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CandidatePendingResponse, 0, len(matchings))
	for _, m := range matchings {
		selector, err := s.store.FindMemberByID(m.SelectorID)
		if err != nil {
			return nil, err
		}
		if selector == nil {
			log.Printf("매칭의 선택 회원을 찾을 수 없습니다: matchingId=%d, selectorId=%d", m.ID, m.SelectorID)
			continue
		}
		responses = append(responses, dto.CandidatePendingResponse{
			MatchingID: m.ID,
			Status:     m.Status,
			Selector:   dto.MemberToDTO(selector),
		})
	}

	return responses, nil
}

// 후보 회원이 매칭 수락.
// 수락한 매칭의 양쪽 회원은 CONNECTED가 되고,
// 같은 후보의 다른 수락 대기 매칭은 거절 처리되며 그 선택 회원들은 재매칭 가능 상태로 돌아간다.
func (s *MatchingService) AcceptByCandidate(candidateID, matchingID int) error {
	return s.store.InTransaction(func(tx MatchingStore) error {
		candidate, err := s.validateMember(tx, candidateID, models.RoleCandidate)
		if err != nil {
			return err
		}

		matching, err := tx.FindMatchingByID(matchingID)
		if err != nil {
			return err
		}
		if matching == nil {
			return fmt.Errorf("%w: matchingId=%d", ErrMatchingNotFound, matchingID)
		}

		if matching.CandidateID != candidateID {
			return fmt.Errorf("%w: matchingId=%d, candidateId=%d", ErrInvalidOwnership, matchingID, candidateID)
		}

		if matching.Status != models.MatchingStatusPendingCandidateAcceptance {
			return fmt.Errorf("%w: 수락 대기 중인 매칭만 수락할 수 있습니다 (status=%s)", ErrInvalidState, matching.Status)
		}

		// 같은 후보의 다른 매칭들을 먼저 조회 (수락 전에 조회해야 함)
		others, err := tx.FindMatchingsByCandidateAndStatus(candidateID, models.MatchingStatusPendingCandidateAcceptance)
		if err != nil {
			return err
		}

		matching.AcceptByCandidate()
		if err := tx.SaveMatching(matching); err != nil {
			return err
		}

		// 수락한 매칭의 후보와 선택 회원 상태 변경: CONNECTING → CONNECTED
		if err := s.changeStatusIfExpected(tx, candidate, models.MemberStatusConnecting, models.MemberStatusConnected); err != nil {
			return err
		}

		selector, err := tx.FindMemberByID(matching.SelectorID)
		if err != nil {
			return err
		}
		if selector == nil {
			return fmt.Errorf("%w: selectorId=%d", ErrMemberNotFound, matching.SelectorID)
		}
		if err := s.changeStatusIfExpected(tx, selector, models.MemberStatusConnecting, models.MemberStatusConnected); err != nil {
			return err
		}

		// 다른 수락 대기 매칭들을 거절하고, 그 선택 회원들을 재매칭 가능하도록 변경
		for i := range others {
			if others[i].ID == matchingID {
				continue
			}
			others[i].Reject()
			if err := tx.SaveMatching(&others[i]); err != nil {
				return err
			}

			otherSelector, err := tx.FindMemberByID(others[i].SelectorID)
			if err != nil {
				return err
			}
			if otherSelector == nil {
				log.Printf("거절된 매칭의 선택 회원을 찾을 수 없습니다: matchingId=%d, selectorId=%d", others[i].ID, others[i].SelectorID)
				continue
			}
			if err := s.changeStatusIfExpected(tx, otherSelector, models.MemberStatusConnecting, models.MemberStatusApproved); err != nil {
				return err
			}
		}

		log.Printf("후보가 매칭 수락 완료: candidateId=%d, matchingId=%d, selectorId=%d, 거절된 매칭 수=%d",
			candidateID, matchingID, matching.SelectorID, len(others)-1)
		return nil
	})
}

// 후보 회원이 매칭 거절. 매칭은 거절 상태가 되고 양쪽 회원은 재매칭 가능 상태로 돌아간다.
func (s *MatchingService) RejectByCandidate(candidateID, matchingID int) error {
	return s.store.InTransaction(func(tx MatchingStore) error {
		candidate, err := s.validateMember(tx, candidateID, models.RoleCandidate)
		if err != nil {
			return err
		}

		matching, err := tx.FindMatchingByID(matchingID)
		if err != nil {
			return err
		}
		if matching == nil {
			return fmt.Errorf("%w: matchingId=%d", ErrMatchingNotFound, matchingID)
		}

		if matching.CandidateID != candidateID {
			return fmt.Errorf("%w: matchingId=%d, candidateId=%d", ErrInvalidOwnership, matchingID, candidateID)
		}

		if matching.Status != models.MatchingStatusPendingCandidateAcceptance {
			return fmt.Errorf("%w: 수락 대기 중인 매칭만 거절할 수 있습니다 (status=%s)", ErrInvalidState, matching.Status)
		}

		matching.Reject()
		if err := tx.SaveMatching(matching); err != nil {
			return err
		}

		// 후보 상태 변경: CONNECTING → APPROVED (재매칭 가능하도록)
		if err := s.changeStatusIfExpected(tx, candidate, models.MemberStatusConnecting, models.MemberStatusApproved); err != nil {
			return err
		}

		// 선택 회원 상태 변경: CONNECTING → APPROVED (재매칭 가능하도록)
		selector, err := tx.FindMemberByID(matching.SelectorID)
		if err != nil {
			return err
		}
		if selector == nil {
			return fmt.Errorf("%w: selectorId=%d", ErrMemberNotFound, matching.SelectorID)
		}
		if err := s.changeStatusIfExpected(tx, selector, models.MemberStatusConnecting, models.MemberStatusApproved); err != nil {
			return err
		}

		log.Printf("후보가 매칭 거절: candidateId=%d, matchingId=%d, selectorId=%d",
			candidateID, matchingID, matching.SelectorID)
		return nil
	})
}

// 선택 회원이 선택한 매칭의 진행 상태 조회 (수락 대기, 수락됨, 거절됨)
func (s *MatchingService) GetSelectedMatchingStatus(selectorID int) ([]dto.MatchingListResponse, error) {
	selector, err := s.validateMember(s.store, selectorID, models.RoleSelector)
	if err != nil {
		return nil, err
	}

	statuses := []models.MatchingStatus{
		models.MatchingStatusPendingCandidateAcceptance,
		models.MatchingStatusAccepted,
		models.MatchingStatusRejected,
	}

	matchings, err := s.store.FindMatchingsBySelectorAndStatusIn(selector.ID, statuses)
	if err != nil {
		return nil, err
	}

	return s.toMatchingListResponses(matchings)
}

// 선택 회원의 모든 진행 중 매칭 철회.
// 철회 대상이 없으면 아무것도 하지 않는다 (에러 아님).
func (s *MatchingService) WithdrawAllBySelector(selectorID int) error {
	return s.store.InTransaction(func(tx MatchingStore) error {
		selector, err := s.validateMember(tx, selectorID, models.RoleSelector)
		if err != nil {
			return err
		}

		statuses := []models.MatchingStatus{
			models.MatchingStatusPendingSelectorChoice,
			models.MatchingStatusPendingCandidateAcceptance,
			models.MatchingStatusAccepted,
		}

		matchings, err := tx.FindMatchingsBySelectorAndStatusIn(selectorID, statuses)
		if err != nil {
			return err
		}

		if len(matchings) == 0 {
			log.Printf("철회할 매칭이 없습니다: selectorId=%d", selectorID)
			return nil
		}

		// 모든 매칭 거절 및 각 후보의 상태 복원
		for i := range matchings {
			matchings[i].Reject()
			if err := tx.SaveMatching(&matchings[i]); err != nil {
				return err
			}

			candidate, err := tx.FindMemberByID(matchings[i].CandidateID)
			if err != nil {
				return err
			}
			if candidate == nil {
				log.Printf("철회된 매칭의 후보를 찾을 수 없습니다: matchingId=%d, candidateId=%d", matchings[i].ID, matchings[i].CandidateID)
				continue
			}
			if err := s.changeStatusIfExpected(tx, candidate, models.MemberStatusConnecting, models.MemberStatusApproved); err != nil {
				return err
			}
		}

		// 선택 회원 상태 변경: CONNECTING → APPROVED (재매칭 가능하도록)
		if err := s.changeStatusIfExpected(tx, selector, models.MemberStatusConnecting, models.MemberStatusApproved); err != nil {
			return err
		}

		log.Printf("선택 회원이 모든 매칭 철회 완료: selectorId=%d, 철회된 매칭 수=%d", selectorID, len(matchings))
		return nil
	})
}

// validateMember는 회원 존재와 역할을 검증한다.
func (s *MatchingService) validateMember(store MatchingStore, memberID int, role models.MemberRole) (*models.Member, error) {
	member, err := store.FindMemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: memberId=%d", ErrMemberNotFound, memberID)
	}
	if member.Role != role {
		return nil, fmt.Errorf("%w: memberId=%d, role=%s, required=%s", ErrInvalidRole, memberID, member.Role, role)
	}
	return member, nil
}

// changeStatusIfExpected는 회원이 기대 상태일 때만 상태를 바꾼다.
// 기대 상태가 아니면 로그만 남기고 건너뛴다 (트랜잭션은 계속 진행).
func (s *MatchingService) changeStatusIfExpected(tx MatchingStore, member *models.Member, from, to models.MemberStatus) error {
	if member.Status != from {
		log.Printf("⚠️ 회원 상태가 %s가 아닙니다: memberId=%d, currentStatus=%s", from, member.ID, member.Status)
		return nil
	}
	member.ChangeStatus(to)
	if err := tx.SaveMember(member); err != nil {
		return err
	}
	log.Printf("회원 상태 변경: memberId=%d, %s → %s", member.ID, from, to)
	return nil
}

func (s *MatchingService) toMatchingListResponses(matchings []models.Matching) ([]dto.MatchingListResponse, error) {
	responses := make([]dto.MatchingListResponse, 0, len(matchings))
	for _, m := range matchings {
		candidate, err := s.store.FindMemberByID(m.CandidateID)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			log.Printf("매칭의 후보를 찾을 수 없습니다: matchingId=%d, candidateId=%d", m.ID, m.CandidateID)
			continue
		}
		responses = append(responses, dto.MatchingListResponse{
			MatchingID:    m.ID,
			MatchingOrder: m.MatchingOrder,
			Status:        m.Status,
			Candidate:     dto.MemberToDTO(candidate),
		})
	}
	return responses, nil
}

// sendNotices는 커밋된 트랜잭션의 알림을 발송한다.
// 토큰이 없으면 조용히 건너뛰고, 발행 실패는 로그만 남긴다.
func (s *MatchingService) sendNotices(notices []pushNotice) {
	if s.emitter == nil {
		return
	}
	for _, n := range notices {
		if n.token == "" {
			log.Printf("푸시 토큰이 없어 알림을 전송할 수 없습니다: title=%s", n.title)
			continue
		}
		event := eventtypes.PushEvent{
			PushTokens: []string{n.token},
			Title:      n.title,
			Body:       n.body,
		}
		if err := s.emitter.PublishPushEvent(event); err != nil {
			log.Printf("❌ 푸시 이벤트 발행 실패 (무시): %v", err)
		}
	}
}
