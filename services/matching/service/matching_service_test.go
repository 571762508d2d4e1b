package service

import (
	"sort"
	"testing"

	"masil/pkg/dto"
	"masil/pkg/models"
	eventtypes "masil/pkg/types/eventtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore는 테스트용 인메모리 저장소
type fakeStore struct {
	members        map[int]models.Member
	matchings      map[int]models.Matching
	nextMatchingID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		members:        make(map[int]models.Member),
		matchings:      make(map[int]models.Matching),
		nextMatchingID: 1,
	}
}

func (f *fakeStore) addMember(m models.Member) {
	f.members[m.ID] = m
}

func (f *fakeStore) addMatching(m models.Matching) {
	if m.ID == 0 {
		m.ID = f.nextMatchingID
	}
	if m.ID >= f.nextMatchingID {
		f.nextMatchingID = m.ID + 1
	}
	f.matchings[m.ID] = m
}

func (f *fakeStore) FindMemberByID(id int) (*models.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, nil
	}
	copied := m
	return &copied, nil
}

func (f *fakeStore) FindMatchingByID(id int) (*models.Matching, error) {
	m, ok := f.matchings[id]
	if !ok {
		return nil, nil
	}
	copied := m
	return &copied, nil
}

func (f *fakeStore) findMatchings(filter func(models.Matching) bool) []models.Matching {
	var result []models.Matching
	for _, m := range f.matchings {
		if filter(m) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].MatchingOrder != result[j].MatchingOrder {
			return result[i].MatchingOrder < result[j].MatchingOrder
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (f *fakeStore) FindMatchingsBySelectorAndStatus(selectorID int, status models.MatchingStatus) ([]models.Matching, error) {
	return f.findMatchings(func(m models.Matching) bool {
		return m.SelectorID == selectorID && m.Status == status
	}), nil
}

func (f *fakeStore) FindMatchingsByCandidateAndStatus(candidateID int, status models.MatchingStatus) ([]models.Matching, error) {
	return f.findMatchings(func(m models.Matching) bool {
		return m.CandidateID == candidateID && m.Status == status
	}), nil
}

func (f *fakeStore) FindMatchingsBySelectorAndStatusIn(selectorID int, statuses []models.MatchingStatus) ([]models.Matching, error) {
	statusSet := make(map[models.MatchingStatus]bool)
	for _, s := range statuses {
		statusSet[s] = true
	}
	return f.findMatchings(func(m models.Matching) bool {
		return m.SelectorID == selectorID && statusSet[m.Status]
	}), nil
}

func (f *fakeStore) FindMatchingsBySelectorOrderByMatchingOrder(selectorID int) ([]models.Matching, error) {
	return f.findMatchings(func(m models.Matching) bool {
		return m.SelectorID == selectorID
	}), nil
}

func (f *fakeStore) FindDistinctSelectorIDs() ([]int, error) {
	seen := make(map[int]bool)
	var ids []int
	for _, m := range f.matchings {
		if !seen[m.SelectorID] {
			seen[m.SelectorID] = true
			ids = append(ids, m.SelectorID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (f *fakeStore) CountMatchingsByCandidate(candidateID int) (int64, error) {
	var count int64
	for _, m := range f.matchings {
		if m.CandidateID == candidateID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) findMembers(filter func(models.Member) bool) []models.Member {
	var result []models.Member
	for _, m := range f.members {
		if filter(m) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (f *fakeStore) FindMembersByStatus(status models.MemberStatus) ([]models.Member, error) {
	return f.findMembers(func(m models.Member) bool {
		return m.Status == status
	}), nil
}

func (f *fakeStore) FindMembersByRoleAndStatus(role models.MemberRole, status models.MemberStatus) ([]models.Member, error) {
	return f.findMembers(func(m models.Member) bool {
		return m.Role == role && m.Status == status
	}), nil
}

func (f *fakeStore) FindMembersByRoleAndStatusIn(role models.MemberRole, statuses []models.MemberStatus) ([]models.Member, error) {
	statusSet := make(map[models.MemberStatus]bool)
	for _, s := range statuses {
		statusSet[s] = true
	}
	return f.findMembers(func(m models.Member) bool {
		return m.Role == role && statusSet[m.Status]
	}), nil
}

func (f *fakeStore) FindPreferenceByMemberID(memberID int) (*models.MemberPreference, error) {
	return nil, nil
}

func (f *fakeStore) SaveMember(member *models.Member) error {
	f.members[member.ID] = *member
	return nil
}

func (f *fakeStore) SaveMatching(matching *models.Matching) error {
	if matching.ID == 0 {
		matching.ID = f.nextMatchingID
		f.nextMatchingID++
	}
	f.matchings[matching.ID] = *matching
	return nil
}

func (f *fakeStore) InTransaction(fn func(tx MatchingStore) error) error {
	return fn(f)
}

// fakeEmitter는 발행된 푸시 이벤트를 기록한다
type fakeEmitter struct {
	events []eventtypes.PushEvent
}

func (f *fakeEmitter) PublishPushEvent(event eventtypes.PushEvent) error {
	f.events = append(f.events, event)
	return nil
}

func selectorMember(id int, status models.MemberStatus) models.Member {
	return models.Member{ID: id, Name: "선택회원", Role: models.RoleSelector, Status: status, PushToken: "selector-token"}
}

func candidateMember(id int, status models.MemberStatus) models.Member {
	return models.Member{ID: id, Name: "후보회원", Role: models.RoleCandidate, Status: status, PushToken: "candidate-token"}
}

func TestCreateMatching_Success(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))
	store.addMember(candidateMember(2, models.MemberStatusApproved))
	store.addMember(candidateMember(3, models.MemberStatusApproved))
	store.addMember(candidateMember(4, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.CreateMatching(dto.CreateMatchingRequest{SelectorID: 1, CandidateIDs: []int{2, 3, 4}})
	require.NoError(t, err)

	// 매칭 3건, 순번 1..3, 모두 선택 대기 상태
	matchings, _ := store.FindMatchingsBySelectorOrderByMatchingOrder(1)
	require.Len(t, matchings, 3)
	for i, m := range matchings {
		assert.Equal(t, i+1, m.MatchingOrder)
		assert.Equal(t, models.MatchingStatusPendingSelectorChoice, m.Status)
	}

	// 선택 회원과 후보 모두 연결 중 상태로 전환
	assert.Equal(t, models.MemberStatusConnecting, store.members[1].Status)
	for _, id := range []int{2, 3, 4} {
		assert.Equal(t, models.MemberStatusConnecting, store.members[id].Status)
	}
}

func TestCreateMatching_WrongCandidateCount(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))
	store.addMember(candidateMember(2, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.CreateMatching(dto.CreateMatchingRequest{SelectorID: 1, CandidateIDs: []int{2}})

	assert.ErrorIs(t, err, ErrInvalidBatch)
}

func TestCreateMatching_DuplicateCandidates(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))
	store.addMember(candidateMember(2, models.MemberStatusApproved))
	store.addMember(candidateMember(3, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.CreateMatching(dto.CreateMatchingRequest{SelectorID: 1, CandidateIDs: []int{2, 3, 3}})

	assert.ErrorIs(t, err, ErrInvalidBatch)
}

func TestCreateMatching_SelectorNotApproved(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusApproved))
	store.addMember(candidateMember(3, models.MemberStatusApproved))
	store.addMember(candidateMember(4, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.CreateMatching(dto.CreateMatchingRequest{SelectorID: 1, CandidateIDs: []int{2, 3, 4}})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCreateMatching_ConnectingCandidateKeepsStatus(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))
	store.addMember(candidateMember(2, models.MemberStatusApproved))
	store.addMember(candidateMember(3, models.MemberStatusConnecting)) // 이미 다른 배치 참여 중
	store.addMember(candidateMember(4, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.CreateMatching(dto.CreateMatchingRequest{SelectorID: 1, CandidateIDs: []int{2, 3, 4}})
	require.NoError(t, err)

	assert.Equal(t, models.MemberStatusConnecting, store.members[3].Status)
}

func TestSelectCandidate_RejectsSiblings(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMember(candidateMember(3, models.MemberStatusConnecting))
	store.addMember(candidateMember(4, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})
	store.addMatching(models.Matching{ID: 11, SelectorID: 1, CandidateID: 3, MatchingOrder: 2, Status: models.MatchingStatusPendingSelectorChoice})
	store.addMatching(models.Matching{ID: 12, SelectorID: 1, CandidateID: 4, MatchingOrder: 3, Status: models.MatchingStatusPendingSelectorChoice})

	emitter := &fakeEmitter{}
	svc := NewMatchingService(store, emitter)

	err := svc.SelectCandidate(1, 11)
	require.NoError(t, err)

	// 선택된 매칭은 수락 대기, 나머지는 거절
	assert.Equal(t, models.MatchingStatusPendingCandidateAcceptance, store.matchings[11].Status)
	assert.Equal(t, models.MatchingStatusRejected, store.matchings[10].Status)
	assert.Equal(t, models.MatchingStatusRejected, store.matchings[12].Status)

	// 이 단계에서 회원 상태는 바뀌지 않는다
	assert.Equal(t, models.MemberStatusConnecting, store.members[1].Status)
	assert.Equal(t, models.MemberStatusConnecting, store.members[3].Status)

	// 선택된 후보에게만 알림 발송
	require.Len(t, emitter.events, 1)
	assert.Equal(t, []string{"candidate-token"}, emitter.events[0].PushTokens)
	assert.Equal(t, "매칭 알림", emitter.events[0].Title)
}

func TestSelectCandidate_NotOwner(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(selectorMember(5, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.SelectCandidate(5, 10)

	assert.ErrorIs(t, err, ErrInvalidOwnership)
}

func TestSelectCandidate_TerminalMatching(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusRejected})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.SelectCandidate(1, 10)

	assert.ErrorIs(t, err, ErrInvalidState)
	// 종결된 매칭은 그대로
	assert.Equal(t, models.MatchingStatusRejected, store.matchings[10].Status)
}

func TestAcceptByCandidate_CascadesToOtherSelectors(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(selectorMember(5, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	// 같은 후보가 두 선택 회원의 수락 대기 매칭에 걸려 있음
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingCandidateAcceptance})
	store.addMatching(models.Matching{ID: 11, SelectorID: 5, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingCandidateAcceptance})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.AcceptByCandidate(2, 10)
	require.NoError(t, err)

	// 수락한 매칭은 성사, 다른 매칭은 거절
	assert.Equal(t, models.MatchingStatusAccepted, store.matchings[10].Status)
	assert.Equal(t, models.MatchingStatusRejected, store.matchings[11].Status)

	// 성사된 양쪽은 CONNECTED, 밀려난 선택 회원은 재매칭 가능
	assert.Equal(t, models.MemberStatusConnected, store.members[2].Status)
	assert.Equal(t, models.MemberStatusConnected, store.members[1].Status)
	assert.Equal(t, models.MemberStatusApproved, store.members[5].Status)
}

func TestAcceptByCandidate_WrongState(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.AcceptByCandidate(2, 10)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectByCandidate(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingCandidateAcceptance})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.RejectByCandidate(2, 10)
	require.NoError(t, err)

	assert.Equal(t, models.MatchingStatusRejected, store.matchings[10].Status)
	// 양쪽 모두 재매칭 가능 상태로 복귀
	assert.Equal(t, models.MemberStatusApproved, store.members[1].Status)
	assert.Equal(t, models.MemberStatusApproved, store.members[2].Status)
}

func TestWithdrawAllBySelector(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMember(candidateMember(3, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})
	store.addMatching(models.Matching{ID: 11, SelectorID: 1, CandidateID: 3, MatchingOrder: 2, Status: models.MatchingStatusPendingCandidateAcceptance})

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.WithdrawAllBySelector(1)
	require.NoError(t, err)

	assert.Equal(t, models.MatchingStatusRejected, store.matchings[10].Status)
	assert.Equal(t, models.MatchingStatusRejected, store.matchings[11].Status)
	assert.Equal(t, models.MemberStatusApproved, store.members[1].Status)
	assert.Equal(t, models.MemberStatusApproved, store.members[2].Status)
	assert.Equal(t, models.MemberStatusApproved, store.members[3].Status)

	// 두 번째 철회는 대상이 없어 아무것도 하지 않는다
	err = svc.WithdrawAllBySelector(1)
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusApproved, store.members[1].Status)
}

func TestWithdrawAllBySelector_NothingToWithdraw(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))

	svc := NewMatchingService(store, &fakeEmitter{})

	err := svc.WithdrawAllBySelector(1)

	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusApproved, store.members[1].Status)
}

func TestGetSelectorMatchingList(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMember(candidateMember(3, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 3, MatchingOrder: 2, Status: models.MatchingStatusPendingSelectorChoice})
	store.addMatching(models.Matching{ID: 11, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})

	svc := NewMatchingService(store, &fakeEmitter{})

	list, err := svc.GetSelectorMatchingList(1)
	require.NoError(t, err)

	// 순번 기준 정렬
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].MatchingOrder)
	assert.Equal(t, 2, list[0].Candidate.ID)
	assert.Equal(t, 2, list[1].MatchingOrder)
	assert.Equal(t, 3, list[1].Candidate.ID)
}

func TestGetSelectorMatchingList_CandidateRole(t *testing.T) {
	store := newFakeStore()
	store.addMember(candidateMember(2, models.MemberStatusConnecting))

	svc := NewMatchingService(store, &fakeEmitter{})

	_, err := svc.GetSelectorMatchingList(2)

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestGetCandidatePendingMatchings(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingCandidateAcceptance})
	store.addMatching(models.Matching{ID: 11, SelectorID: 1, CandidateID: 2, MatchingOrder: 2, Status: models.MatchingStatusRejected})

	svc := NewMatchingService(store, &fakeEmitter{})

	pending, err := svc.GetCandidatePendingMatchings(2)
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, 10, pending[0].MatchingID)
	assert.Equal(t, 1, pending[0].Selector.ID)
}

func TestChangeMemberStatus_Approve(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusPendingApproval))

	emitter := &fakeEmitter{}
	svc := NewAdminService(store, NewScoreService(), emitter)

	err := svc.ChangeMemberStatus(1, dto.ChangeMemberStatusRequest{Status: models.MemberStatusApproved})
	require.NoError(t, err)

	assert.Equal(t, models.MemberStatusApproved, store.members[1].Status)
	require.Len(t, emitter.events, 1)
	assert.Equal(t, "회원 상태 변경 알림", emitter.events[0].Title)
}

func TestChangeMemberStatus_InvalidTarget(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusPendingApproval))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.ChangeMemberStatus(1, dto.ChangeMemberStatusRequest{Status: models.MemberStatusConnected})

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, models.MemberStatusPendingApproval, store.members[1].Status)
}

func TestChangeMemberStatus_NotPendingApproval(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	err := svc.ChangeMemberStatus(1, dto.ChangeMemberStatusRequest{Status: models.MemberStatusApproved})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetMatchingCandidates_SortedByScore(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusApproved))
	short := candidateMember(2, models.MemberStatusApproved)
	short.Height = intPtr(150)
	tall := candidateMember(3, models.MemberStatusApproved)
	tall.Height = intPtr(175)
	store.addMember(short)
	store.addMember(tall)

	// 선호 정보가 없는 fakeStore 대신 선호를 반환하는 래퍼 사용
	withPref := &prefStore{fakeStore: store, preference: &models.MemberPreference{
		MemberID:           1,
		PreferredHeightMin: intPtr(170),
		PreferredHeightMax: intPtr(180),
		Priority1:          categoryPtr(models.CategoryHeight),
	}}

	svc := NewAdminService(withPref, NewScoreService(), &fakeEmitter{})

	candidates, err := svc.GetMatchingCandidates(1)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, 3, candidates[0].MemberID)
	assert.Equal(t, 100.0, candidates[0].MatchingScore)
	assert.Equal(t, "#1B5E20", candidates[0].ScoreColor)
	assert.Equal(t, "완벽한 매칭", candidates[0].ScoreLevel)
	assert.Equal(t, 2, candidates[1].MemberID)
	assert.Greater(t, candidates[0].MatchingScore, candidates[1].MatchingScore)
}

// prefStore는 fakeStore에 선호 정보 조회만 덧붙인다
type prefStore struct {
	*fakeStore
	preference *models.MemberPreference
}

func (p *prefStore) FindPreferenceByMemberID(memberID int) (*models.MemberPreference, error) {
	if p.preference != nil && p.preference.MemberID == memberID {
		return p.preference, nil
	}
	return nil, nil
}

func TestGetAllMatchings_GroupedBySelector(t *testing.T) {
	store := newFakeStore()
	store.addMember(selectorMember(1, models.MemberStatusConnecting))
	store.addMember(selectorMember(5, models.MemberStatusConnecting))
	store.addMember(candidateMember(2, models.MemberStatusConnecting))
	store.addMatching(models.Matching{ID: 10, SelectorID: 1, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusPendingSelectorChoice})
	store.addMatching(models.Matching{ID: 11, SelectorID: 5, CandidateID: 2, MatchingOrder: 1, Status: models.MatchingStatusRejected})

	svc := NewAdminService(store, NewScoreService(), &fakeEmitter{})

	groups, err := svc.GetAllMatchings()
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].SelectorID)
	assert.Equal(t, 5, groups[1].SelectorID)
	require.Len(t, groups[0].Matchings, 1)
	assert.Equal(t, 2, groups[0].Matchings[0].CandidateID)
}
