package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReligionBitmask(t *testing.T) {
	mask := ReligionsToBitmask([]Religion{ReligionChristian, ReligionBuddhist})

	assert.True(t, ContainsReligion(mask, ReligionChristian))
	assert.True(t, ContainsReligion(mask, ReligionBuddhist))
	assert.False(t, ContainsReligion(mask, ReligionCatholic))
	assert.False(t, ContainsReligion(mask, ReligionNone))

	restored := ReligionsFromBitmask(mask)
	assert.Equal(t, []Religion{ReligionChristian, ReligionBuddhist}, restored)
}

func TestReligionBitmask_Empty(t *testing.T) {
	mask := ReligionsToBitmask(nil)

	assert.Equal(t, 0, mask)
	assert.Nil(t, ReligionsFromBitmask(mask))
}

func TestEducationRank(t *testing.T) {
	high, ok := EducationDoctorate.Rank()
	assert.True(t, ok)

	low, ok := EducationHighSchool.Rank()
	assert.True(t, ok)
	assert.Greater(t, high, low)

	_, ok = Education("UNKNOWN").Rank()
	assert.False(t, ok)
}

func TestAssetMidpoint(t *testing.T) {
	v, ok := AssetBetween100M300M.Midpoint()
	assert.True(t, ok)
	assert.Equal(t, int64(200_000_000), v)

	_, ok = Asset("UNKNOWN").Midpoint()
	assert.False(t, ok)
}

func TestPreferenceCategoryValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, PreferenceCategory("UNKNOWN").Valid())
}

func TestMatchingLifecycleTransitions(t *testing.T) {
	m := NewMatching(1, 2, 1)
	assert.Equal(t, MatchingStatusPendingSelectorChoice, m.Status)
	assert.False(t, m.IsTerminal())

	m.SelectBySelector()
	assert.Equal(t, MatchingStatusPendingCandidateAcceptance, m.Status)
	assert.False(t, m.IsTerminal())

	m.AcceptByCandidate()
	assert.Equal(t, MatchingStatusAccepted, m.Status)
	assert.True(t, m.IsTerminal())

	rejected := NewMatching(1, 3, 2)
	rejected.Reject()
	assert.True(t, rejected.IsTerminal())
}
