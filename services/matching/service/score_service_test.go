package service

import (
	"testing"

	"masil/pkg/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func categoryPtr(c models.PreferenceCategory) *models.PreferenceCategory { return &c }
func religionPtr(r models.Religion) *models.Religion                     { return &r }
func educationPtr(e models.Education) *models.Education                  { return &e }
func assetPtr(a models.Asset) *models.Asset                              { return &a }
func parentAssetPtr(p models.ParentAssetLevel) *models.ParentAssetLevel  { return &p }

func TestCalculateMatchingScore_NoPreference(t *testing.T) {
	s := NewScoreService()
	candidate := &models.Member{ID: 1}

	score := s.CalculateMatchingScore(nil, candidate)

	assert.Equal(t, DefaultScore, score)
}

func TestCalculateMatchingScore_NoPriorities(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{MemberID: 1}
	candidate := &models.Member{ID: 2}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, DefaultScore, score)
}

func TestCalculateMatchingScore_HeightInRange(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredHeightMin: intPtr(160),
		PreferredHeightMax: intPtr(180),
		Priority1:          categoryPtr(models.CategoryHeight),
	}
	candidate := &models.Member{ID: 2, Height: intPtr(170)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, PerfectScore, score)
}

func TestCalculateMatchingScore_HeightOutOfRange(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredHeightMin: intPtr(160),
		PreferredHeightMax: intPtr(180),
		Priority1:          categoryPtr(models.CategoryHeight),
	}
	// 180 초과 5cm → 100 - 5*2 = 90
	candidate := &models.Member{ID: 2, Height: intPtr(185)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, 90.0, score)
}

func TestCalculateMatchingScore_HeightMissing(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredHeightMin: intPtr(160),
		PreferredHeightMax: intPtr(180),
		Priority1:          categoryPtr(models.CategoryHeight),
	}
	candidate := &models.Member{ID: 2}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, MinScore, score)
}

func TestCalculateMatchingScore_HeightPreferenceMissing(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		Priority1: categoryPtr(models.CategoryHeight),
	}
	candidate := &models.Member{ID: 2, Height: intPtr(170)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, DefaultScore, score)
}

func TestCalculateMatchingScore_ReligionAvoided(t *testing.T) {
	s := NewScoreService()
	mask := models.ReligionsToBitmask([]models.Religion{models.ReligionBuddhist})
	preference := &models.MemberPreference{
		AvoidReligionsBitmask: &mask,
		Priority1:             categoryPtr(models.CategoryReligion),
	}
	candidate := &models.Member{ID: 2, Religion: religionPtr(models.ReligionBuddhist)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, MinScore, score)
}

func TestCalculateMatchingScore_ReligionNotAvoided(t *testing.T) {
	s := NewScoreService()
	mask := models.ReligionsToBitmask([]models.Religion{models.ReligionBuddhist})
	preference := &models.MemberPreference{
		AvoidReligionsBitmask: &mask,
		Priority1:             categoryPtr(models.CategoryReligion),
	}
	candidate := &models.Member{ID: 2, Religion: religionPtr(models.ReligionChristian)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, PerfectScore, score)
}

func TestCalculateMatchingScore_ReligionMissing(t *testing.T) {
	s := NewScoreService()
	mask := models.ReligionsToBitmask([]models.Religion{models.ReligionBuddhist})
	preference := &models.MemberPreference{
		AvoidReligionsBitmask: &mask,
		Priority1:             categoryPtr(models.CategoryReligion),
	}
	candidate := &models.Member{ID: 2}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, DefaultScore, score)
}

func TestCalculateMatchingScore_EducationAtOrAbove(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredEducation: educationPtr(models.EducationBachelor),
		Priority1:          categoryPtr(models.CategoryEducation),
	}
	candidate := &models.Member{ID: 2, Education: educationPtr(models.EducationMaster)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, PerfectScore, score)
}

func TestCalculateMatchingScore_EducationBelow(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredEducation: educationPtr(models.EducationBachelor),
		Priority1:          categoryPtr(models.CategoryEducation),
	}
	// 2단계 낮음 → 100 - 2*20 = 60
	candidate := &models.Member{ID: 2, Education: educationPtr(models.EducationHighSchool)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, 60.0, score)
}

func TestCalculateMatchingScore_AssetInRange(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredAssetMin: int64Ptr(100_000_000),
		PreferredAssetMax: int64Ptr(300_000_000),
		Priority1:         categoryPtr(models.CategoryAsset),
	}
	// 대표값 2억 → 범위 내
	candidate := &models.Member{ID: 2, Asset: assetPtr(models.AssetBetween100M300M)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, PerfectScore, score)
}

func TestCalculateMatchingScore_AssetAboveRange(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredAssetMin: int64Ptr(100_000_000),
		PreferredAssetMax: int64Ptr(300_000_000),
		Priority1:         categoryPtr(models.CategoryAsset),
	}
	// 대표값 4억, 초과 1억 = 1단계 → 100 - 10 = 90
	candidate := &models.Member{ID: 2, Asset: assetPtr(models.AssetBetween300M500M)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, 90.0, score)
}

func TestCalculateMatchingScore_AssetFarAboveRangeFloor(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredAssetMin: int64Ptr(100_000_000),
		PreferredAssetMax: int64Ptr(300_000_000),
		Priority1:         categoryPtr(models.CategoryAsset),
	}
	// 대표값 15억, 초과 12단계 → 하한 50으로 고정
	candidate := &models.Member{ID: 2, Asset: assetPtr(models.AssetOver1B)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, DefaultScore, score)
}

func TestCalculateMatchingScore_AssetBelowRange(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredAssetMin: int64Ptr(700_000_000),
		PreferredAssetMax: int64Ptr(1_000_000_000),
		Priority1:         categoryPtr(models.CategoryAsset),
	}
	// 대표값 5천만, 미달 6.5억 = 6단계 → 100 - 90 = 10
	candidate := &models.Member{ID: 2, Asset: assetPtr(models.AssetUnder100M)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, 10.0, score)
}

func TestCalculateMatchingScore_AssetFarBelowRangeFloor(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		PreferredAssetMin: int64Ptr(2_000_000_000),
		PreferredAssetMax: int64Ptr(3_000_000_000),
		Priority1:         categoryPtr(models.CategoryAsset),
	}
	// 미달 19.5억 = 19단계 → 하한 0으로 고정
	candidate := &models.Member{ID: 2, Asset: assetPtr(models.AssetUnder100M)}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, MinScore, score)
}

func TestCalculateMatchingScore_WeightedMean(t *testing.T) {
	s := NewScoreService()
	mask := models.ReligionsToBitmask([]models.Religion{models.ReligionCatholic})
	preference := &models.MemberPreference{
		PreferredHeightMin:    intPtr(160),
		PreferredHeightMax:    intPtr(180),
		AvoidReligionsBitmask: &mask,
		Priority1:             categoryPtr(models.CategoryHeight),
		Priority2:             categoryPtr(models.CategoryReligion),
	}
	// 키 100점(가중치 3), 종교 0점(가중치 2) → 300/5 = 60
	candidate := &models.Member{
		ID:       2,
		Height:   intPtr(170),
		Religion: religionPtr(models.ReligionCatholic),
	}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, 60.0, score)
}

func TestCalculateMatchingScore_ParentAssetNoConcern(t *testing.T) {
	s := NewScoreService()
	preference := &models.MemberPreference{
		ParentAssetRequirement: parentAssetPtr(models.ParentAssetNoConcern),
		Priority1:              categoryPtr(models.CategoryParentAsset),
	}
	candidate := &models.Member{ID: 2}

	score := s.CalculateMatchingScore(preference, candidate)

	assert.Equal(t, PerfectScore, score)
}

// 닫힌 카테고리 집합 전체가 [0,100] 범위 점수를 반환하는지 확인
func TestCalculateMatchingScore_AllCategoriesBounded(t *testing.T) {
	s := NewScoreService()
	candidate := &models.Member{
		ID:        2,
		Height:    intPtr(172),
		Religion:  religionPtr(models.ReligionNone),
		Education: educationPtr(models.EducationBachelor),
		Asset:     assetPtr(models.AssetBetween100M300M),
	}

	for _, category := range models.AllCategories {
		preference := &models.MemberPreference{
			Priority1: categoryPtr(category),
		}

		score := s.CalculateMatchingScore(preference, candidate)

		assert.GreaterOrEqual(t, score, MinScore, "category %s", category)
		assert.LessOrEqual(t, score, PerfectScore, "category %s", category)
	}
}

func TestGetScoreColorGradient(t *testing.T) {
	s := NewScoreService()

	assert.Equal(t, "#1B5E20", s.GetScoreColorGradient(100))
	assert.Equal(t, "#2E7D32", s.GetScoreColorGradient(97))
	assert.Equal(t, "#FFEB3B", s.GetScoreColorGradient(72))
	assert.Equal(t, "#D32F2F", s.GetScoreColorGradient(50))
	assert.Equal(t, "#B71C1C", s.GetScoreColorGradient(49))
	assert.Equal(t, "#B71C1C", s.GetScoreColorGradient(0))

	// 범위 밖 점수는 기본 색상
	assert.Equal(t, "#B71C1C", s.GetScoreColorGradient(101))
	assert.Equal(t, "#B71C1C", s.GetScoreColorGradient(-1))
}

func TestGetScoreLevel(t *testing.T) {
	s := NewScoreService()

	assert.Equal(t, "완벽한 매칭", s.GetScoreLevel(100))
	assert.Equal(t, "최고의 매칭", s.GetScoreLevel(95))
	assert.Equal(t, "보통 매칭", s.GetScoreLevel(60))
	assert.Equal(t, "다소 낮은 매칭", s.GetScoreLevel(50))
	assert.Equal(t, "낮은 매칭", s.GetScoreLevel(42))
	assert.Equal(t, "알 수 없음", s.GetScoreLevel(101))
}
