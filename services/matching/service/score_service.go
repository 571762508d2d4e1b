package service

import (
	"log"

	"masil/pkg/models"
)

// 우선순위별 가중치
const (
	Priority1Weight = 3.0
	Priority2Weight = 2.0
	Priority3Weight = 1.0
)

// 점수 계산 상수
const (
	PerfectScore = 100.0
	DefaultScore = 50.0
	MinScore     = 0.0
)

// 키 점수 계산 상수
const heightPenaltyPerCm = 2.0

// 학벌 점수 계산 상수
const educationPenaltyPerLevel = 20.0

// 자산 점수 계산 상수 (1억 단위 감점)
const (
	assetAbovePenaltyPerLevel = 10.0
	assetBelowPenaltyPerLevel = 15.0
	assetLevelUnit            = 100_000_000
)

// 점수 구간별 그라데이션 색상 (5점 단위, 어두운 초록 → 진한 빨강)
const (
	color100     = "#1B5E20" // 100: 어두운 초록
	color95      = "#2E7D32" // 95: 진한 초록
	color90      = "#388E3C" // 90: 초록
	color85      = "#4CAF50" // 85: 밝은 초록
	color80      = "#8BC34A" // 80: 연두
	color75      = "#CDDC39" // 75: 라임
	color70      = "#FFEB3B" // 70: 노랑
	color65      = "#FFC107" // 65: amber
	color60      = "#FF9800" // 60: 주황
	color55      = "#FF5722" // 55: 진한 주황
	color50      = "#D32F2F" // 50: 진한 빨강
	colorUnder50 = "#B71C1C" // 0-50: 더 진한 빨강 (고정)
)

// ScoreService는 선택 회원의 선호 정보와 후보 회원의 속성으로 매칭 점수를 계산한다.
// 순수 계산만 하며 저장소 접근이나 부수효과는 없다.
type ScoreService struct{}

func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// CalculateMatchingScore는 최종 매칭 점수를 [0,100] 범위로 계산한다.
// 선호 정보가 없거나 우선순위 카테고리가 하나도 없으면 기본 점수를 반환한다.
func (s *ScoreService) CalculateMatchingScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if preference == nil {
		log.Printf("선호도 정보가 없습니다. 기본 점수 반환. candidateId=%d", candidate.ID)
		return DefaultScore
	}

	totalScore := 0.0
	totalWeight := 0.0

	priorities := []struct {
		category *models.PreferenceCategory
		weight   float64
	}{
		{preference.Priority1, Priority1Weight},
		{preference.Priority2, Priority2Weight},
		{preference.Priority3, Priority3Weight},
	}

	for _, p := range priorities {
		if p.category == nil {
			continue
		}
		categoryScore := s.categoryScore(*p.category, preference, candidate)
		totalScore += categoryScore * p.weight
		totalWeight += p.weight
	}

	if totalWeight == 0 {
		log.Printf("총 가중치가 0입니다. 기본 점수 반환. candidateId=%d", candidate.ID)
		return DefaultScore
	}

	finalScore := totalScore / totalWeight
	if finalScore > PerfectScore {
		finalScore = PerfectScore
	}
	if finalScore < MinScore {
		finalScore = MinScore
	}

	return finalScore
}

// categoryScore는 카테고리별 세부 점수를 계산한다. 닫힌 카테고리 집합 전체를 처리한다.
func (s *ScoreService) categoryScore(category models.PreferenceCategory, preference *models.MemberPreference, candidate *models.Member) float64 {
	switch category {
	case models.CategoryHeight:
		return s.heightScore(preference, candidate)
	case models.CategoryReligion:
		return s.religionScore(preference, candidate)
	case models.CategoryEducation:
		return s.educationScore(preference, candidate)
	case models.CategoryAsset:
		return s.assetScore(preference, candidate)
	case models.CategoryAppearance:
		return s.appearanceScore(preference, candidate)
	case models.CategoryJob:
		return s.jobScore(preference, candidate)
	case models.CategoryParentAsset:
		return s.parentAssetScore(preference, candidate)
	}
	log.Printf("알 수 없는 선호 카테고리: %s", category)
	return DefaultScore
}

// 키 점수: 선호 범위 내면 만점, 벗어나면 가까운 경계와의 거리 1cm당 감점
func (s *ScoreService) heightScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if preference.PreferredHeightMin == nil || preference.PreferredHeightMax == nil {
		return DefaultScore
	}

	if candidate.Height == nil {
		return MinScore
	}

	height := *candidate.Height
	min := *preference.PreferredHeightMin
	max := *preference.PreferredHeightMax

	if height >= min && height <= max {
		return PerfectScore
	}

	// 범위를 벗어나면 가장 가까운 경계와의 거리에 따라 감점
	distance := absInt(height - min)
	if d := absInt(height - max); d < distance {
		distance = d
	}

	score := PerfectScore - float64(distance)*heightPenaltyPerCm
	if score < MinScore {
		return MinScore
	}
	return score
}

// 종교 점수: 기피 종교면 0점, 아니면 만점
func (s *ScoreService) religionScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if candidate.Religion == nil {
		return DefaultScore
	}

	if preference.AvoidReligionsBitmask == nil || *preference.AvoidReligionsBitmask == 0 {
		return PerfectScore
	}

	if models.ContainsReligion(*preference.AvoidReligionsBitmask, *candidate.Religion) {
		return MinScore
	}

	return PerfectScore
}

// 학벌 점수: 선호 학벌 이상이면 만점, 낮으면 단계당 감점
func (s *ScoreService) educationScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if preference.PreferredEducation == nil {
		return DefaultScore
	}

	if candidate.Education == nil {
		return MinScore
	}

	preferredRank, ok := preference.PreferredEducation.Rank()
	if !ok {
		return DefaultScore
	}
	candidateRank, ok := candidate.Education.Rank()
	if !ok {
		return MinScore
	}

	if candidateRank >= preferredRank {
		return PerfectScore
	}

	diff := preferredRank - candidateRank
	score := PerfectScore - float64(diff)*educationPenaltyPerLevel
	if score < MinScore {
		return MinScore
	}
	return score
}

// 자산 점수: 자산 구간의 대표값을 선호 범위와 비교.
// 범위 초과는 1억 단위당 10점 감점(하한 50), 미달은 15점 감점(하한 0)
func (s *ScoreService) assetScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if preference.PreferredAssetMin == nil || preference.PreferredAssetMax == nil {
		return DefaultScore
	}

	if candidate.Asset == nil {
		return MinScore
	}

	assetValue, ok := candidate.Asset.Midpoint()
	if !ok {
		return MinScore
	}

	min := *preference.PreferredAssetMin
	max := *preference.PreferredAssetMax

	if assetValue >= min && assetValue <= max {
		return PerfectScore
	}

	if assetValue > max {
		excessLevels := (assetValue - max) / assetLevelUnit
		score := PerfectScore - float64(excessLevels)*assetAbovePenaltyPerLevel
		if score < DefaultScore {
			return DefaultScore
		}
		return score
	}

	shortfallLevels := (min - assetValue) / assetLevelUnit
	score := PerfectScore - float64(shortfallLevels)*assetBelowPenaltyPerLevel
	if score < MinScore {
		return MinScore
	}
	return score
}

// 외모 스타일 점수: Member에 아직 외모 스타일 속성이 없어 기본 점수 반환.
// 선호 스타일이 설정되지 않았으면 만점.
func (s *ScoreService) appearanceScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	if preference.PreferredAppearanceStyle == nil {
		return PerfectScore
	}

	// TODO: Member에 appearance_style 컬럼 추가 후 실제 비교 로직 구현
	return DefaultScore
}

// 직업 점수: Member에 아직 직업 속성이 없어 기본 점수 반환.
func (s *ScoreService) jobScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	// TODO: Member에 job_type 컬럼 추가 후 선호/기피 직업 목록과 비교
	return DefaultScore
}

// 부모님 자산 점수: 요구사항이 없거나 무관이면 만점, 아니면 기본 점수 반환.
func (s *ScoreService) parentAssetScore(preference *models.MemberPreference, candidate *models.Member) float64 {
	requirement := preference.ParentAssetRequirement

	if requirement == nil || *requirement == models.ParentAssetNoConcern {
		return PerfectScore
	}

	// TODO: Member에 parent_asset_level 컬럼 추가 후 실제 비교 로직 구현
	return DefaultScore
}

// GetScoreColorGradient는 점수 구간별 색상 코드를 반환한다.
func (s *ScoreService) GetScoreColorGradient(score float64) string {
	if score < 0 || score > 100 {
		log.Printf("유효하지 않은 점수: %f. 기본 색상 반환.", score)
		return colorUnder50
	}

	// 5점 단위 그라데이션 (어두운 초록 → 진한 빨강)
	switch {
	case score == 100:
		return color100
	case score >= 95:
		return color95
	case score >= 90:
		return color90
	case score >= 85:
		return color85
	case score >= 80:
		return color80
	case score >= 75:
		return color75
	case score >= 70:
		return color70
	case score >= 65:
		return color65
	case score >= 60:
		return color60
	case score >= 55:
		return color55
	case score >= 50:
		return color50
	}

	// 50점 미만은 모두 고정 빨강색
	return colorUnder50
}

// GetScoreLevel은 점수 구간별 매칭 등급 라벨을 반환한다.
func (s *ScoreService) GetScoreLevel(score float64) string {
	if score < 0 || score > 100 {
		return "알 수 없음"
	}

	switch {
	case score == 100:
		return "완벽한 매칭"
	case score >= 95:
		return "최고의 매칭"
	case score >= 90:
		return "매우 높은 매칭"
	case score >= 85:
		return "높은 매칭"
	case score >= 80:
		return "상당히 좋은 매칭"
	case score >= 75:
		return "좋은 매칭"
	case score >= 70:
		return "괜찮은 매칭"
	case score >= 65:
		return "보통 이상"
	case score >= 60:
		return "보통 매칭"
	case score >= 55:
		return "보통 이하"
	case score >= 50:
		return "다소 낮은 매칭"
	}
	return "낮은 매칭"
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
