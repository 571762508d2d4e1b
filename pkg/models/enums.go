package models

// Religion은 종교 (기피 종교는 비트마스크로 저장)
type Religion string

const (
	ReligionNone      Religion = "NONE"
	ReligionChristian Religion = "CHRISTIAN"
	ReligionCatholic  Religion = "CATHOLIC"
	ReligionBuddhist  Religion = "BUDDHIST"
	ReligionOther     Religion = "OTHER"
)

var religionBits = map[Religion]int{
	ReligionNone:      1 << 0,
	ReligionChristian: 1 << 1,
	ReligionCatholic:  1 << 2,
	ReligionBuddhist:  1 << 3,
	ReligionOther:     1 << 4,
}

// 비트마스크 순서 고정용
var religionOrder = []Religion{
	ReligionNone,
	ReligionChristian,
	ReligionCatholic,
	ReligionBuddhist,
	ReligionOther,
}

// ReligionsToBitmask는 기피 종교 목록을 비트마스크로 변환
func ReligionsToBitmask(religions []Religion) int {
	mask := 0
	for _, r := range religions {
		mask |= religionBits[r]
	}
	return mask
}

// ReligionsFromBitmask는 비트마스크를 종교 목록으로 복원
func ReligionsFromBitmask(mask int) []Religion {
	var religions []Religion
	for _, r := range religionOrder {
		if mask&religionBits[r] != 0 {
			religions = append(religions, r)
		}
	}
	return religions
}

// ContainsReligion은 비트마스크에 해당 종교가 포함되어 있는지 확인
func ContainsReligion(mask int, r Religion) bool {
	return mask&religionBits[r] != 0
}

// Education은 학력 (높은 순위 = 높은 학력)
type Education string

const (
	EducationHighSchool Education = "HIGH_SCHOOL"
	EducationAssociate  Education = "ASSOCIATE"
	EducationBachelor   Education = "BACHELOR"
	EducationMaster     Education = "MASTER"
	EducationDoctorate  Education = "DOCTORATE"
)

var educationRanks = map[Education]int{
	EducationHighSchool: 0,
	EducationAssociate:  1,
	EducationBachelor:   2,
	EducationMaster:     3,
	EducationDoctorate:  4,
}

// Rank는 학력의 서열을 반환. 알 수 없는 값이면 ok=false
func (e Education) Rank() (int, bool) {
	rank, ok := educationRanks[e]
	return rank, ok
}

// Asset은 자산 구간
type Asset string

const (
	AssetUnder100M       Asset = "UNDER_100M"
	AssetBetween100M300M Asset = "BETWEEN_100M_300M"
	AssetBetween300M500M Asset = "BETWEEN_300M_500M"
	AssetBetween500M1B   Asset = "BETWEEN_500M_1B"
	AssetOver1B          Asset = "OVER_1B"
)

// 자산 구간별 대표값 (중간값, 최상위 구간은 추정값)
var assetMidpoints = map[Asset]int64{
	AssetUnder100M:       50_000_000,
	AssetBetween100M300M: 200_000_000,
	AssetBetween300M500M: 400_000_000,
	AssetBetween500M1B:   750_000_000,
	AssetOver1B:          1_500_000_000,
}

// Midpoint는 자산 구간의 대표 금액을 반환. 알 수 없는 값이면 ok=false
func (a Asset) Midpoint() (int64, bool) {
	v, ok := assetMidpoints[a]
	return v, ok
}

// AppearanceStyle은 선호 외모 스타일
type AppearanceStyle string

const (
	AppearanceCute  AppearanceStyle = "CUTE"
	AppearanceChic  AppearanceStyle = "CHIC"
	AppearanceNeat  AppearanceStyle = "NEAT"
	AppearanceChill AppearanceStyle = "CHILL"
)

// JobType은 직업 유형
type JobType string

const (
	JobOffice       JobType = "OFFICE"
	JobProfessional JobType = "PROFESSIONAL"
	JobPublic       JobType = "PUBLIC"
	JobBusiness     JobType = "BUSINESS"
	JobFreelance    JobType = "FREELANCE"
)

// ParentAssetLevel은 부모님 자산 요구 수준
type ParentAssetLevel string

const (
	ParentAssetNoConcern      ParentAssetLevel = "NO_CONCERN"
	ParentAssetRetirementOnly ParentAssetLevel = "RETIREMENT_ONLY"
	ParentAssetOver100M       ParentAssetLevel = "OVER_100M"
)
