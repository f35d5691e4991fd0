package calculations

import (
	"fmt"
	"math"
	"strings"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

// DogSize весовая группа породы
type DogSize int

const (
	DogSizeSmall DogSize = iota
	DogSizeMedium
	DogSizeLarge
	DogSizeGiant
)

func (s DogSize) String() string {
	switch s {
	case DogSizeSmall:
		return "small"
	case DogSizeMedium:
		return "medium"
	case DogSizeLarge:
		return "large"
	case DogSizeGiant:
		return "giant"
	}
	return fmt.Sprintf("DogSize(%d)", int(s))
}

// ParseDogSize разбирает весовую группу; по умолчанию medium
func ParseDogSize(s string) (DogSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return DogSizeSmall, nil
	case "", "medium":
		return DogSizeMedium, nil
	case "large":
		return DogSizeLarge, nil
	case "giant":
		return DogSizeGiant, nil
	}
	return 0, fmt.Errorf("%w: size %q", ErrUnknownCategory, s)
}

// yearlyIncrement человеческих лет за каждый год жизни собаки после второго
func yearlyIncrement(s DogSize) (float64, error) {
	switch s {
	case DogSizeSmall:
		return 4, nil
	case DogSizeMedium:
		return 5, nil
	case DogSizeLarge:
		return 6, nil
	case DogSizeGiant:
		return 7, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, s)
}

// DogAgeEpigenetic пересчитывает возраст по формуле 16·ln(возраст) + 31.
// До одного года используется линейная шкала, достигающая 31 в год.
func DogAgeEpigenetic(years float64) float64 {
	if years < 1 {
		return 31.0 * years
	}
	return 16.0*math.Log(years) + 31.0
}

// DogAgeTraditional пересчитывает возраст классическим методом:
// 15 лет за первый год, 9 за второй, далее в зависимости от размера.
func DogAgeTraditional(years float64, size DogSize) (float64, error) {
	inc, err := yearlyIncrement(size)
	if err != nil {
		return 0, err
	}
	switch {
	case years <= 1:
		return 15.0 * years, nil
	case years <= 2:
		return 15.0 + 9.0*(years-1), nil
	default:
		return 24.0 + inc*(years-2), nil
	}
}

// LifeStage этап жизни собаки
type LifeStage string

const (
	LifeStagePuppy  LifeStage = "puppy"
	LifeStageAdult  LifeStage = "adult"
	LifeStageMature LifeStage = "mature"
	LifeStageSenior LifeStage = "senior"
)

func lifeStage(humanYears float64) LifeStage {
	switch {
	case humanYears < 15:
		return LifeStagePuppy
	case humanYears < 40:
		return LifeStageAdult
	case humanYears < 60:
		return LifeStageMature
	default:
		return LifeStageSenior
	}
}

// BodyConditionScore ветеринарная шкала упитанности 1–9, идеал 5
type BodyConditionScore int

const idealBodyCondition BodyConditionScore = 5

// BodyCondition классификация упитанности
type BodyCondition string

const (
	BodyConditionUnderweight BodyCondition = "underweight"
	BodyConditionIdeal       BodyCondition = "ideal"
	BodyConditionOverweight  BodyCondition = "overweight"
	BodyConditionObese       BodyCondition = "obese"
)

// Classify возвращает класс упитанности
func (b BodyConditionScore) Classify() (BodyCondition, error) {
	switch b {
	case 1, 2, 3:
		return BodyConditionUnderweight, nil
	case 4, 5:
		return BodyConditionIdeal, nil
	case 6, 7:
		return BodyConditionOverweight, nil
	case 8, 9:
		return BodyConditionObese, nil
	}
	return "", fmt.Errorf("%w: body condition score %d", ErrUnknownCategory, int(b))
}

// IdealWeight оценивает идеальный вес: каждый балл от 5 соответствует ~10% веса
func (b BodyConditionScore) IdealWeight(currentKg float64) float64 {
	return currentKg / (1.0 + 0.1*float64(b-idealBodyCondition))
}

// DogAgeInput входные данные калькулятора возраста собаки
type DogAgeInput struct {
	AgeYears float64
	Size     DogSize
	WeightKg float64
	// BCS 0 означает, что оценка упитанности не задана
	BCS BodyConditionScore
}

// BodyConditionResult оценка упитанности и идеального веса
type BodyConditionResult struct {
	Score         int           `json:"score"`
	Condition     BodyCondition `json:"condition"`
	IdealWeightKg float64       `json:"ideal_weight_kg,omitempty"`
	WeightDiffKg  float64       `json:"weight_diff_kg,omitempty"`
}

// DogAgeResult результат калькулятора возраста собаки
type DogAgeResult struct {
	AgeYears              float64              `json:"age_years"`
	Size                  string               `json:"size"`
	EpigeneticHumanYears  float64              `json:"epigenetic_human_years"`
	TraditionalHumanYears float64              `json:"traditional_human_years"`
	LifeStage             LifeStage            `json:"life_stage"`
	BodyCondition         *BodyConditionResult `json:"body_condition,omitempty"`
}

// CalculateDogAge пересчитывает возраст собаки в человеческие годы
func CalculateDogAge(in DogAgeInput) (*DogAgeResult, error) {
	traditional, err := DogAgeTraditional(in.AgeYears, in.Size)
	if err != nil {
		return nil, err
	}
	epigenetic := DogAgeEpigenetic(in.AgeYears)

	result := &DogAgeResult{
		AgeYears:              in.AgeYears,
		Size:                  in.Size.String(),
		EpigeneticHumanYears:  utils.Round1(epigenetic),
		TraditionalHumanYears: utils.Round1(traditional),
		LifeStage:             lifeStage(traditional),
	}

	if in.BCS != 0 {
		condition, err := in.BCS.Classify()
		if err != nil {
			return nil, err
		}
		bc := &BodyConditionResult{Score: int(in.BCS), Condition: condition}
		if in.WeightKg > 0 {
			ideal := in.BCS.IdealWeight(in.WeightKg)
			bc.IdealWeightKg = utils.Round1(ideal)
			bc.WeightDiffKg = utils.Round1(in.WeightKg - ideal)
		}
		result.BodyCondition = bc
	}

	return result, nil
}
