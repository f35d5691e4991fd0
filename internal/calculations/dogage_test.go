package calculations

import (
	"errors"
	"math"
	"testing"
)

func TestDogAgeEpigenetic(t *testing.T) {
	tests := []struct {
		years float64
		want  float64
	}{
		{years: 0.5, want: 15.5},
		{years: 1, want: 31},
		{years: 2, want: 42.09},
		{years: 10, want: 67.84},
	}

	for _, tt := range tests {
		got := DogAgeEpigenetic(tt.years)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("DogAgeEpigenetic(%v) = %v, want %v", tt.years, got, tt.want)
		}
	}
}

func TestDogAgeTraditional(t *testing.T) {
	tests := []struct {
		name  string
		years float64
		size  DogSize
		want  float64
	}{
		{name: "first year", years: 1, size: DogSizeGiant, want: 15},
		{name: "half year", years: 0.5, size: DogSizeSmall, want: 7.5},
		{name: "second year", years: 2, size: DogSizeLarge, want: 24},
		{name: "small five", years: 5, size: DogSizeSmall, want: 36},
		{name: "medium five", years: 5, size: DogSizeMedium, want: 39},
		{name: "large five", years: 5, size: DogSizeLarge, want: 42},
		{name: "giant five", years: 5, size: DogSizeGiant, want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DogAgeTraditional(tt.years, tt.size)
			if err != nil {
				t.Fatalf("DogAgeTraditional() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DogAgeTraditional() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DogAgeTraditional(3, DogSize(42)); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseDogSize(t *testing.T) {
	for input, want := range map[string]DogSize{"": DogSizeMedium, "SMALL": DogSizeSmall, "giant": DogSizeGiant} {
		got, err := ParseDogSize(input)
		if err != nil || got != want {
			t.Errorf("ParseDogSize(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseDogSize("tiny"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestBodyConditionScore(t *testing.T) {
	tests := []struct {
		score BodyConditionScore
		want  BodyCondition
	}{
		{score: 1, want: BodyConditionUnderweight},
		{score: 4, want: BodyConditionIdeal},
		{score: 5, want: BodyConditionIdeal},
		{score: 7, want: BodyConditionOverweight},
		{score: 9, want: BodyConditionObese},
	}
	for _, tt := range tests {
		got, err := tt.score.Classify()
		if err != nil || got != tt.want {
			t.Errorf("Classify(%d) = %v, %v", tt.score, got, err)
		}
	}

	if _, err := BodyConditionScore(10).Classify(); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if got := BodyConditionScore(7).IdealWeight(33); math.Abs(got-27.5) > 1e-9 {
		t.Errorf("IdealWeight() = %v, want 27.5", got)
	}
	if got := BodyConditionScore(3).IdealWeight(12); math.Abs(got-15) > 1e-9 {
		t.Errorf("IdealWeight() = %v, want 15", got)
	}
}

func TestCalculateDogAge(t *testing.T) {
	result, err := CalculateDogAge(DogAgeInput{AgeYears: 5, Size: DogSizeLarge, WeightKg: 33, BCS: 7})
	if err != nil {
		t.Fatalf("CalculateDogAge() error = %v", err)
	}
	if result.TraditionalHumanYears != 42 {
		t.Errorf("traditional = %v", result.TraditionalHumanYears)
	}
	if result.EpigeneticHumanYears != 56.8 {
		t.Errorf("epigenetic = %v, want 56.8", result.EpigeneticHumanYears)
	}
	if result.LifeStage != LifeStageMature {
		t.Errorf("life stage = %v", result.LifeStage)
	}
	if result.BodyCondition == nil {
		t.Fatal("expected body condition")
	}
	if result.BodyCondition.IdealWeightKg != 27.5 || result.BodyCondition.WeightDiffKg != 5.5 {
		t.Errorf("body condition = %+v", result.BodyCondition)
	}

	puppy, err := CalculateDogAge(DogAgeInput{AgeYears: 0.5, Size: DogSizeSmall})
	if err != nil {
		t.Fatalf("CalculateDogAge() error = %v", err)
	}
	if puppy.LifeStage != LifeStagePuppy || puppy.BodyCondition != nil {
		t.Errorf("puppy = %+v", puppy)
	}

	if _, err := CalculateDogAge(DogAgeInput{AgeYears: 3, BCS: 12}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}
