package profile

import (
	"testing"

	"schoolmatch-backend/internal/schools"
)

func TestResolveSchoolLevelExplicitRequestWins(t *testing.T) {
	cases := []struct {
		name      string
		requested string
		grade     string
		want      schools.SchoolLevel
	}{
		{"high_overrides_grade", "high school", "3", schools.LevelHigh},
		{"high_embedded", "which high school can she attend", "K", schools.LevelHigh},
		{"middle_request", "middle", "11", schools.LevelMiddle},
		{"elementary_request", "elementary", "9", schools.LevelElementary},
		{"elem_abbreviation", "elem school", "10", schools.LevelElementary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSchoolLevel(tc.requested, tc.grade); got != tc.want {
				t.Fatalf("ResolveSchoolLevel(%q, %q) = %v, want %v", tc.requested, tc.grade, got, tc.want)
			}
		})
	}
}

func TestResolveSchoolLevelGradeTable(t *testing.T) {
	cases := []struct {
		grade string
		want  schools.SchoolLevel
	}{
		{"K", schools.LevelElementary},
		{"kindergarten", schools.LevelElementary},
		{" Kindergarten ", schools.LevelElementary},
		{"3", schools.LevelElementary},
		{"fifth", schools.LevelElementary},
		{"6", schools.LevelMiddle},
		{"Seventh", schools.LevelMiddle},
		{"9", schools.LevelHigh},
		{"twelfth", schools.LevelHigh},
	}
	for _, tc := range cases {
		if got := ResolveSchoolLevel("", tc.grade); got != tc.want {
			t.Errorf("ResolveSchoolLevel(%q) = %v, want %v", tc.grade, got, tc.want)
		}
	}
}

func TestResolveSchoolLevelNumericFallback(t *testing.T) {
	cases := []struct {
		grade string
		want  schools.SchoolLevel
	}{
		{"grade 4", schools.LevelElementary},
		{"7th", schools.LevelMiddle},
		{"entering 10", schools.LevelHigh},
		{"13", schools.LevelUnknown},
		{"", schools.LevelUnknown},
		{"unknown", schools.LevelUnknown},
	}
	for _, tc := range cases {
		if got := ResolveSchoolLevel("", tc.grade); got != tc.want {
			t.Errorf("ResolveSchoolLevel(%q) = %v, want %v", tc.grade, got, tc.want)
		}
	}
}

func TestNormalizeResolvesLevelName(t *testing.T) {
	p := Normalize(RawProfile{GradeEntering: "6"})
	if p.Level != schools.LevelMiddle {
		t.Fatalf("level = %v, want middle", p.Level)
	}
	if p.LevelName != "Middle School" {
		t.Fatalf("level name = %q, want Middle School", p.LevelName)
	}

	unresolved := Normalize(RawProfile{})
	if unresolved.Level != schools.LevelUnknown {
		t.Fatalf("level = %v, want unknown", unresolved.Level)
	}
	if unresolved.LevelName != "Unknown" {
		t.Fatalf("level name = %q, want Unknown", unresolved.LevelName)
	}
}

func TestNormalizeFallsBackToGradeLevel(t *testing.T) {
	p := Normalize(RawProfile{GradeLevel: "10"})
	if p.Level != schools.LevelHigh {
		t.Fatalf("level = %v, want high", p.Level)
	}
	if p.GradeEntering != "10" {
		t.Fatalf("grade = %q, want 10", p.GradeEntering)
	}
}

func TestCategorizeInterests(t *testing.T) {
	flags := CategorizeInterests([]string{"Math", " science ", "painting"})
	if !flags.STEM {
		t.Error("expected stem flag")
	}
	if flags.Arts {
		t.Error("did not expect arts flag (painting is not a trigger token)")
	}

	flags = CategorizeInterests([]string{"Soccer", "Spanish"})
	if !flags.Sports || !flags.Language {
		t.Errorf("expected sports and language flags, got %+v", flags)
	}
	if flags.STEM || flags.Arts {
		t.Errorf("unexpected flags: %+v", flags)
	}
}

func TestCategorizeNeeds(t *testing.T) {
	needs := CategorizeNeeds(
		[]string{"needs smaller classes", "small group support"},
		[]string{"Has an IEP", "ELL services"},
	)
	if !needs.SmallClasses || !needs.SpecialEd || !needs.EnglishLearner {
		t.Fatalf("unexpected flags: %+v", needs)
	}
	if needs.Gifted {
		t.Fatalf("did not expect gifted flag: %+v", needs)
	}

	gifted := CategorizeNeeds([]string{"gifted program"}, []string{"GATE"})
	if !gifted.Gifted {
		t.Fatalf("expected gifted flag: %+v", gifted)
	}
}

func TestNormalizeEmptyRawRoundTrips(t *testing.T) {
	p := Normalize(RawProfile{})
	if p.Interests != (InterestFlags{}) || p.Needs != (NeedFlags{}) {
		t.Fatalf("expected all flags false, got %+v %+v", p.Interests, p.Needs)
	}
	if p.Location != (Location{}) {
		t.Fatalf("expected empty location, got %+v", p.Location)
	}
}
