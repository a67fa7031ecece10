package profile

import (
	"schoolmatch-backend/internal/schools"
)

// Location is the student's home location.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// RawProfile is the loosely-structured output of the extraction service.
// Every field is optional; unusable extractions round-trip as the zero value.
type RawProfile struct {
	GradeLevel          string            `json:"grade_level"`
	GradeEntering       string            `json:"grade_entering"`
	SchoolTypeRequested string            `json:"school_type_requested"`
	AcademicStrengths   []string          `json:"academic_strengths"`
	AcademicChallenges  []string          `json:"academic_challenges"`
	Interests           []string          `json:"interests"`
	LearningNeeds       []string          `json:"learning_needs"`
	TestScores          map[string]string `json:"test_scores"`
	SpecialServices     []string          `json:"special_services"`
	Location            Location          `json:"location"`
	Summary             string            `json:"summary"`
}

// InterestFlags marks the interest categories detected for the student.
type InterestFlags struct {
	STEM     bool `json:"stem"`
	Arts     bool `json:"arts"`
	Sports   bool `json:"sports"`
	Language bool `json:"language"`
}

// NeedFlags marks the learning-need categories detected for the student.
type NeedFlags struct {
	SmallClasses   bool `json:"small_classes"`
	SpecialEd      bool `json:"special_ed"`
	Gifted         bool `json:"gifted"`
	EnglishLearner bool `json:"english_learner"`
}

// StudentProfile is the canonical profile consumed by school matching.
// Level is always resolved; extraction artifacts ride along in Raw.
type StudentProfile struct {
	GradeEntering string              `json:"gradeEntering"`
	Level         schools.SchoolLevel `json:"schoolLevel"`
	LevelName     string              `json:"schoolLevelName"`
	Interests     InterestFlags       `json:"interestCategories"`
	Needs         NeedFlags           `json:"needsCategories"`
	Location      Location            `json:"location"`
	Raw           RawProfile          `json:"raw"`
}
