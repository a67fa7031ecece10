package profile

import (
	"strings"
	"unicode"

	"schoolmatch-backend/internal/schools"
)

// gradeToLevel maps entering-grade tokens to school levels, covering
// kindergarten plus numeric and spelled grades 1-12.
var gradeToLevel = map[string]schools.SchoolLevel{
	"k": schools.LevelElementary, "kindergarten": schools.LevelElementary,
	"1": schools.LevelElementary, "2": schools.LevelElementary, "3": schools.LevelElementary,
	"4": schools.LevelElementary, "5": schools.LevelElementary,
	"first": schools.LevelElementary, "second": schools.LevelElementary, "third": schools.LevelElementary,
	"fourth": schools.LevelElementary, "fifth": schools.LevelElementary,
	"6": schools.LevelMiddle, "7": schools.LevelMiddle, "8": schools.LevelMiddle,
	"sixth": schools.LevelMiddle, "seventh": schools.LevelMiddle, "eighth": schools.LevelMiddle,
	"9": schools.LevelHigh, "10": schools.LevelHigh, "11": schools.LevelHigh, "12": schools.LevelHigh,
	"ninth": schools.LevelHigh, "tenth": schools.LevelHigh, "eleventh": schools.LevelHigh, "twelfth": schools.LevelHigh,
}

// ResolveSchoolLevel resolves the school level for a profile. Priority order:
// the parent's explicit school-type request wins, then the grade table, then
// a leading-integer fallback, then unresolved.
func ResolveSchoolLevel(schoolTypeRequested, gradeEntering string) schools.SchoolLevel {
	requested := strings.ToLower(strings.TrimSpace(schoolTypeRequested))
	switch {
	case strings.Contains(requested, "high"):
		return schools.LevelHigh
	case strings.Contains(requested, "middle"):
		return schools.LevelMiddle
	case strings.Contains(requested, "elementary"), strings.Contains(requested, "elem"):
		return schools.LevelElementary
	}

	grade := strings.ToLower(strings.TrimSpace(gradeEntering))
	if level, ok := gradeToLevel[grade]; ok {
		return level
	}

	if num, ok := leadingInt(grade); ok {
		switch {
		case num <= 5:
			return schools.LevelElementary
		case num <= 8:
			return schools.LevelMiddle
		case num <= 12:
			return schools.LevelHigh
		}
	}
	return schools.LevelUnknown
}

func leadingInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	num := 0
	for _, r := range s[start:end] {
		num = num*10 + int(r-'0')
	}
	return num, true
}

// Normalize builds the canonical profile from a raw extraction. The grade
// actually matched prefers grade_entering and falls back to grade_level.
func Normalize(raw RawProfile) StudentProfile {
	grade := strings.TrimSpace(raw.GradeEntering)
	if grade == "" {
		grade = strings.TrimSpace(raw.GradeLevel)
	}
	level := ResolveSchoolLevel(raw.SchoolTypeRequested, grade)

	return StudentProfile{
		GradeEntering: grade,
		Level:         level,
		LevelName:     level.Name(),
		Interests:     CategorizeInterests(raw.Interests),
		Needs:         CategorizeNeeds(raw.LearningNeeds, raw.SpecialServices),
		Location:      raw.Location,
		Raw:           raw,
	}
}
