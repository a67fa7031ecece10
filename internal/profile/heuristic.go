package profile

import (
	"regexp"
	"strings"
)

var (
	ordinalGradeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?[\s-]+grade\b`)
	gradeWordRe    = regexp.MustCompile(`(?i)\bgrade\s+(\d{1,2}|k)\b`)
	tokenSplitRe   = regexp.MustCompile(`[^a-z]+`)
)

// HeuristicExtract builds a best-effort raw profile straight from text. It is
// the degraded path used when the extraction service is unavailable or
// returns nothing usable; unmatched fields stay empty.
func HeuristicExtract(text string) RawProfile {
	lower := strings.ToLower(text)
	raw := RawProfile{}

	switch {
	case strings.Contains(lower, "high school"), strings.Contains(lower, "highschool"):
		raw.SchoolTypeRequested = "high"
	case strings.Contains(lower, "middle school"):
		raw.SchoolTypeRequested = "middle"
	case strings.Contains(lower, "elementary"):
		raw.SchoolTypeRequested = "elementary"
	}

	if m := ordinalGradeRe.FindStringSubmatch(lower); m != nil {
		raw.GradeEntering = m[1]
	} else if m := gradeWordRe.FindStringSubmatch(lower); m != nil {
		raw.GradeEntering = strings.ToUpper(m[1])
	} else if strings.Contains(lower, "kindergarten") {
		raw.GradeEntering = "K"
	}

	for _, token := range tokenSplitRe.Split(lower, -1) {
		if token == "" {
			continue
		}
		for _, set := range interestKeywords {
			if set[token] {
				raw.Interests = appendUnique(raw.Interests, token)
			}
		}
	}

	if strings.Contains(lower, "small class") {
		raw.LearningNeeds = append(raw.LearningNeeds, "small classes")
	}
	if strings.Contains(lower, "gifted") {
		raw.LearningNeeds = append(raw.LearningNeeds, "gifted program")
	}
	if strings.Contains(lower, "iep") || strings.Contains(lower, "special ed") {
		raw.SpecialServices = append(raw.SpecialServices, "IEP")
	}
	if strings.Contains(lower, "english learner") || strings.Contains(lower, " ell") {
		raw.SpecialServices = append(raw.SpecialServices, "ELL")
	}

	return raw
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
