package profile

import "strings"

// Interest categories are triggered by exact token matches; need categories
// by substring tests. Both operate on lower-cased, trimmed input.
var interestKeywords = map[string]map[string]bool{
	"stem":     tokenSet("math", "science", "stem", "technology", "engineering", "computer"),
	"arts":     tokenSet("art", "music", "drama", "theater", "dance", "creative"),
	"sports":   tokenSet("sports", "athletics", "physical", "pe", "soccer", "basketball"),
	"language": tokenSet("language", "spanish", "french", "esl", "bilingual"),
}

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

func matchesCategory(values []string, category string) bool {
	set := interestKeywords[category]
	for _, v := range values {
		if set[strings.ToLower(strings.TrimSpace(v))] {
			return true
		}
	}
	return false
}

func containsAny(values []string, substrings ...string) bool {
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// CategorizeInterests derives interest flags from the extracted interest list.
func CategorizeInterests(interests []string) InterestFlags {
	return InterestFlags{
		STEM:     matchesCategory(interests, "stem"),
		Arts:     matchesCategory(interests, "arts"),
		Sports:   matchesCategory(interests, "sports"),
		Language: matchesCategory(interests, "language"),
	}
}

// CategorizeNeeds derives need flags from learning needs and special services.
func CategorizeNeeds(learningNeeds, specialServices []string) NeedFlags {
	return NeedFlags{
		SmallClasses:   containsAny(learningNeeds, "small"),
		SpecialEd:      containsAny(specialServices, "iep", "special ed"),
		Gifted:         containsAny(learningNeeds, "gifted") || containsAny(specialServices, "gate", "gifted"),
		EnglishLearner: containsAny(specialServices, "ell", "english learner"),
	}
}
