package skills

import (
	"regexp"
	"sort"
	"strings"
)

// tokenRE matches alphanumeric runs that may include internal dots or
// hyphens, so "react-native" and "next.js" are first-class tokens.
var tokenRE = regexp.MustCompile(`[a-z0-9_]+(?:[.-][a-z0-9_]+)*`)

// Classify extracts recognized language and technology tags from text.
// The result is the union of lexicon hits per token, compound terms found
// as substrings, and abbreviation expansions. It is side-effect-free and
// deterministic: the returned slice is sorted and duplicate-free.
func Classify(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, word := range tokenRE.FindAllString(lower, -1) {
		if _, ok := allTechnologies[word]; ok {
			found[word] = struct{}{}
		}
		if _, ok := programmingLanguages[word]; ok {
			found[word] = struct{}{}
		}
		if expanded, ok := abbreviations[word]; ok {
			found[expanded] = struct{}{}
		}
	}

	for _, term := range compoundTerms {
		if strings.Contains(lower, term) {
			found[term] = struct{}{}
		}
	}

	if len(found) == 0 {
		return nil
	}

	tags := make([]string, 0, len(found))
	for tag := range found {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// IsProgrammingLanguage reports whether tag is a known programming
// language.
func IsProgrammingLanguage(tag string) bool {
	_, ok := programmingLanguages[strings.ToLower(tag)]
	return ok
}

// IsTechnology reports whether tag is a known non-language technology.
// A tag is a language XOR a technology, never both.
func IsTechnology(tag string) bool {
	lower := strings.ToLower(tag)
	if _, lang := programmingLanguages[lower]; lang {
		return false
	}
	_, ok := allTechnologies[lower]
	return ok
}

// IsKnown reports whether tag appears in any lexicon partition.
func IsKnown(tag string) bool {
	lower := strings.ToLower(tag)
	if _, ok := programmingLanguages[lower]; ok {
		return true
	}
	_, ok := allTechnologies[lower]
	return ok
}

// Categorized groups tags by lexicon partition.
type Categorized struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Cloud      []string `json:"cloud"`
	Tools      []string `json:"tools"`
}

// Categorize sorts a list of skills into lexicon partitions. Unrecognized
// skills are dropped.
func Categorize(tags []string) Categorized {
	var c Categorized
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		switch {
		case contains(programmingLanguages, lower):
			c.Languages = append(c.Languages, tag)
		case contains(frameworksAndLibraries, lower):
			c.Frameworks = append(c.Frameworks, tag)
		case contains(databases, lower):
			c.Databases = append(c.Databases, tag)
		case contains(cloudPlatforms, lower):
			c.Cloud = append(c.Cloud, tag)
		case contains(toolsAndTechnologies, lower):
			c.Tools = append(c.Tools, tag)
		}
	}
	return c
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
