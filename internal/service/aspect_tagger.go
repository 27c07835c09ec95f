package service

import "strings"

// Aspect categories in evaluation order, with the keywords that map a
// piece of feedback onto them. A matched category inherits the whole-text
// sentiment label rather than computing its own.
var aspectCategories = []struct {
	name     string
	keywords []string
}{
	{"teaching", []string{"professor", "teacher", "teaching", "lecture"}},
	{"facility", []string{"room", "lab", "canteen", "library"}},
	{"curriculum", []string{"syllabus", "course", "subject", "topics"}},
}

// TagAspects scans text for category keywords (case-insensitive
// substring match) and returns a comma-joined list of "category:label"
// tags, possibly empty.
func TagAspects(text, label string) string {
	textLower := strings.ToLower(text)

	var aspects []string
	for _, cat := range aspectCategories {
		for _, k := range cat.keywords {
			if strings.Contains(textLower, k) {
				aspects = append(aspects, cat.name+":"+label)
				break
			}
		}
	}
	return strings.Join(aspects, ",")
}
