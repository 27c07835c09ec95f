package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagAspectsMatchesKeywords(t *testing.T) {
	tags := TagAspects("The library needs more power outlets", "NEGATIVE")
	assert.Equal(t, "facility:NEGATIVE", tags)
}

func TestTagAspectsIsCaseInsensitive(t *testing.T) {
	tags := TagAspects("PROFESSOR Smith is excellent!", "POSITIVE")
	assert.Equal(t, "teaching:POSITIVE", tags)
}

func TestTagAspectsKeepsCategoryOrder(t *testing.T) {
	// Mentions curriculum and facility before teaching in the text, but
	// the output follows the fixed category order.
	tags := TagAspects("The syllabus is outdated and the lab is crowded, unlike the lecture", "NEGATIVE")
	assert.Equal(t, "teaching:NEGATIVE,facility:NEGATIVE,curriculum:NEGATIVE", tags)
}

func TestTagAspectsMatchesSubstrings(t *testing.T) {
	// "classroom" contains "room".
	tags := TagAspects("The classroom is too cold", "NEUTRAL")
	assert.Equal(t, "facility:NEUTRAL", tags)
}

func TestTagAspectsNoMatchIsEmpty(t *testing.T) {
	assert.Equal(t, "", TagAspects("Everything is great", "POSITIVE"))
	assert.Equal(t, "", TagAspects("", "NEUTRAL"))
}

func TestTagAspectsOneTagPerCategory(t *testing.T) {
	// Multiple keywords of the same category produce a single tag.
	tags := TagAspects("The lab and the library and the canteen", "POSITIVE")
	assert.Equal(t, "facility:POSITIVE", tags)
}
