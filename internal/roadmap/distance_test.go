package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareDistance_LengthDominates(t *testing.T) {
	shorter := Distance{Length: 5, WorstYear: 1990}
	longer := Distance{Length: 6, WorstYear: 2020}
	assert.Equal(t, -1, compareDistance(shorter, longer))
	assert.Equal(t, 1, compareDistance(longer, shorter))
}

func TestCompareDistance_TieBreaksOnNewerWorstYear(t *testing.T) {
	newer := Distance{Length: 5, WorstYear: 2005}
	older := Distance{Length: 5, WorstYear: 1990}
	assert.Equal(t, -1, compareDistance(newer, older), "newer worst-year should win on equal length")
	assert.Equal(t, 0, compareDistance(newer, newer))
}

func TestAddSegment(t *testing.T) {
	s := &Segment{Length: 5, LastRepaired: 1990}
	got := addSegment(baseDistance, s)
	assert.Equal(t, Distance{Length: 5, WorstYear: 1990}, got)

	got2 := addSegment(got, &Segment{Length: 3, LastRepaired: 2005})
	assert.Equal(t, Distance{Length: 8, WorstYear: 1990}, got2, "worst year should stay the minimum seen")
}

func TestCombine(t *testing.T) {
	a := Distance{Length: 5, WorstYear: 2000}
	b := Distance{Length: 3, WorstYear: 1990}
	assert.Equal(t, Distance{Length: 8, WorstYear: 1990}, combine(a, b))
}
