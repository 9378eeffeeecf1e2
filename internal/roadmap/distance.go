package roadmap

import "math"

// Distance is the two-key cost used by the route search: total length in
// ascending order, broken by the worst (oldest) repair year in descending
// order. Two distances are equal only when both keys match, which is what
// lets the search detect an ambiguous shortest route: two different
// predecessors producing an equal Distance at the same step.
type Distance struct {
	Length    uint64
	WorstYear int32
}

// worstDistance is larger than any real distance a route can accumulate; it
// seeds every city other than the search target, and is restored onto any
// city the search must not pass through.
var worstDistance = Distance{
	Length:    math.MaxUint64 - math.MaxUint32,
	WorstYear: math.MinInt32,
}

// baseDistance is the identity element: zero length, and a worst-year so
// favorable that the first real segment always dominates it.
var baseDistance = Distance{
	Length:    0,
	WorstYear: math.MaxInt32,
}

// addSegment returns the distance obtained by walking d and then crossing
// segment s.
func addSegment(d Distance, s *Segment) Distance {
	return Distance{
		Length:    d.Length + uint64(s.Length),
		WorstYear: minInt32(d.WorstYear, s.LastRepaired),
	}
}

// combine merges two distances that meet at a shared city, as when joining
// a prefix already walked with the remaining distance to the destination.
func combine(a, b Distance) Distance {
	return Distance{
		Length:    a.Length + b.Length,
		WorstYear: minInt32(a.WorstYear, b.WorstYear),
	}
}

// compareDistance orders distances ascending by length, then descending by
// worst year. It returns -1, 0, or 1 the way bytes.Compare does.
func compareDistance(a, b Distance) int {
	switch {
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	case a.WorstYear > b.WorstYear:
		return -1
	case a.WorstYear < b.WorstYear:
		return 1
	default:
		return 0
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
