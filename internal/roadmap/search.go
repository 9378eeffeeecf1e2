package roadmap

import "github.com/mkwasniak/nroads/internal/container"

// Verdict classifies the outcome of a route search.
type Verdict int

const (
	// VerdictError means the search could not run at all (nil arguments).
	VerdictError Verdict = iota
	// VerdictNone means no route exists between the two cities.
	VerdictNone
	// VerdictAmbiguous means more than one route achieves the best Distance.
	VerdictAmbiguous
	// VerdictUnique means exactly one route achieves the best Distance.
	VerdictUnique
)

// SearchResult is the outcome of FindRoute. Segments is populated only for
// VerdictUnique, in order from the search's "from" city to its "to" city.
type SearchResult struct {
	Verdict  Verdict
	Distance Distance
	Segments []*Segment
}

// searchEntry is a heap entry pairing a candidate distance with the city it
// reaches.
type searchEntry struct {
	distance Distance
	city     *City
}

// FindRoute searches for the shortest route between from and to, where
// "shortest" means smallest Distance (length ascending, then worst repair
// year descending). No intermediate city of the returned route may be an
// endpoint of any segment in forbidden, except from and to themselves;
// segments with zero length are never usable.
//
// The search runs in two phases, matching the structure of the original
// route-search implementation: a backward Dijkstra pass computes, for every
// city, its best Distance to "to"; a forward pass from "from" then
// reconstructs the path one city at a time, and flags the result
// VerdictAmbiguous the moment two different next cities both achieve the
// optimal Distance.
func FindRoute(g *Graph, from, to *City, forbidden []*Segment) SearchResult {
	if g == nil || from == nil || to == nil {
		return SearchResult{Verdict: VerdictError, Distance: worstDistance}
	}

	dist := make(map[*City]Distance, len(g.cities))
	for _, c := range g.cities {
		dist[c] = worstDistance
	}

	blocked := make(map[*City]bool)
	for _, s := range forbidden {
		blocked[s.e1] = true
		blocked[s.e2] = true
	}
	// The search's own endpoints may appear on the forbidden list's
	// segments (e.g. when extending a route at a city the route already
	// touches); they are never themselves off-limits.
	delete(blocked, from)
	delete(blocked, to)

	dist[to] = baseDistance
	heap := container.NewMinHeap(func(a, b searchEntry) bool {
		return compareDistance(a.distance, b.distance) < 0
	})
	heap.Push(searchEntry{distance: baseDistance, city: to})

	for heap.Len() > 0 {
		cur := heap.Pop()
		if blocked[cur.city] || compareDistance(cur.distance, dist[cur.city]) > 0 {
			continue // forbidden, or a stale (already-improved) entry
		}
		dist[cur.city] = cur.distance

		if cur.city == from {
			break // the shortest distance to from is now final
		}

		for _, s := range cur.city.segments {
			newCity, ok := otherEnd(s, cur.city)
			if !ok {
				continue
			}
			nd := addSegment(cur.distance, s)
			if compareDistance(nd, dist[newCity]) < 0 {
				dist[newCity] = nd
				heap.Push(searchEntry{distance: nd, city: newCity})
			}
		}
	}

	// Forbidden cities may have picked up a distance during relaxation;
	// purge it so phase two can never step onto one.
	for c := range blocked {
		dist[c] = worstDistance
	}

	endDistance := dist[from]
	if endDistance == worstDistance {
		return SearchResult{Verdict: VerdictNone, Distance: endDistance}
	}

	var segs []*Segment
	position := from
	current := baseDistance
	for position != to {
		var newPosition *City
		var newCurrent Distance
		ambiguous := false

		for _, s := range position.segments {
			newCity, ok := otherEnd(s, position)
			if !ok {
				continue
			}
			nd := combine(addSegment(dist[newCity], s), current)
			if nd != endDistance {
				continue
			}
			if newPosition != nil {
				ambiguous = true
				break
			}
			newPosition = newCity
			segs = append(segs, s)
			newCurrent = addSegment(current, s)
		}

		if ambiguous {
			return SearchResult{Verdict: VerdictAmbiguous, Distance: endDistance}
		}
		if newPosition == nil {
			return SearchResult{Verdict: VerdictNone, Distance: endDistance}
		}
		position = newPosition
		current = newCurrent
	}

	return SearchResult{Verdict: VerdictUnique, Distance: endDistance, Segments: segs}
}
