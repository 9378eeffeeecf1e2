package roadmap

import "github.com/mkwasniak/nroads/internal/container"

// RoadStatus classifies a proposed (name1, name2, length, year) segment
// against whatever segment (if any) already connects the two cities.
type RoadStatus int

const (
	// Illegal means the request conflicts with the existing segment, or
	// the request itself is malformed.
	Illegal RoadStatus = iota
	// Addable means no segment exists yet between the two cities.
	Addable
	// Repairable means a segment exists with this length but an older
	// repair year.
	Repairable
	// Exact means a segment exists with this exact length and year.
	Exact
)

const maxRouteID = 999

// Map is the transactional façade over the road graph and the route
// registry. Every exported method is all-or-nothing: on failure the map's
// externally observable state is unchanged.
type Map struct {
	graph  *Graph
	routes [maxRouteID + 1]*Route
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{graph: NewGraph()}
}

func validRouteID(id uint32) bool {
	return id >= 1 && id <= maxRouteID
}

func distinctValidNames(n1, n2 string) bool {
	return ValidName(n1) && ValidName(n2) && n1 != n2
}

// AddRoad creates the named cities if they do not yet exist and connects
// them with a new segment. It fails if a segment already connects them, or
// if the names/length/year are invalid. Cities created before a later
// failure are intentionally left in place: the map permits orphan cities.
func (m *Map) AddRoad(name1, name2 string, length uint32, year int32) bool {
	if length == 0 || year == 0 || !distinctValidNames(name1, name2) {
		return false
	}

	c1 := m.graph.EnsureCity(name1)
	c2 := m.graph.EnsureCity(name2)

	if _, exists := m.graph.FindSegment(c1, c2); exists {
		return false
	}

	m.graph.AddSegment(c1, c2, length, year)
	return true
}

// RepairRoad updates the repair year of the segment between two existing
// cities, provided the new year is not older than the stored one.
func (m *Map) RepairRoad(name1, name2 string, year int32) bool {
	if year == 0 || !distinctValidNames(name1, name2) {
		return false
	}

	c1, ok1 := m.graph.City(name1)
	c2, ok2 := m.graph.City(name2)
	if !ok1 || !ok2 {
		return false
	}

	seg, ok := m.graph.FindSegment(c1, c2)
	if !ok || seg.LastRepaired > year {
		return false
	}

	seg.LastRepaired = year
	return true
}

// RoadStatus reports what AddRoad/RepairRoad would do for the given
// (name1, name2, length, year) without changing anything.
func (m *Map) RoadStatus(name1, name2 string, length uint32, year int32) RoadStatus {
	if length == 0 || year == 0 || !distinctValidNames(name1, name2) {
		return Illegal
	}

	c1, ok1 := m.graph.City(name1)
	c2, ok2 := m.graph.City(name2)

	var seg *Segment
	if ok1 && ok2 {
		seg, _ = m.graph.FindSegment(c1, c2)
	}

	switch {
	case seg == nil:
		return Addable
	case seg.Length != length:
		return Illegal
	case seg.LastRepaired < year:
		return Repairable
	case seg.LastRepaired == year:
		return Exact
	default:
		return Illegal
	}
}

// NewRoute creates route id as the unique shortest path between two
// existing cities, failing if no such unique path exists.
func (m *Map) NewRoute(id uint32, name1, name2 string) bool {
	if !validRouteID(id) || m.routes[id] != nil || !distinctValidNames(name1, name2) {
		return false
	}

	c1, ok1 := m.graph.City(name1)
	c2, ok2 := m.graph.City(name2)
	if !ok1 || !ok2 {
		return false
	}

	result := FindRoute(m.graph, c1, c2, nil)
	if result.Verdict != VerdictUnique {
		return false
	}

	m.routes[id] = NewRoute(result.Segments, c1, c2)
	return true
}

// CreateRoute creates route id from an explicit list of cities, with the
// length and year of each connecting leg supplied alongside. Every leg's
// getRoadStatus is checked before any leg is mutated; if any leg would be
// Illegal, the whole call fails without touching the graph. Legs are then
// committed in order (Addable -> AddRoad, Repairable -> RepairRoad, Exact
// -> no-op); a failure partway through a leg's commit is reported but prior
// legs' mutations are not rolled back, matching the original design: the
// caller described the exact road network it wants.
func (m *Map) CreateRoute(id uint32, cities []string, lengths []uint32, years []int32) bool {
	if !validRouteID(id) || m.routes[id] != nil {
		return false
	}
	if len(cities) < 2 || len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return false
	}
	for _, c := range cities {
		if !ValidName(c) {
			return false
		}
	}
	if hasDuplicateName(cities) {
		return false
	}

	statuses := make([]RoadStatus, len(lengths))
	for i := range lengths {
		statuses[i] = m.RoadStatus(cities[i], cities[i+1], lengths[i], years[i])
		if statuses[i] == Illegal {
			return false
		}
	}

	for i, status := range statuses {
		switch status {
		case Addable:
			if !m.AddRoad(cities[i], cities[i+1], lengths[i], years[i]) {
				return false
			}
		case Repairable:
			if !m.RepairRoad(cities[i], cities[i+1], years[i]) {
				return false
			}
		case Exact:
			// segment already exactly as requested
		}
	}

	segs := make([]*Segment, len(lengths))
	for i := range lengths {
		c1, _ := m.graph.City(cities[i])
		c2, _ := m.graph.City(cities[i+1])
		seg, ok := m.graph.FindSegment(c1, c2)
		if !ok {
			return false
		}
		segs[i] = seg
	}

	first, _ := m.graph.City(cities[0])
	last, _ := m.graph.City(cities[len(cities)-1])
	m.routes[id] = NewRoute(segs, first, last)
	return true
}

func hasDuplicateName(names []string) bool {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return true
		}
		seen[n] = true
	}
	return false
}

// ExtendRoute extends route id to include cityName at whichever end yields
// a strictly better, unique shortest path, per the six-way decision between
// the two candidate searches (from cityName to end1, and from end2 to
// cityName).
func (m *Map) ExtendRoute(id uint32, cityName string) bool {
	if !validRouteID(id) || !ValidName(cityName) {
		return false
	}

	route := m.routes[id]
	if route == nil {
		return false
	}

	city, ok := m.graph.City(cityName)
	if !ok {
		return false
	}

	for _, s := range route.roads {
		if s.e1 == city || s.e2 == city {
			return false
		}
	}

	end1, end2 := route.Ends()
	toEnd1 := FindRoute(m.graph, city, end1, route.roads)
	fromEnd2 := FindRoute(m.graph, end2, city, route.roads)

	if toEnd1.Verdict == VerdictError || fromEnd2.Verdict == VerdictError {
		return false
	}
	if toEnd1.Verdict != VerdictUnique && fromEnd2.Verdict != VerdictUnique {
		return false
	}

	var connectToEnd1 bool
	switch {
	case toEnd1.Verdict == VerdictUnique && fromEnd2.Verdict == VerdictUnique:
		cmp := compareDistance(toEnd1.Distance, fromEnd2.Distance)
		if cmp == 0 {
			return false
		}
		connectToEnd1 = cmp < 0
	case toEnd1.Verdict == VerdictUnique: // fromEnd2 is None or Ambiguous
		if fromEnd2.Verdict == VerdictNone {
			connectToEnd1 = true
		} else {
			if compareDistance(toEnd1.Distance, fromEnd2.Distance) >= 0 {
				return false
			}
			connectToEnd1 = true
		}
	default: // fromEnd2 is Unique, toEnd1 is None or Ambiguous
		if toEnd1.Verdict == VerdictNone {
			connectToEnd1 = false
		} else {
			if compareDistance(toEnd1.Distance, fromEnd2.Distance) <= 0 {
				return false
			}
			connectToEnd1 = false
		}
	}

	if connectToEnd1 {
		route.roads = append(append([]*Segment{}, toEnd1.Segments...), route.roads...)
		route.end1 = city
	} else {
		route.roads = append(append([]*Segment{}, route.roads...), fromEnd2.Segments...)
		route.end2 = city
	}
	return true
}

// RemoveRoad removes the segment between two cities, patching every route
// that used it with an alternate unique path. If any affected route cannot
// be patched, nothing is changed: the segment is restored and no route is
// touched.
func (m *Map) RemoveRoad(name1, name2 string) bool {
	if !distinctValidNames(name1, name2) {
		return false
	}

	c1, ok1 := m.graph.City(name1)
	c2, ok2 := m.graph.City(name2)
	if !ok1 || !ok2 {
		return false
	}

	seg, ok := m.graph.FindSegment(c1, c2)
	if !ok {
		return false
	}

	oldLength := seg.Length
	seg.Length = 0 // block: the search may not use this segment while we patch routes

	type pendingPatch struct {
		id   uint32
		plan container.SplicePlan[*Segment]
	}
	var patches []pendingPatch

	for id := uint32(1); id <= maxRouteID; id++ {
		route := m.routes[id]
		if route == nil || !containsSegment(route.roads, seg) {
			continue
		}

		var result SearchResult
		switch Orient(route, c1, c2) {
		case OrientationEnd1:
			result = FindRoute(m.graph, c1, c2, route.roads)
		case OrientationEnd2:
			result = FindRoute(m.graph, c2, c1, route.roads)
		default:
			seg.Length = oldLength
			return false
		}

		if result.Verdict != VerdictUnique {
			seg.Length = oldLength
			return false
		}

		plan, ok := container.PrepareSplice(route.roads, seg, result.Segments)
		if !ok {
			seg.Length = oldLength
			return false
		}
		patches = append(patches, pendingPatch{id: id, plan: plan})
	}

	for _, p := range patches {
		m.routes[p.id].roads = p.plan.Commit()
	}

	m.graph.RemoveSegment(seg)
	return true
}

func containsSegment(segs []*Segment, target *Segment) bool {
	for _, s := range segs {
		if s == target {
			return true
		}
	}
	return false
}

// RemoveRoute deletes route id. The segments it referenced are untouched.
func (m *Map) RemoveRoute(id uint32) bool {
	if !validRouteID(id) || m.routes[id] == nil {
		return false
	}
	m.routes[id] = nil
	return true
}

// RouteDescription returns the textual description of route id, or the
// empty string if id is out of range or the slot is empty.
func (m *Map) RouteDescription(id uint32) string {
	if !validRouteID(id) || m.routes[id] == nil {
		return ""
	}
	return Describe(m.routes[id], id)
}
