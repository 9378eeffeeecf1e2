package roadmap

// City is a node in the road graph. Its id is assigned sequentially on
// first creation and is never reused, matching the arena-style dense
// numbering the original map used for cities; Go's garbage collector
// reclaims the City value once nothing references it, so there is no
// matching "delete city" operation here.
type City struct {
	id       int
	name     string
	segments []*Segment
}

// Name returns the city's unique name.
func (c *City) Name() string { return c.name }

// Segment is an undirected road between two distinct cities. A Length of
// zero marks the segment as blocked: a transient state used only while
// RemoveRoad is deciding whether it can patch every route through this
// segment. Blocked segments are invisible to the route search.
type Segment struct {
	e1, e2       *City
	Length       uint32
	LastRepaired int32
}

// blocked reports whether s is in the transient "do not route through me"
// state RemoveRoad uses while validating a removal.
func (s *Segment) blocked() bool { return s.Length == 0 }

// otherEnd returns the city at the opposite end of s from city, or false if
// city is not one of s's endpoints or s is blocked.
func otherEnd(s *Segment, city *City) (*City, bool) {
	if s.blocked() {
		return nil, false
	}
	switch city {
	case s.e1:
		return s.e2, true
	case s.e2:
		return s.e1, true
	default:
		return nil, false
	}
}

// Graph holds every city and the segments between them. Cities and segments
// are addressed only through pointers held in the arena slice and in each
// other's adjacency lists.
type Graph struct {
	cities []*City
	index  NameIndex
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: newNameIndex()}
}

// City looks up a city by name.
func (g *Graph) City(name string) (*City, bool) {
	return g.index.get(name)
}

// EnsureCity returns the city named name, creating it if it does not yet
// exist.
func (g *Graph) EnsureCity(name string) *City {
	if c, ok := g.index.get(name); ok {
		return c
	}
	c := &City{id: len(g.cities), name: name}
	g.cities = append(g.cities, c)
	g.index.put(c)
	return c
}

// FindSegment returns the segment directly connecting c1 and c2, if any. It
// scans the adjacency list of whichever endpoint has fewer incident
// segments, mirroring the original graph's smaller-degree lookup.
func (g *Graph) FindSegment(c1, c2 *City) (*Segment, bool) {
	from, to := c1, c2
	if len(c2.segments) < len(c1.segments) {
		from, to = c2, c1
	}
	for _, s := range from.segments {
		if s.blocked() {
			continue
		}
		if other, _ := otherEnd(s, from); other == to {
			return s, true
		}
	}
	return nil, false
}

// AddSegment creates a new segment between c1 and c2 and links it into both
// cities' adjacency lists. Callers must have already verified no segment
// exists between c1 and c2.
func (g *Graph) AddSegment(c1, c2 *City, length uint32, year int32) *Segment {
	s := &Segment{e1: c1, e2: c2, Length: length, LastRepaired: year}
	c1.segments = append(c1.segments, s)
	c2.segments = append(c2.segments, s)
	return s
}

// RemoveSegment unlinks s from both of its endpoints' adjacency lists.
func (g *Graph) RemoveSegment(s *Segment) {
	s.e1.segments = removeSegmentFrom(s.e1.segments, s)
	s.e2.segments = removeSegmentFrom(s.e2.segments, s)
}

func removeSegmentFrom(segs []*Segment, target *Segment) []*Segment {
	out := segs[:0]
	for _, s := range segs {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
