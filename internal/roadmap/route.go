package roadmap

import (
	"strconv"
	"strings"
)

// Orientation is the result of checking which of two cities comes first
// when a route is walked from its first endpoint.
type Orientation int

const (
	// OrientationNone means neither city was reached, or the two cities are
	// the same.
	OrientationNone Orientation = iota
	// OrientationEnd1 means the first city is reached before the second.
	OrientationEnd1
	// OrientationEnd2 means the second city is reached before the first.
	OrientationEnd2
)

// Route is an ordered, simple walk over existing segments between two
// distinct cities.
type Route struct {
	end1, end2 *City
	roads      []*Segment
}

// NewRoute returns a route over roads between end1 and end2. It takes
// ownership of roads; callers must not mutate the slice afterward.
func NewRoute(roads []*Segment, end1, end2 *City) *Route {
	return &Route{roads: roads, end1: end1, end2: end2}
}

// Segments returns the route's ordered segment list.
func (r *Route) Segments() []*Segment { return r.roads }

// Ends returns the route's two endpoint cities.
func (r *Route) Ends() (*City, *City) { return r.end1, r.end2 }

// Orient reports which of city1 and city2 is reached first when walking the
// route from end1 toward end2. It stops early if it reaches a blocked
// segment, matching the city reached so far against city1/city2.
func Orient(r *Route, city1, city2 *City) Orientation {
	if r == nil || city1 == city2 {
		return OrientationNone
	}

	position := r.end1
	for _, s := range r.roads {
		if position == nil {
			break
		}
		if position == city1 {
			return OrientationEnd1
		}
		if position == city2 {
			return OrientationEnd2
		}
		next, ok := otherEnd(s, position)
		if !ok {
			position = nil
			break
		}
		position = next
	}

	if position == city1 {
		return OrientationEnd1
	}
	if position == city2 {
		return OrientationEnd2
	}
	return OrientationNone
}

// Describe renders a route's textual description:
// id;name0;len0;year0;name1;len1;year1;...;nameN
func Describe(r *Route, id uint32) string {
	var b strings.Builder
	if r == nil {
		return ""
	}

	b.WriteString(strconv.FormatUint(uint64(id), 10))
	position := r.end1
	for _, s := range r.roads {
		b.WriteByte(';')
		b.WriteString(position.name)
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(s.Length), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatInt(int64(s.LastRepaired), 10))
		next, ok := otherEnd(s, position)
		if !ok {
			break
		}
		position = next
	}
	b.WriteByte(';')
	b.WriteString(position.name)

	return b.String()
}
