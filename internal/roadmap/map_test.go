package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoad_CreatesCitiesAndSegment(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))

	_, ok := m.graph.City("A")
	assert.True(t, ok)
	_, ok = m.graph.City("B")
	assert.True(t, ok)
}

func TestAddRoad_RejectsDuplicateSegment(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	assert.False(t, m.AddRoad("A", "B", 9, 2001), "a second segment between the same cities is rejected")
}

func TestAddRoad_RejectsZeroLengthOrYear(t *testing.T) {
	m := NewMap()
	assert.False(t, m.AddRoad("A", "B", 0, 2000))
	assert.False(t, m.AddRoad("A", "B", 5, 0))
}

func TestAddRoad_RejectsSameCityTwice(t *testing.T) {
	m := NewMap()
	assert.False(t, m.AddRoad("A", "A", 5, 2000))
}

func TestAddRoad_ThenGetRoadStatus_IsExact(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))

	assert.Equal(t, Exact, m.RoadStatus("A", "B", 5, 2000))
	assert.Equal(t, Illegal, m.RoadStatus("A", "B", 6, 2000), "different length is illegal")
}

func TestRepairRoad_RejectsOlderYear(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))

	assert.False(t, m.RepairRoad("A", "B", 1999))
	assert.True(t, m.RepairRoad("A", "B", 2000), "same year is idempotent")
	assert.True(t, m.RepairRoad("A", "B", 2001))
}

func TestGetRoadStatus_MissingSegmentIsAddable(t *testing.T) {
	m := NewMap()
	assert.Equal(t, Addable, m.RoadStatus("A", "B", 5, 2000))
}

func TestGetRoadStatus_RejectsZeroLengthOrYear(t *testing.T) {
	m := NewMap()
	assert.Equal(t, Illegal, m.RoadStatus("A", "B", 0, 2000))
	assert.Equal(t, Illegal, m.RoadStatus("A", "B", 5, 0))
}

func TestNewRoute_RouteIDBoundaries(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))

	assert.False(t, m.NewRoute(0, "A", "B"))
	assert.False(t, m.NewRoute(1000, "A", "B"))
	assert.True(t, m.NewRoute(1, "A", "B"))

	m2 := NewMap()
	require.True(t, m2.AddRoad("A", "B", 5, 2000))
	assert.True(t, m2.NewRoute(999, "A", "B"))
}

func TestNewRoute_RejectsOccupiedSlot(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.NewRoute(1, "A", "B"))
	assert.False(t, m.NewRoute(1, "A", "B"))
}

func TestScenario_S1_SimpleShortestPath(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.AddRoad("B", "C", 5, 2000))
	require.True(t, m.AddRoad("A", "C", 100, 2000))
	require.True(t, m.NewRoute(7, "A", "C"))

	assert.Equal(t, "7;A;5;2000;B;5;2000;C", m.RouteDescription(7))
}

func TestScenario_S2_TieOnLengthYearTiebreak(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 1990))
	require.True(t, m.AddRoad("B", "C", 5, 1990))
	require.True(t, m.AddRoad("A", "D", 5, 2005))
	require.True(t, m.AddRoad("D", "C", 5, 2005))
	require.True(t, m.NewRoute(1, "A", "C"))

	assert.Equal(t, "1;A;5;2005;D;5;2005;C", m.RouteDescription(1))
}

func TestScenario_S3_AmbiguousRouteRejected(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.AddRoad("B", "C", 5, 2000))
	require.True(t, m.AddRoad("A", "D", 5, 2000))
	require.True(t, m.AddRoad("D", "C", 5, 2000))

	assert.False(t, m.NewRoute(2, "A", "C"))
	assert.Equal(t, "", m.RouteDescription(2))
}

func TestScenario_S4_RemoveRoadPatchesRoute(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.AddRoad("B", "C", 5, 2000))
	require.True(t, m.AddRoad("A", "C", 100, 2000))
	require.True(t, m.NewRoute(7, "A", "C"))

	require.True(t, m.RemoveRoad("B", "C"))
	assert.Equal(t, "7;A;100;2000;C", m.RouteDescription(7))
}

func TestScenario_S5_RemoveRoadUnresolvableFails(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.AddRoad("B", "C", 5, 2000))
	require.True(t, m.NewRoute(7, "A", "C"))

	assert.False(t, m.RemoveRoad("B", "C"))
	_, ok := m.graph.FindSegment(mustCity(t, m, "B"), mustCity(t, m, "C"))
	assert.True(t, ok, "B-C must still be present after the failed removal")
}

func TestScenario_S6_ExtendRouteTiebreak(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.AddRoad("B", "C", 5, 2000))
	require.True(t, m.AddRoad("A", "C", 100, 2000))
	require.True(t, m.NewRoute(7, "A", "C"))
	require.True(t, m.AddRoad("C", "D", 1, 2010))

	require.True(t, m.ExtendRoute(7, "D"))
	assert.Equal(t, "7;A;5;2000;B;5;2000;C;1;2010;D", m.RouteDescription(7))
}

func TestCreateRoute_AddsRepairsAndAcceptsLegs(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("B", "C", 5, 1990)) // pre-existing, will be repaired

	ok := m.CreateRoute(3,
		[]string{"A", "B", "C"},
		[]uint32{5, 5},
		[]int32{2000, 2005})
	require.True(t, ok)

	assert.Equal(t, "3;A;5;2000;B;5;2005;C", m.RouteDescription(3))
}

func TestCreateRoute_RejectsIllegalLeg(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))

	ok := m.CreateRoute(3,
		[]string{"A", "B"},
		[]uint32{9}, // conflicts with existing length 5
		[]int32{2000})
	assert.False(t, ok)
}

func TestCreateRoute_RejectsDuplicateCities(t *testing.T) {
	m := NewMap()
	ok := m.CreateRoute(3,
		[]string{"A", "B", "A"},
		[]uint32{5, 5},
		[]int32{2000, 2000})
	assert.False(t, ok)
}

func TestRemoveRoute(t *testing.T) {
	m := NewMap()
	require.True(t, m.AddRoad("A", "B", 5, 2000))
	require.True(t, m.NewRoute(1, "A", "B"))

	assert.True(t, m.RemoveRoute(1))
	assert.Equal(t, "", m.RouteDescription(1))
	assert.False(t, m.RemoveRoute(1), "removing an already-empty slot fails")
}

func TestGetRouteDescription_OutOfRangeID(t *testing.T) {
	m := NewMap()
	assert.Equal(t, "", m.RouteDescription(0))
	assert.Equal(t, "", m.RouteDescription(1000))
}

func mustCity(t *testing.T, m *Map, name string) *City {
	t.Helper()
	c, ok := m.graph.City(name)
	require.True(t, ok)
	return c
}
