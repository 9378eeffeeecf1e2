package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_SnapshotReflectsObservations(t *testing.T) {
	m := NewMetrics()
	m.Observe("addRoad", true)
	m.Observe("addRoad", true)
	m.Observe("addRoad", false)

	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snap, `command="addRoad"`)
	assert.Contains(t, snap, `outcome="accepted"`)
	assert.Contains(t, snap, `outcome="rejected"`)
}

func TestMetrics_EmptySnapshotOmitsUnobservedCommandLabels(t *testing.T) {
	m := NewMetrics()
	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, snap, "command=", "a counter vec with no observed labels has nothing to report yet")
}

func TestMetrics_RoutesCreatedCounter(t *testing.T) {
	m := NewMetrics()
	m.ObserveRouteCreated()
	m.ObserveRouteCreated()

	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snap, "routes_created_total 2")
}

func TestMetrics_SegmentsRemovedCounter(t *testing.T) {
	m := NewMetrics()
	m.ObserveSegmentRemoved()

	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snap, "segments_removed_total 1")
}

func TestMetrics_RouteSearchDurationHistogram(t *testing.T) {
	m := NewMetrics()
	m.ObserveRouteSearchDuration(50 * time.Millisecond)

	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snap, "route_search_duration_seconds_count 1")
	assert.Contains(t, snap, "route_search_duration_seconds_sum")
}
