package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupPrometheus(t *testing.T) {
	promRegistry := SetupPrometheus()
	require.NotNil(t, promRegistry)

	metricFamilies, err := promRegistry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, metricFamilies)
}

func TestSetupPrometheus_CustomCollectors(t *testing.T) {
	poolStatsStandIn := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_acquired_conns",
		Help: "stand-in for an externally provided collector",
	})
	poolStatsStandIn.Set(3)

	promRegistry := SetupPrometheus(poolStatsStandIn)
	require.NotNil(t, promRegistry)

	metricFamilies, err := promRegistry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range metricFamilies {
		if mf.GetName() == "db_pool_acquired_conns" {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestNewManager(t *testing.T) {
	manager := NewTestManager()
	require.NotNil(t, manager)

	assert.NotNil(t, manager.CounterIndexComputed)
	assert.NotNil(t, manager.CounterSnapshotWrites)
	assert.NotNil(t, manager.CounterWorkoutsAdded)
	assert.NotNil(t, manager.HistComputeDuration)
}
