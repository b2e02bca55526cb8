package metrics

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Snapshot_ShouldContainRecordedSeries(t *testing.T) {

	ActionsCounter.WithLabelValues("snapshot_test", OutcomeSuccess).Add(3)
	ReloadDuration.WithLabelValues("snapshot_test").Observe(0.01)

	samples, err := Snapshot()
	require.NoError(t, err)

	action, found := lo.Find(samples, func(s Sample) bool {
		return s.Name == "jobsearch_actions_total" && s.Labels == "action=snapshot_test,outcome=success"
	})
	require.True(t, found)
	assert.Equal(t, 3.0, action.Value)

	reload, found := lo.Find(samples, func(s Sample) bool {
		return s.Name == "jobsearch_list_reload_duration_seconds" && s.Labels == "list=snapshot_test"
	})
	require.True(t, found)
	assert.Equal(t, 1.0, reload.Value)
}
