package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestValidationsTotal_Increments(t *testing.T) {
	c := ValidationsTotal.WithLabelValues("metrics_test_court", OutcomeCompliant)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestCollectorsLint(t *testing.T) {
	problems, err := testutil.CollectAndLint(RoutingAttemptsTotal)
	assert.NoError(t, err)
	assert.Empty(t, problems)
}
