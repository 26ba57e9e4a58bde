package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveStore(t *testing.T) {
	before := testutil.ToFloat64(StoreOperations.WithLabelValues("students", "insert", "error"))
	ObserveStore("students", "insert", errors.New("x"))
	ObserveStore("students", "insert", nil)
	require.Equal(t, before+1, testutil.ToFloat64(StoreOperations.WithLabelValues("students", "insert", "error")))
	require.GreaterOrEqual(t, testutil.ToFloat64(StoreOperations.WithLabelValues("students", "insert", "ok")), 1.0)
}

func TestRegisterCollectorsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)
	require.NotPanics(t, func() { RegisterCollectors(reg) })
}
