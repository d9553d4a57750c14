package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openklant",
		Name:      "test_total",
		Help:      "Test counter.",
	}, []string{"kind"})
}

func TestRegister_ReusesExisting(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	first := Register(registry, newCounter())
	second := Register(registry, newCounter())

	assert.Same(t, first, second)
}

func TestRegister_PanicsOnConflict(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	Register(registry, newCounter())

	conflicting := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openklant",
		Name:      "test_total",
		Help:      "Test counter.",
	}, []string{"other"})

	assert.Panics(t, func() { Register(registry, conflicting) })
}
