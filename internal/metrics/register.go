// Package metrics holds helpers shared by the prometheus instrumentation of
// the transport and the notification webhook.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Register registers collector on registerer. When an identical collector is
// already registered, that one is returned so several clients can share a
// registry. Any other registration failure panics, like MustRegister.
func Register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	err := registerer.Register(collector)
	if err == nil {
		return collector
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing
		}
	}

	panic(err)
}
