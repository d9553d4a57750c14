package notifications

import (
	"context"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Kanalen published by Open Klant.
const (
	KanaalActoren          = "actoren"
	KanaalKlantcontacten   = "klantcontacten"
	KanaalInternetaken     = "internetaken"
	KanaalPartijen         = "partijen"
	KanaalDigitaleAdressen = "digitaleadressen"
)

// DefaultHooks is the static hook list wired at startup: every notification
// is logged, and those about klantcontacten, interne taken and partijen are
// forwarded to publisher when it is not nil.
func DefaultHooks(publisher Hook, logger openklant.Logger) []Binding {
	if logger == nil {
		logger = openklant.NoopLogger{}
	}

	bindings := []Binding{
		{Name: "log", Kanaal: Any, Resource: Any, Hook: LogHook(logger)},
	}

	if publisher == nil {
		return bindings
	}

	for _, kanaal := range []string{KanaalKlantcontacten, KanaalInternetaken, KanaalPartijen} {
		bindings = append(bindings, Binding{Name: "publish-" + kanaal, Kanaal: kanaal, Resource: Any, Hook: publisher})
	}

	return bindings
}

// LogHook logs every notification at info level.
func LogHook(logger openklant.Logger) Hook {
	return HookFunc(func(_ context.Context, n *Notification) error {
		logger.Info("Notification received", map[string]interface{}{
			"kanaal":       n.Kanaal,
			"resource":     n.Resource,
			"actie":        n.Actie,
			"resourceUuid": n.ResourceUUID(),
		})

		return nil
	})
}
