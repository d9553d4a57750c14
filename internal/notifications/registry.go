package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Any matches every kanaal or resource when registering a hook.
const Any = "*"

// Hook handles one notification.
type Hook interface {
	Handle(ctx context.Context, n *Notification) error
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, n *Notification) error

// Handle implements Hook.
func (f HookFunc) Handle(ctx context.Context, n *Notification) error {
	return f(ctx, n)
}

// Binding ties a hook to a kanaal and resource. Name appears in errors and logs.
type Binding struct {
	Name     string
	Kanaal   string
	Resource string
	Hook     Hook
}

func (b Binding) matches(n *Notification) bool {
	return (b.Kanaal == Any || b.Kanaal == n.Kanaal) &&
		(b.Resource == Any || b.Resource == n.Resource)
}

// Registry holds the bindings consulted by Dispatch. Hooks run in
// registration order.
type Registry struct {
	mu       sync.RWMutex
	bindings []Binding
	logger   openklant.Logger
}

// NewRegistry creates an empty registry. logger may be nil.
func NewRegistry(logger openklant.Logger) *Registry {
	if logger == nil {
		logger = openklant.NoopLogger{}
	}

	return &Registry{logger: logger}
}

// Register adds hook for kanaal and resource, either of which may be Any.
func (r *Registry) Register(name, kanaal, resource string, hook Hook) {
	r.RegisterAll(Binding{Name: name, Kanaal: kanaal, Resource: resource, Hook: hook})
}

// RegisterAll adds bindings in order.
func (r *Registry) RegisterAll(bindings ...Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings = append(r.bindings, bindings...)
}

// Dispatch runs every hook matching n and returns how many ran. A failing
// hook does not stop the others; all failures come back as one
// *openklant.MultiError.
func (r *Registry) Dispatch(ctx context.Context, n *Notification) (int, error) {
	r.mu.RLock()
	bindings := make([]Binding, 0, len(r.bindings))

	for _, binding := range r.bindings {
		if binding.matches(n) {
			bindings = append(bindings, binding)
		}
	}
	r.mu.RUnlock()

	multi := &openklant.MultiError{}

	for _, binding := range bindings {
		err := binding.Hook.Handle(ctx, n)
		if err != nil {
			r.logger.Error("Notification hook failed", map[string]interface{}{
				"hook":     binding.Name,
				"kanaal":   n.Kanaal,
				"resource": n.Resource,
				"error":    err.Error(),
			})

			multi.Errors = append(multi.Errors, fmt.Errorf("hook %s: %w", binding.Name, err))
		}
	}

	return len(bindings), multi.ErrorOrNil()
}
