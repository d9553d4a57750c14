// Package notifications receives ZGW notifications on a webhook and hands
// them to hooks registered per kanaal and resource.
package notifications

import (
	"path"
	"strings"
	"time"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Notification is the message the notification component delivers to
// subscribed webhooks.
type Notification struct {
	Kanaal       string            `json:"kanaal"              yaml:"kanaal"              validate:"required,max=50"`
	HoofdObject  string            `json:"hoofdObject"         yaml:"hoofdObject"         validate:"required,url"`
	Resource     string            `json:"resource"            yaml:"resource"            validate:"required,max=100"`
	ResourceURL  string            `json:"resourceUrl"         yaml:"resourceUrl"         validate:"required,url"`
	Actie        string            `json:"actie"               yaml:"actie"               validate:"required,max=100"`
	Aanmaakdatum time.Time         `json:"aanmaakdatum"        yaml:"aanmaakdatum"        validate:"required"`
	Kenmerken    map[string]string `json:"kenmerken,omitempty" yaml:"kenmerken,omitempty"`
}

// Common values of Actie.
const (
	ActieCreate  = "create"
	ActieUpdate  = "update"
	ActieDestroy = "destroy"
)

// Validate reports every missing or malformed field.
func (n *Notification) Validate() error {
	return openklant.Validate(n)
}

// ResourceUUID returns the last path segment of ResourceURL.
func (n *Notification) ResourceUUID() string {
	return path.Base(strings.TrimSuffix(n.ResourceURL, "/"))
}
