package notifications

import "errors"

// ErrInvalidWebhookURL is returned by NewSender for a URL without scheme or host.
var ErrInvalidWebhookURL = errors.New("webhook URL must be absolute")
