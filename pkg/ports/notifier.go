package ports

import (
	"context"

	"github.com/aretw0/motif/pkg/domain"
)

// Notifier delivers user-facing notifications from the execution host to
// whoever is watching (the editing surface, a CLI, a log).
//
// Delivery is fire-and-forget: the host never waits on the outcome, so
// implementations must not block on slow consumers.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n domain.Notification)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) {
	f(ctx, n)
}
