package ports

import "context"

// Notification is a fire-and-forget signal emitted after a successful
// mutation so outer layers (UI refresh, feeds) can react. Delivery failures
// are never surfaced to the caller.
type Notification struct {
	Kind    string
	UserID  string
	Payload map[string]any
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
