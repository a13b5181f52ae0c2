package repository

import "context"

// NotifierRepository defines the contract for alert delivery.
type NotifierRepository interface {
	// Send delivers one alert message. An unconfigured notifier returns nil
	// without performing any network call.
	Send(ctx context.Context, text string) error
}
