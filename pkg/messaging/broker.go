package messaging

import "context"

// Broker is the transport the sync worker publishes ledger snapshots through.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}
