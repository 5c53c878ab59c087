package chainstream

import "context"

// Subscription is a live new-heads subscription on a node.
type Subscription interface {
	// ID is the identifier the node assigned to the subscription.
	ID() string

	// Headers delivers new heads in the order the node announces them.
	Headers() <-chan Header

	// Err receives at most one value when the subscription breaks. It is
	// closed by Unsubscribe.
	Err() <-chan error

	// Unsubscribe cancels the subscription. It is safe to call more than once.
	Unsubscribe()
}

// Blockchain opens new-heads subscriptions.
type Blockchain interface {
	// SubscribeNewBlocks subscribes to new chain heads. ctx only bounds the
	// subscribe call; the subscription lives until Unsubscribe.
	SubscribeNewBlocks(ctx context.Context) (Subscription, error)
}
