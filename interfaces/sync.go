package interfaces

// Subscriber is invoked when a sibling instance reports a store change. The
// signal carries no payload: subscribers re-read the keys they care about.
type Subscriber func()

// Broadcaster propagates zero-payload "store changed" signals between live
// instances sharing the same persistent store. Delivery order relative to the
// triggering write is not guaranteed and signals may be lost; consumers must
// treat every signal as a hint to re-read.
type Broadcaster interface {
	// Publish announces that one or more store keys changed.
	Publish() error

	// Subscribe registers a subscriber for change signals originating from
	// other instances. An instance never receives its own signals.
	Subscribe(sub Subscriber) (Subscription, error)

	// Close tears down the broadcaster.
	Close() error
}

// Subscription represents an active change-signal subscription
type Subscription interface {
	Unsubscribe() error
}
