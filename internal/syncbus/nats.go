package syncbus

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// NATSConfig holds the connection settings for the NATS-backed bus
type NATSConfig struct {
	ServerURL  string
	Subject    string
	InstanceID string
}

// NATSBus broadcasts change signals over a NATS subject. The message body
// carries only the sender's instance ID so an instance can drop its own
// signals; subscribers treat the signal as payload-free and re-read the
// store.
type NATSBus struct {
	conn       *nats.Conn
	config     NATSConfig
	instanceID string
	logger     *internal.Logger
}

// NewNATSBus connects to the NATS server and returns a ready bus
func NewNATSBus(config NATSConfig) (*NATSBus, error) {
	logger := internal.GetLogger()

	if config.InstanceID == "" {
		config.InstanceID = internal.GenerateInstanceID()
	}

	opts := []nats.Option{
		nats.Name(config.InstanceID),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error(internal.ComponentSync, "NATS error: %v", err)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(internal.ComponentSync, "Disconnected from NATS server: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			// Signals sent while disconnected are gone; subscribers
			// re-read on the next signal, so nothing to replay.
			logger.Info(internal.ComponentSync, "Reconnected to NATS server")
		}),
	}

	conn, err := nats.Connect(config.ServerURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	logger.Info(internal.ComponentSync, "Connected to NATS server as %s", config.InstanceID)

	return &NATSBus{
		conn:       conn,
		config:     config,
		instanceID: config.InstanceID,
		logger:     logger,
	}, nil
}

// Publish announces a store change to sibling instances
func (b *NATSBus) Publish() error {
	if err := b.conn.Publish(b.config.Subject, []byte(b.instanceID)); err != nil {
		return fmt.Errorf("failed to publish change signal: %w", err)
	}
	return nil
}

// Subscribe registers a subscriber for change signals from siblings
func (b *NATSBus) Subscribe(sub interfaces.Subscriber) (interfaces.Subscription, error) {
	natsSub, err := b.conn.Subscribe(b.config.Subject, func(msg *nats.Msg) {
		if string(msg.Data) == b.instanceID {
			return
		}
		sub()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %q: %w", b.config.Subject, err)
	}

	return &natsSubscription{sub: natsSub}, nil
}

// Close drains and closes the connection
func (b *NATSBus) Close() error {
	if b.conn != nil {
		b.conn.Close()
	}
	return nil
}

// InstanceID returns this bus's instance identity
func (b *NATSBus) InstanceID() string {
	return b.instanceID
}

type natsSubscription struct {
	sub *nats.Subscription
}

func (s *natsSubscription) Unsubscribe() error {
	return s.sub.Unsubscribe()
}
