package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"petfoster-upload/internal/config"
	"petfoster-upload/internal/core/domain"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher is a struct to publish upload events on nats
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects to NATS and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// PublishUploadMerged publishes the event. The message id makes redelivery of the same merge idempotent.
func (n *Publisher) PublishUploadMerged(ctx context.Context, event domain.UploadMergedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msgID := event.UploadID.String() + ":" + event.ChecksumSHA256
	ack, err := n.js.Publish(ctx, n.config.Subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	n.logger.Debug("upload merged event published",
		"upload_id", event.UploadID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
		"duplicate", ack.Duplicate)
	return nil
}

// Close graceful shutdown
func (n *Publisher) Close() error {
	if n.conn != nil {
		if err := n.conn.Drain(); err != nil {
			n.conn.Close()
			return err
		}
	}
	return nil
}
