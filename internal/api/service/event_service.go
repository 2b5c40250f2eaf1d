package service

import (
	"encoding/json"
	"fmt"
	"time"

	"sftpconfig"
	"sftpconfig/internal/api/models"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Connection lifecycle actions published on the event bus.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// ConnectionEvent is the payload published on
// connector.sftp.config.<id>.<action>. It carries no secret values.
type ConnectionEvent struct {
	ID         uint      `json:"id"`
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}

// EventService publishes connection lifecycle events to NATS for the
// realtime feed. A failed publish is logged, never surfaced to the
// API caller.
type EventService struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

func NewEventService() *EventService {
	logger := sftpconfig.Logger

	conn, err := nats.Connect(sftpconfig.GetConfig().NatsURL)
	if err != nil {
		logger.Warn().Err(err).Msg("NATS unavailable, connection events disabled")
		conn = nil
	}

	return &EventService{conn: conn, logger: logger}
}

// PublishConnectionEvent emits a lifecycle event for a connection.
func (slf *EventService) PublishConnectionEvent(action string, connection models.SftpConnection) {
	if slf.conn == nil {
		return
	}

	event := ConnectionEvent{
		ID:         connection.ID,
		ExternalID: connection.ExternalID,
		Name:       connection.Name,
		Action:     action,
		At:         time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to marshal connection event")
		return
	}

	subject := fmt.Sprintf("connector.sftp.config.%d.%s", connection.ID, action)
	if err := slf.conn.Publish(subject, data); err != nil {
		slf.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish connection event")
	}
}

// Close drains the NATS connection.
func (slf *EventService) Close() {
	if slf.conn != nil {
		if err := slf.conn.Drain(); err != nil {
			slf.logger.Error().Err(err).Msg("Failed to drain NATS connection")
		}
	}
}
