package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"
)

// NATSBridge subscribes to NATS subjects and pushes messages into the Hub.
type NATSBridge struct {
	conn *nats.Conn
	hub  *Hub
}

func NewNATSBridge(natsURL string, hub *Hub) (*NATSBridge, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSBridge{conn: nc, hub: hub}, nil
}

// Subscribe listens for lifecycle events on connector.sftp.config.<id>.<action>
func (b *NATSBridge) Subscribe() error {
	subject := "connector.sftp.config.*.*"
	_, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		connectionID, action, err := parseConfigSubject(msg.Subject)
		if err != nil {
			log.Printf("nats: bad subject %q: %v", msg.Subject, err)
			return
		}

		// Wrap the raw event payload in the outgoing envelope
		envelope := outgoingMsg{
			Type:    "config." + action,
			ConnID:  connectionID,
			Payload: json.RawMessage(msg.Data),
		}
		data, err := json.Marshal(envelope)
		if err != nil {
			log.Printf("nats: marshal envelope: %v", err)
			return
		}

		b.hub.broadcast <- broadcastMsg{connectionID: connectionID, payload: data}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %q: %w", subject, err)
	}

	log.Printf("NATS bridge subscribed to: %s", subject)
	return nil
}

// Close drains the NATS connection.
func (b *NATSBridge) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Printf("nats drain: %v", err)
	}
}

// parseConfigSubject extracts the connection ID and action from
// "connector.sftp.config.<id>.<action>"
func parseConfigSubject(subject string) (uint, string, error) {
	parts := strings.Split(subject, ".")
	if len(parts) != 5 {
		return 0, "", fmt.Errorf("expected 5 parts, got %d", len(parts))
	}
	id, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid connection id %q: %w", parts[3], err)
	}
	return uint(id), parts[4], nil
}
