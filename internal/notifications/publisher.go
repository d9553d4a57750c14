package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is the first token of every published subject.
const DefaultSubjectPrefix = "openklant"

// Publisher is the part of *nats.Conn the publisher needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher is a Hook that forwards notifications to NATS on the subject
// <prefix>.<kanaal>.<resource>.<actie>.
type NATSPublisher struct {
	conn   Publisher
	prefix string
}

// NewNATSPublisher publishes through conn. An empty prefix means
// DefaultSubjectPrefix.
func NewNATSPublisher(conn Publisher, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &NATSPublisher{conn: conn, prefix: prefix}
}

// ConnectNATS dials url and keeps reconnecting for the life of the process.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// Handle implements Hook.
func (p *NATSPublisher) Handle(ctx context.Context, n *Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	subject := p.Subject(n)

	err = p.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Subject returns the subject n is published on.
func (p *NATSPublisher) Subject(n *Notification) string {
	return strings.Join([]string{p.prefix, token(n.Kanaal), token(n.Resource), token(n.Actie)}, ".")
}

// token makes s usable as a single subject token.
func token(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		default:
			return r
		}
	}, s)
}
