// Package mail delivers contact form messages.
package mail

import (
	"context"
	"errors"
)

type Message struct {
	From     string
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Body     string
}

// Receipt acknowledges a delivery.
type Receipt struct {
	Transport string
	MessageID string
}

type Transport interface {
	Name() string
	Send(ctx context.Context, m Message) (Receipt, error)
}

var ErrNotConfigured = errors.New("mail transport not configured")

// Validate checks the fields every transport needs.
func (m Message) Validate() error {
	switch {
	case m.From == "":
		return errors.New("mail: missing sender")
	case m.To == "":
		return errors.New("mail: missing recipient")
	case m.Subject == "":
		return errors.New("mail: missing subject")
	}
	return nil
}
