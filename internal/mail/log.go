package mail

import (
	"context"

	"github.com/google/uuid"

	applog "guesthouse/internal/log"
)

// LogTransport writes messages to the log instead of delivering them. Used in development.
type LogTransport struct{}

func (LogTransport) Name() string { return "log" }

func (LogTransport) Send(_ context.Context, m Message) (Receipt, error) {
	if err := m.Validate(); err != nil {
		return Receipt{}, err
	}
	id := uuid.NewString()
	applog.L().Info().
		Str("action", "mail.log").
		Str("message_id", id).
		Str("to", m.To).
		Str("reply_to", m.ReplyTo).
		Str("subject", m.Subject).
		Str("body", m.Body).
		Send()
	return Receipt{Transport: "log", MessageID: id}, nil
}
