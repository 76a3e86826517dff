package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"guesthouse/internal/mail"
	"guesthouse/internal/metrics"
	"guesthouse/internal/validate"
)

var ErrInvalidContact = errors.New("invalid contact form")

const maxContactMessage = 5000

type ContactForm struct {
	FirstName string
	LastName  string
	Email     string
	Dates     string
	Message   string
	Lang      string
}

type ContactService struct {
	Transport mail.Transport
	From      string
	FromName  string
	To        string
}

// Compose validates f and builds the owner notification. The visitor's address is the reply-to.
func (s *ContactService) Compose(f ContactForm) (mail.Message, error) {
	first := strings.TrimSpace(f.FirstName)
	last := strings.TrimSpace(f.LastName)
	if first == "" {
		return mail.Message{}, fmt.Errorf("%w: first name required", ErrInvalidContact)
	}
	email, ok := validate.Email(f.Email)
	if !ok {
		return mail.Message{}, fmt.Errorf("%w: email", ErrInvalidContact)
	}
	if utf8.RuneCountInString(f.Message) > maxContactMessage {
		return mail.Message{}, fmt.Errorf("%w: message too long", ErrInvalidContact)
	}

	name := strings.TrimSpace(first + " " + last)
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", email)
	if d := strings.TrimSpace(f.Dates); d != "" {
		fmt.Fprintf(&b, "Desired dates: %s\n", d)
	}
	if f.Lang != "" {
		fmt.Fprintf(&b, "Language: %s\n", f.Lang)
	}
	b.WriteString("\nMessage:\n")
	b.WriteString(strings.TrimSpace(f.Message))
	b.WriteString("\n")

	return mail.Message{
		From:     s.From,
		FromName: s.FromName,
		To:       s.To,
		ReplyTo:  email,
		Subject:  fmt.Sprintf("Contact form — %s (%s)", name, email),
		Body:     b.String(),
	}, nil
}

func (s *ContactService) Send(ctx context.Context, f ContactForm) (mail.Receipt, error) {
	m, err := s.Compose(f)
	if err != nil {
		return mail.Receipt{}, err
	}
	rec, err := s.Transport.Send(ctx, m)
	metrics.ObserveMail(s.Transport.Name(), err)
	if err != nil {
		return mail.Receipt{}, fmt.Errorf("send contact mail: %w", err)
	}
	return rec, nil
}
