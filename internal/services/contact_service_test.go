package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/internal/mail"
	"guesthouse/internal/services"
)

type captureTransport struct {
	sent []mail.Message
	err  error
}

func (c *captureTransport) Name() string { return "capture" }

func (c *captureTransport) Send(_ context.Context, m mail.Message) (mail.Receipt, error) {
	if c.err != nil {
		return mail.Receipt{}, c.err
	}
	c.sent = append(c.sent, m)
	return mail.Receipt{Transport: "capture", MessageID: "m1"}, nil
}

func contactSvc(tr mail.Transport) *services.ContactService {
	return &services.ContactService{Transport: tr, From: "site@guesthouse.test", To: "owner@guesthouse.test"}
}

func TestContactBodyCarriesVisitorDetails(t *testing.T) {
	tr := &captureTransport{}
	rec, err := contactSvc(tr).Send(context.Background(), services.ContactForm{
		FirstName: "Jan", LastName: "de Vries", Email: "jan@example.com",
		Dates: "12-14 juli", Message: "Is de tuinkamer vrij?", Lang: "nl",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", rec.MessageID)
	require.Len(t, tr.sent, 1)

	m := tr.sent[0]
	assert.Contains(t, m.Body, "Jan")
	assert.Contains(t, m.Body, "de Vries")
	assert.Contains(t, m.Body, "jan@example.com")
	assert.Contains(t, m.Body, "12-14 juli")
	assert.Contains(t, m.Body, "Is de tuinkamer vrij?")
	assert.Equal(t, "Contact form — Jan de Vries (jan@example.com)", m.Subject)
	assert.Equal(t, "jan@example.com", m.ReplyTo)
	assert.Equal(t, "site@guesthouse.test", m.From)
	assert.Equal(t, "owner@guesthouse.test", m.To)
}

func TestContactValidation(t *testing.T) {
	svc := contactSvc(&captureTransport{})
	cases := []services.ContactForm{
		{FirstName: "", Email: "jan@example.com"},
		{FirstName: "Jan", Email: "not-an-email"},
		{FirstName: "Jan", Email: "jan@example.com", Message: strings.Repeat("x", 5001)},
	}
	for _, f := range cases {
		_, err := svc.Compose(f)
		assert.ErrorIs(t, err, services.ErrInvalidContact)
	}
}

func TestContactTransportFailure(t *testing.T) {
	boom := errors.New("smtp 554")
	_, err := contactSvc(&captureTransport{err: boom}).Send(context.Background(), services.ContactForm{
		FirstName: "Jan", Email: "jan@example.com", Message: "hi",
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, services.ErrInvalidContact)
}
