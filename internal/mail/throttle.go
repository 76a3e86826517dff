package mail

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrThrottled is returned when the per-minute budget is spent.
var ErrThrottled = errors.New("mail throttled")

// Throttled caps outbound mail to perMinute messages, with a burst of the same size.
// Send never waits: past the budget it fails at once so request handlers are not held open.
type Throttled struct {
	next    Transport
	limiter *rate.Limiter
}

func NewThrottled(next Transport, perMinute int) *Throttled {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

func (t *Throttled) Name() string { return t.next.Name() }

func (t *Throttled) Send(ctx context.Context, m Message) (Receipt, error) {
	if !t.limiter.Allow() {
		return Receipt{}, ErrThrottled
	}
	return t.next.Send(ctx, m)
}
