package notifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
)

// ErrSkipped is returned by a channel that has nothing to send for an order,
// such as a missing recipient or unconfigured credentials. The dispatcher
// records it as a skip, not a failure.
var ErrSkipped = errors.New("notification skipped")

// Notifier sends an order notification through one channel. Implementations
// must report missing configuration or recipients as ErrSkipped, not a
// failure.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, order *domain.Order) error
}

// Result records the outcome of one channel's delivery attempt.
type Result struct {
	Channel string
	Skipped bool
	Err     error
}

// Dispatcher fans an order out to all configured channels sequentially. Each
// channel is fully isolated: a failure (or panic) in one never reaches the
// caller or the other channels, only the result slice and the log.
type Dispatcher struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the given channels.
func NewDispatcher(logger *slog.Logger, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{
		notifiers: notifiers,
		logger:    logger,
	}
}

// Dispatch delivers the order to every channel and returns per-channel
// results. It never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, order *domain.Order) []Result {
	results := make([]Result, 0, len(d.notifiers))

	for _, n := range d.notifiers {
		err := d.notifyOne(ctx, n, order)
		switch {
		case errors.Is(err, ErrSkipped):
			d.logger.DebugContext(ctx, "order notification skipped",
				slog.String("channel", n.Name()),
				slog.String("order_id", order.ID),
			)
			results = append(results, Result{Channel: n.Name(), Skipped: true})
		case err != nil:
			d.logger.ErrorContext(ctx, "order notification failed",
				slog.String("channel", n.Name()),
				slog.String("order_id", order.ID),
				slog.String("error", err.Error()),
			)
			results = append(results, Result{Channel: n.Name(), Err: err})
		default:
			d.logger.InfoContext(ctx, "order notification sent",
				slog.String("channel", n.Name()),
				slog.String("order_id", order.ID),
			)
			results = append(results, Result{Channel: n.Name()})
		}
	}

	return results
}

// notifyOne invokes a single channel, converting panics into errors so a
// misbehaving channel cannot take down order placement.
func (d *Dispatcher) notifyOne(ctx context.Context, n Notifier, order *domain.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{channel: n.Name(), value: r}
		}
	}()
	return n.Notify(ctx, order)
}

type panicError struct {
	channel string
	value   any
}

func (e *panicError) Error() string {
	return "notifier " + e.channel + " panicked"
}
