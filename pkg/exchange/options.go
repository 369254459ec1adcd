package exchange

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Option is a per-call option. An option left unset is omitted from the
// outgoing parameters entirely.
type Option func(*Options)

// Options holds the optional parameters of a single call.
type Options struct {
	ReceiveWindow time.Duration
	Limit         int
	TradeID       int64
	OrderID       int64
	StartTime     time.Time
	EndTime       time.Time
	Price         *apd.Decimal
}

// WithReceiveWindow sets the request staleness tolerance the server applies
// for replay protection. Transmitted in milliseconds.
func WithReceiveWindow(window time.Duration) Option {
	return func(o *Options) {
		o.ReceiveWindow = window
	}
}

// WithLimit caps the number of rows returned.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithTradeID returns trades with id >= tradeID instead of the most recent.
func WithTradeID(tradeID int64) Option {
	return func(o *Options) {
		o.TradeID = tradeID
	}
}

// WithOrderID returns orders with id >= orderID instead of the most recent.
func WithOrderID(orderID int64) Option {
	return func(o *Options) {
		o.OrderID = orderID
	}
}

// WithTimeRange restricts results to the given window. Transmitted as epoch
// milliseconds.
func WithTimeRange(start, end time.Time) Option {
	return func(o *Options) {
		o.StartTime = start
		o.EndTime = end
	}
}

// WithPrice sets the order price. Mandatory for limit orders; a market order
// placed without it carries no price key at all.
func WithPrice(price apd.Decimal) Option {
	return func(o *Options) {
		o.Price = &price
	}
}

// ApplyOptions folds the given options into an Options value.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
