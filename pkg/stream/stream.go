// Package stream implements the websocket streaming subscriber. Each endpoint
// descriptor maps to one fixed path on the streaming host; one connection
// serves one stream, with no subscribe messages, no buffering and no
// reconnection. Raw frames are forwarded verbatim to the caller's handlers.
package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"nbx/internal/transport"
	"nbx/pkg/core"
)

// Endpoint identifies a fixed streaming endpoint on the exchange.
type Endpoint int

// Streaming endpoints. One websocket path per descriptor.
const (
	// EndpointTrades streams executed trades.
	EndpointTrades Endpoint = iota
	// EndpointKline1m through EndpointKline1w stream candlestick updates at
	// the named interval.
	EndpointKline1m
	EndpointKline5m
	EndpointKline15m
	EndpointKline1h
	EndpointKline4h
	EndpointKline12h
	EndpointKline1d
	EndpointKline1w
	// EndpointDayTicker streams 24-hour rolling window statistics.
	EndpointDayTicker
	// EndpointDepth streams order book updates.
	EndpointDepth
)

// Path returns the websocket path for the endpoint, relative to the
// streaming host.
func (e Endpoint) Path() string {
	return [...]string{
		"/ws/v0/stream/trades",
		"/ws/v0/ticker/kline_1m",
		"/ws/v0/ticker/kline_5m",
		"/ws/v0/ticker/kline_15m",
		"/ws/v0/ticker/kline_1h",
		"/ws/v0/ticker/kline_4h",
		"/ws/v0/ticker/kline_12h",
		"/ws/v0/ticker/kline_1d",
		"/ws/v0/ticker/kline_1w",
		"/ws/v0/ticker/day",
		"/ws/v0/ticker/depth",
	}[e]
}

// String returns a readable name for the endpoint.
func (e Endpoint) String() string {
	return [...]string{
		"trades",
		"kline_1m",
		"kline_5m",
		"kline_15m",
		"kline_1h",
		"kline_4h",
		"kline_12h",
		"kline_1d",
		"kline_1w",
		"day_ticker",
		"depth",
	}[e]
}

// KlineEndpoint returns the kline streaming endpoint for the given interval.
func KlineEndpoint(interval core.Interval) Endpoint {
	return [...]Endpoint{
		core.OneMinute:      EndpointKline1m,
		core.FiveMinutes:    EndpointKline5m,
		core.FifteenMinutes: EndpointKline15m,
		core.OneHour:        EndpointKline1h,
		core.FourHours:      EndpointKline4h,
		core.TwelveHours:    EndpointKline12h,
		core.OneDay:         EndpointKline1d,
		core.OneWeek:        EndpointKline1w,
	}[interval]
}

// Handlers is the caller-supplied sink for one stream. Any handler left nil
// is replaced by a logging default bound to the subscriber's logger; defaults
// are injected per subscriber, never shared process-wide.
type Handlers struct {
	// OnMessage receives each raw text frame verbatim.
	OnMessage func([]byte)
	// OnError receives transport errors.
	OnError func(error)
	// OnClose fires once when the connection ends, with the closure cause.
	OnClose func(error)
}

// SubscriberOption is a functional option for configuring the Subscriber.
type SubscriberOption func(*Subscriber)

// WithLogger returns an option that sets the subscriber's logger.
func WithLogger(l zerolog.Logger) SubscriberOption {
	return func(s *Subscriber) {
		s.logger = l
	}
}

// WithWSRoot returns an option that overrides the streaming host.
func WithWSRoot(root string) SubscriberOption {
	return func(s *Subscriber) {
		s.wsRoot = root
	}
}

// Subscriber holds one long-lived connection to a single streaming endpoint.
type Subscriber struct {
	endpoint Endpoint
	handlers Handlers
	wsRoot   string
	logger   zerolog.Logger
	client   *transport.WSClient
}

// NewSubscriber creates a subscriber for the given endpoint with the given
// handlers.
func NewSubscriber(endpoint Endpoint, handlers Handlers, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		endpoint: endpoint,
		handlers: handlers,
		wsRoot:   core.DefaultWSRoot,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyDefaults()

	s.client = transport.NewWSClient(transport.WSConfig{
		URL: s.wsRoot + endpoint.Path(),
	}, transport.WSHandlers{
		OnMessage: s.handlers.OnMessage,
		OnError:   s.handlers.OnError,
		OnClose:   s.handlers.OnClose,
	})
	s.client.SetLogger(s.logger)
	return s
}

func (s *Subscriber) applyDefaults() {
	if s.handlers.OnMessage == nil {
		s.handlers.OnMessage = func(data []byte) {
			s.logger.Info().
				Str("endpoint", s.endpoint.String()).
				Str("frame", string(data)).
				Msg("stream message")
		}
	}
	if s.handlers.OnError == nil {
		s.handlers.OnError = func(err error) {
			s.logger.Error().Err(err).
				Str("endpoint", s.endpoint.String()).
				Msg("stream error")
		}
	}
	if s.handlers.OnClose == nil {
		s.handlers.OnClose = func(err error) {
			s.logger.Info().Err(err).
				Str("endpoint", s.endpoint.String()).
				Msg("stream closed")
		}
	}
}

// URL returns the full websocket URL the subscriber connects to.
func (s *Subscriber) URL() string {
	return s.wsRoot + s.endpoint.Path()
}

// Run dials the streaming endpoint and blocks, forwarding frames to the
// handlers until the connection closes or the context is canceled.
// Callers needing concurrency run it in their own goroutine.
func (s *Subscriber) Run(ctx context.Context) error {
	if err := s.client.Run(ctx); err != nil {
		return fmt.Errorf("stream %s: %w", s.endpoint, err)
	}
	return nil
}

// Close shuts down the connection.
func (s *Subscriber) Close() error {
	return s.client.Close()
}

// IsConnected returns true while the subscriber holds an active connection.
func (s *Subscriber) IsConnected() bool {
	return s.client.IsConnected()
}
