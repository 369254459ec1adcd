package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lxzan/gws"
	"github.com/rs/zerolog"

	"nbx/pkg/core"
)

// WSConfig holds configuration options for a websocket client.
type WSConfig struct {
	// URL is the websocket endpoint to connect to.
	URL string
	// PingInterval is the duration between keepalive pings.
	PingInterval time.Duration
	// PongWait is the maximum time to wait for a pong before the
	// connection is considered dead.
	PongWait time.Duration
}

// WSHandlers is the caller-supplied sink for a websocket connection.
// Raw text frames are forwarded verbatim to OnMessage; transport errors go to
// OnError; OnClose fires exactly once when the connection ends, with the
// closure cause (nil for a clean close). Nil handlers are skipped.
type WSHandlers struct {
	OnMessage func([]byte)
	OnError   func(error)
	OnClose   func(error)
}

// WSClient manages a single websocket connection. One client serves one
// stream: there is no subscribe/unsubscribe protocol, no buffering and no
// reconnection. Callers needing concurrency run Run in their own goroutine.
type WSClient struct {
	config   WSConfig
	handlers WSHandlers
	state    *State
	logger   zerolog.Logger

	mu       sync.RWMutex
	conn     *gws.Conn
	stopChan chan struct{}
	stopOnce sync.Once
	closeErr error
}

type wsEventHandler struct {
	client *WSClient
}

// NewWSClient creates a new websocket client with the given configuration.
// Default values are applied for any zero-valued configuration fields.
func NewWSClient(config WSConfig, handlers WSHandlers) *WSClient {
	if config.PingInterval == 0 {
		config.PingInterval = 10 * time.Second
	}
	if config.PongWait == 0 {
		config.PongWait = 20 * time.Second
	}

	client := &WSClient{
		config:   config,
		handlers: handlers,
		state:    &State{},
		stopChan: make(chan struct{}),
		logger:   zerolog.Nop(),
	}
	client.state.Store(StateDisconnected)
	return client
}

// SetLogger configures the logger for the websocket client.
func (c *WSClient) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

func (h *wsEventHandler) OnOpen(socket *gws.Conn) {
	h.client.state.Store(StateConnected)
	h.client.logger.Info().
		Str("url", h.client.config.URL).
		Msg("websocket connected")
	_ = socket.SetDeadline(time.Now().Add(h.client.config.PingInterval + h.client.config.PongWait))
}

func (h *wsEventHandler) OnClose(socket *gws.Conn, err error) {
	h.client.state.Store(StateClosed)

	h.client.mu.Lock()
	h.client.closeErr = err
	h.client.mu.Unlock()

	h.client.logger.Warn().
		Err(err).
		Str("url", h.client.config.URL).
		Msg("websocket disconnected")

	if h.client.handlers.OnClose != nil {
		h.client.handlers.OnClose(err)
	}
}

func (h *wsEventHandler) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.client.config.PingInterval + h.client.config.PongWait))
	_ = socket.WritePong(nil)
}

func (h *wsEventHandler) OnPong(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.client.config.PingInterval + h.client.config.PongWait))
}

func (h *wsEventHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	data := message.Bytes()
	if len(data) == 0 {
		return
	}

	h.client.logger.Debug().Int("size", len(data)).Msg("received websocket frame")

	if h.client.handlers.OnMessage != nil {
		frame := make([]byte, len(data))
		copy(frame, data)
		h.client.handlers.OnMessage(frame)
	}
}

// Run dials the configured URL and blocks in the read loop until the
// connection closes, the context is canceled, or Close is called.
// Run-to-completion semantics: the invoking goroutine is occupied for the
// lifetime of the stream.
func (c *WSClient) Run(ctx context.Context) error {
	if !c.state.CompareAndSwap(StateDisconnected, StateConnecting) {
		return fmt.Errorf("invalid state for connect: %s", c.state.Load())
	}

	socket, _, err := gws.NewClient(&wsEventHandler{client: c}, &gws.ClientOption{
		Addr: c.config.URL,
	})
	if err != nil {
		c.state.Store(StateDisconnected)
		if c.handlers.OnError != nil {
			c.handlers.OnError(err)
		}
		return fmt.Errorf("connect websocket: %w", err)
	}

	c.mu.Lock()
	c.conn = socket
	c.mu.Unlock()

	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = socket.NetConn().Close()
		case <-c.stopChan:
			_ = socket.NetConn().Close()
		case <-watchDone:
		}
	}()

	socket.ReadLoop()
	close(watchDone)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closeErr
}

// Close shuts down the connection. It is safe to call concurrently with Run.
func (c *WSClient) Close() error {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.NetConn().Close()
	}
	c.state.Store(StateClosed)
	return nil
}

// State returns the current connection state of the websocket.
func (c *WSClient) State() ConnState {
	return c.state.Load()
}

// IsConnected returns true if the websocket has an active connection.
func (c *WSClient) IsConnected() bool {
	return c.state.Load() == StateConnected
}

// WriteMessage sends raw bytes over the websocket connection.
// It returns an error if the connection is not active.
func (c *WSClient) WriteMessage(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.state.Load() != StateConnected {
		return core.ErrNotConnected
	}

	return c.conn.WriteMessage(gws.OpcodeText, data)
}
