package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/playothello/othello-client/internal/apperror"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusClosed      Status = "closed"
	StatusUnavailable Status = "unavailable"
)

// Session owns one channel and the view state derived from it. It is
// generic over the state type and the message-variant set, so the
// lobby and game engines share one controller. Frames are folded
// strictly one at a time, in arrival order, on the Run goroutine; each
// fold publishes exactly one state transition on Updates.
type Session[S any, M any] struct {
	logger *slog.Logger
	conn   Conn
	decode func([]byte) M
	reduce func(S, M) S

	mu     sync.Mutex
	state  S
	status Status

	updates chan S
}

const updatesBuffer = 64

func New[S any, M any](logger *slog.Logger, conn Conn, decode func([]byte) M, reduce func(S, M) S, initial S) *Session[S, M] {
	return &Session[S, M]{
		logger:  logger.With("component", "session"),
		conn:    conn,
		decode:  decode,
		reduce:  reduce,
		state:   initial,
		status:  StatusActive,
		updates: make(chan S, updatesBuffer),
	}
}

// Run reads frames until the connection goes away. A deliberate Close
// or a canceled context ends it cleanly; anything else marks the
// session unavailable. There is no reconnect here: recovery means
// opening a fresh session.
func (that *Session[S, M]) Run(ctx context.Context) error {
	defer close(that.updates)

	for {
		raw, err := that.conn.Read(ctx)
		if err != nil {
			if that.Status() == StatusClosed || ctx.Err() != nil {
				that.setStatus(StatusClosed)
				return nil
			}

			that.setStatus(StatusUnavailable)
			return fmt.Errorf("session transport failed: %w", err)
		}

		that.updates <- that.fold(raw)
	}
}

func (that *Session[S, M]) fold(raw []byte) S {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = that.reduce(that.state, that.decode(raw))

	return that.state
}

// Updates delivers every state transition in fold order. The channel
// closes when Run returns.
func (that *Session[S, M]) Updates() <-chan S {
	return that.updates
}

// State returns the most recently folded state.
func (that *Session[S, M]) State() S {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *Session[S, M]) Status() Status {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.status
}

func (that *Session[S, M]) setStatus(status Status) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.status = status
}

// Send serializes one command onto the channel, fire-and-forget. Any
// resulting state change arrives later as its own inbound frame.
func (that *Session[S, M]) Send(ctx context.Context, command any) error {
	switch that.Status() {
	case StatusClosed:
		return apperror.ErrSessionClosed
	case StatusUnavailable:
		return apperror.ErrSessionUnavailable
	case StatusActive:
	}

	data, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	if err = that.conn.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	return nil
}

// Close ends the session deliberately. A closed session stays closed;
// Run and any pending read unwind shortly after.
func (that *Session[S, M]) Close() error {
	that.mu.Lock()
	if that.status == StatusActive {
		that.status = StatusClosed
	}
	that.mu.Unlock()

	return that.conn.Close()
}
