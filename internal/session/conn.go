package session

import (
	"context"
	"fmt"

	"nhooyr.io/websocket"
)

// Conn is the minimal transport a session needs: ordered text frames
// in both directions plus close. The websocket client implements it;
// tests substitute an in-memory fake.
type Conn interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

type wsConn struct {
	conn *websocket.Conn
}

// Dial opens the websocket for one session address.
func Dial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}

	return &wsConn{conn: conn}, nil
}

func (that *wsConn) Read(ctx context.Context) ([]byte, error) {
	_, data, err := that.conn.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}
	return data, nil
}

func (that *wsConn) Write(ctx context.Context, data []byte) error {
	if err := that.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

func (that *wsConn) Close() error {
	return that.conn.Close(websocket.StatusNormalClosure, "")
}
