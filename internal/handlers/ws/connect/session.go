package connect

import (
	"context"

	"github.com/coder/websocket"
)

// wsSession adapts a websocket connection to the registry session
// contract.
type wsSession struct {
	conn *websocket.Conn
}

func (s *wsSession) Write(ctx context.Context, payload []byte) error {
	return s.conn.Write(ctx, websocket.MessageText, payload)
}

func (s *wsSession) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *wsSession) Close(reason string) error {
	return s.conn.Close(websocket.StatusNormalClosure, reason)
}
