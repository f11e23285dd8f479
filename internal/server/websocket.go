package server

import (
	"errors"
	"net"

	"github.com/gorilla/websocket"
	"github.com/muurk/wsecho/internal/logging"
	"go.uber.org/zap"
)

// HandleEchoConnection runs the echo loop for one upgraded connection.
//
// Every message is written back with the opcode and payload it arrived with,
// in arrival order, one message out per message in. Pings and close frames
// are answered by the library's default handlers. The loop ends when the
// peer closes or the transport fails; a clean close returns nil and anything
// else is returned as a *ConnectionError. The connection is closed on return.
func HandleEchoConnection(conn *websocket.Conn, remoteAddr string) error {
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "websocket_closed")
	}()

	messageNum := 0

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if isPeerClose(err) {
				logging.Info("Connection closed by peer",
					zap.String("remote_addr", remoteAddr),
					zap.Int("messages_echoed", messageNum),
				)
				return nil
			}
			return &ConnectionError{RemoteAddr: remoteAddr, Op: "read", Err: err}
		}

		logging.LogWebSocketMessage(remoteAddr, "received", messageType, payload)

		if err := conn.WriteMessage(messageType, payload); err != nil {
			return &ConnectionError{RemoteAddr: remoteAddr, Op: "write", Err: err}
		}

		messageNum++
		logging.LogWebSocketMessage(remoteAddr, "echoed", messageType, payload)
	}
}

// isPeerClose reports whether err is an orderly close initiated by the client.
func isPeerClose(err error) bool {
	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}
