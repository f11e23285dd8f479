// Package logging provides structured logging for the echo server.
//
// It wraps a process-wide zap logger with level helpers and a few
// event-shaped functions used by the server package:
//
//	logging.LogConnection(remoteAddr, "websocket_upgraded")
//	logging.LogTLSHandshake(remoteAddr, state.Version, state.CipherSuite, state.ServerName)
//	logging.LogWebSocketMessage(remoteAddr, "echoed", msgType, payload)
//
// Initialize the logger once at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Before Initialize is called all functions write to a no-op logger, which
// keeps library code and tests quiet.
//
// Logs are written to stdout with the console encoder:
//
//	2026-10-14T10:30:45.123Z  INFO  Connection event  {"remote_addr": "127.0.0.1:53122", "event": "websocket_upgraded"}
package logging
