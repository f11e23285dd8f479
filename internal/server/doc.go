// Package server implements a WebSocket echo server with optional TLS.
//
// Every message a client sends is written back on the same connection with
// the same opcode (text or binary) and the same payload, in the order it was
// received. Connections are independent: each runs on its own goroutine and
// nothing but the read-only TLS configuration is shared between them.
//
// # Transport Modes
//
// The mode is fixed when the Server is created:
//   - No certificate file: plaintext, clients dial ws://host:port/
//   - Certificate file: TLS, clients dial wss://host:port/ and plain
//     upgrade attempts fail at the TLS layer
//
// The certificate file is a single PEM bundle holding the certificate chain
// and the private key. It is named by filename only and looked up in the
// directory of the running executable (or Config.BaseDir).
//
// # Usage Example
//
//	srv, err := server.New(server.Config{
//	    Host:     "127.0.0.1",
//	    Port:     6443,
//	    CertFile: "websocket.pem",
//	})
//	if err != nil {
//	    return err // *ConfigurationError
//	}
//
//	// Start blocks until ctx is cancelled
//	if err := srv.Start(ctx); err != nil {
//	    return err // *BindError or a serve failure
//	}
//
// # Errors
//
// ConfigurationError and BindError are fatal at startup. ConnectionError is
// per connection; it is logged and the server keeps accepting.
//
// # Limitations
//
// Upgraded connections have no idle timeout. A silent client keeps its
// connection open until it, or the process, goes away.
package server
