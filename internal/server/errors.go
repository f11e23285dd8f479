package server

import "fmt"

// ConfigurationError reports a startup configuration problem, such as a
// certificate bundle that is missing, unreadable or malformed.
// The server never binds its socket after one of these.
type ConfigurationError struct {
	// Field is the configuration value at fault ("port", "cert_file")
	Field string
	// Path is the resolved file path, when a file was involved
	Path string
	// Underlying error
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// BindError reports that the listening socket could not be created.
type BindError struct {
	// Addr is the host:port that failed to bind
	Addr string
	// Underlying error
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ConnectionError reports a failure on a single client connection.
// It is logged and absorbed; the listener keeps accepting.
type ConnectionError struct {
	// RemoteAddr identifies the client
	RemoteAddr string
	// Op is the phase that failed ("upgrade", "read", "write")
	Op string
	// Underlying error
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection %s: %s failed: %v", e.RemoteAddr, e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
