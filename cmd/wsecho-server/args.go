package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/wsecho/internal/server"
)

// UsageError reports an invocation that does not match
// <hostname/ip> <tcp port> [certificate file].
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// positionalArgs is the cobra Args validator: two or three positionals.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return &UsageError{Reason: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(args))}
	}
	return nil
}

// parseArgs builds the server configuration from validated positionals.
func parseArgs(args []string) (server.Config, error) {
	port, err := strconv.Atoi(args[1])
	if err != nil || port < 0 || port > 65535 {
		return server.Config{}, &UsageError{Reason: fmt.Sprintf("invalid tcp port %q", args[1])}
	}

	config := server.Config{
		Host: args[0],
		Port: port,
	}
	if len(args) == 3 {
		config.CertFile = args[2]
	}
	return config, nil
}
