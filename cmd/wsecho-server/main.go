// Wsecho-server is a WebSocket echo server, plaintext or TLS.
//
// Every message a client sends is sent straight back on the same connection.
// Passing a certificate file switches the server to TLS; the file is a PEM
// bundle with the certificate chain and private key, located next to the
// executable.
//
// Usage:
//
//	wsecho-server <hostname/ip> <tcp port> [certificate file]
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wsecho/internal/logging"
	"github.com/muurk/wsecho/internal/server"
	"github.com/muurk/wsecho/internal/ui"
	"github.com/muurk/wsecho/internal/version"
)

const programName = "wsecho-server"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps the outcome to an exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		ui.NewPrinter(stdout).Usage(programName)
		return 1
	}

	ui.NewPrinter(stderr).Error(err)
	return 1
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   programName + " <hostname/ip> <tcp port> [certificate file]",
		Short: "WebSocket echo server",
		Long: `A WebSocket server that sends every received message straight back.

Without a certificate file the server speaks plaintext ws://. With one it
terminates TLS and speaks wss:// only. The certificate file is a single PEM
bundle containing the certificate chain followed by the private key, and is
looked up by filename in the directory holding this executable.`,
		Example: `  # Plaintext on all interfaces
  wsecho-server 0.0.0.0 6080

  # TLS with websocket.pem next to the binary
  wsecho-server 127.0.0.1 6443 websocket.pem --log-level debug`,
		Version:       version.Full(),
		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), ui.NewPrinter(stdout), logLevel, args)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Positionals starting with '-' (a port of -1, say) fail in the flag
	// parser before Args runs; report them the same way as a bad count.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Reason: err.Error()}
	})

	return cmd
}

func runServer(ctx context.Context, out *ui.Printer, logLevel string, args []string) error {
	out.Arguments(append([]string{programName}, args...))

	config, err := parseArgs(args)
	if err != nil {
		return err
	}

	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	srv, err := server.New(config)
	if err != nil {
		return err
	}
	out.Transport(srv.Secure())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Starting WebSocket echo server",
		zap.String("addr", config.Addr()),
		zap.String("cert_file", config.CertFile),
		zap.String("version", version.Full()),
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	logging.Info("Server stopped")
	return nil
}
