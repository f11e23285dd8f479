// Wsecho-cert writes a self-signed certificate bundle for wsecho-server.
//
// The bundle holds the certificate and its private key in one PEM file,
// ready to be placed next to the server binary and passed by filename.
//
// Usage:
//
//	wsecho-cert --out websocket.pem [--host name]... [--days N]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/wsecho/internal/certs"
	"github.com/muurk/wsecho/internal/ui"
	"github.com/muurk/wsecho/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.NewPrinter(os.Stderr).Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath string
		hosts   []string
		days    int
		force   bool
	)

	defaults := certs.DefaultParams()

	cmd := &cobra.Command{
		Use:   "wsecho-cert",
		Short: "Generate a self-signed certificate bundle for wsecho-server",
		Long: `Generate a self-signed ECDSA certificate and write it, followed by its
private key, into a single PEM bundle that wsecho-server can load.`,
		Example: `  # Bundle for local testing
  wsecho-cert --out websocket.pem

  # Bundle for a named host, valid for one year
  wsecho-cert --out websocket.pem --host echo.example.com --host 10.0.0.5 --days 365`,
		Version:       version.Full(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
				}
			}

			params := certs.Params{
				Organization: defaults.Organization,
				Hosts:        hosts,
				ValidDays:    days,
			}

			bundle, err := certs.Generate(params)
			if err != nil {
				return err
			}
			if err := bundle.WriteFile(outPath); err != nil {
				return err
			}

			out := ui.NewPrinter(cmd.OutOrStdout())
			out.Line("Wrote %s", outPath)
			out.Line("  subject:   %s", bundle.Certificate.Subject.CommonName)
			out.Line("  hosts:     %v", hosts)
			out.Line("  not after: %s", bundle.Certificate.NotAfter.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "websocket.pem", "Path of the bundle to write")
	cmd.Flags().StringSliceVar(&hosts, "host", defaults.Hosts, "DNS name or IP address for the certificate (repeatable)")
	cmd.Flags().IntVar(&days, "days", defaults.ValidDays, "Validity period in days")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing bundle")

	return cmd
}
