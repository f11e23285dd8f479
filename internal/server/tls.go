package server

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muurk/wsecho/internal/logging"
	"go.uber.org/zap"
)

// NewTLSConfig builds the server TLS configuration from a combined PEM bundle.
//
// certFile is a bare filename resolved against baseDir. The file must hold
// the certificate chain and the private key together, as produced by
// concatenating a .crt and a .key file. An empty certFile selects plaintext
// mode and returns a nil config with no error.
func NewTLSConfig(baseDir, certFile string) (*tls.Config, error) {
	if certFile == "" {
		logging.Info("No certificate given, serving plaintext WebSocket")
		return nil, nil
	}

	path, err := ResolveCertPath(baseDir, certFile)
	if err != nil {
		return nil, err
	}

	bundle, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Field: "cert_file", Path: path, Err: err}
	}

	cert, err := LoadBundle(bundle)
	if err != nil {
		return nil, &ConfigurationError{Field: "cert_file", Path: path, Err: err}
	}

	logging.Info("TLS configuration created from bundle",
		zap.String("cert_file", path),
		zap.Int("chain_length", len(cert.Certificate)),
	)

	return buildServerTLSConfig(cert), nil
}

// ResolveCertPath joins a certificate filename onto baseDir.
// Only bare filenames are accepted; anything with a directory component
// is a ConfigurationError.
func ResolveCertPath(baseDir, certFile string) (string, error) {
	if certFile == "." || certFile == ".." ||
		strings.ContainsAny(certFile, `/\`) || filepath.Base(certFile) != certFile {
		return "", &ConfigurationError{
			Field: "cert_file",
			Path:  certFile,
			Err:   errors.New("certificate must be a filename next to the executable, not a path"),
		}
	}
	return filepath.Join(baseDir, certFile), nil
}

// LoadBundle parses a PEM bundle containing both certificate blocks and a
// private key block.
func LoadBundle(bundle []byte) (tls.Certificate, error) {
	// X509KeyPair skips blocks of the wrong type on each side, so the same
	// bytes serve as both the certificate and the key input.
	cert, err := tls.X509KeyPair(bundle, bundle)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate bundle: %w", err)
	}
	return cert, nil
}

// ResolveBaseDir returns the directory holding the running executable,
// with symlinks resolved.
func ResolveBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func buildServerTLSConfig(cert tls.Certificate) *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,

		// WebSocket upgrades need HTTP/1.1
		NextProtos: []string{"http/1.1"},
	}
}

// GetTLSInfo returns human-readable TLS configuration information
func GetTLSInfo(config *tls.Config) map[string]interface{} {
	if config == nil {
		return map[string]interface{}{"enabled": false}
	}

	info := map[string]interface{}{
		"enabled":     true,
		"min_version": tls.VersionName(config.MinVersion),
		"alpn":        config.NextProtos,
		"num_certs":   len(config.Certificates),
	}
	if len(config.Certificates) > 0 && config.Certificates[0].Leaf != nil {
		leaf := config.Certificates[0].Leaf
		info["subject"] = leaf.Subject.CommonName
		info["dns_names"] = leaf.DNSNames
		info["not_after"] = leaf.NotAfter
	}
	return info
}
