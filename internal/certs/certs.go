// Package certs generates self-signed certificate bundles for the echo server.
//
// A bundle is a single PEM file holding the certificate followed by its
// PKCS#8 private key, which is the format the server loads.
package certs

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"
)

// Params holds parameters for generating a certificate bundle.
type Params struct {
	// CommonName is the CN field (default: first host, or "localhost")
	CommonName string
	// Organization is the O field
	Organization string
	// Hosts are DNS names or IP addresses placed in the SANs
	Hosts []string
	// ValidDays is certificate validity in days
	ValidDays int
}

// DefaultParams returns Params for a local development certificate.
func DefaultParams() Params {
	return Params{
		CommonName:   "localhost",
		Organization: "wsecho",
		Hosts:        []string{"localhost", "127.0.0.1", "::1"},
		ValidDays:    3650,
	}
}

// Bundle is a generated certificate and key.
type Bundle struct {
	// CertPEM is the certificate in PEM format
	CertPEM []byte
	// KeyPEM is the private key in PKCS#8 PEM format
	KeyPEM []byte
	// Certificate is the parsed x509 certificate
	Certificate *x509.Certificate
}

// PEM returns the certificate and key concatenated into one bundle.
func (b *Bundle) PEM() []byte {
	var buf bytes.Buffer
	buf.Write(b.CertPEM)
	buf.Write(b.KeyPEM)
	return buf.Bytes()
}

// Generate creates a self-signed ECDSA P-256 server certificate.
func Generate(params Params) (*Bundle, error) {
	if len(params.Hosts) == 0 {
		return nil, fmt.Errorf("at least one host is required")
	}
	if params.ValidDays <= 0 {
		return nil, fmt.Errorf("validity must be positive, got %d days", params.ValidDays)
	}
	if params.CommonName == "" {
		params.CommonName = params.Hosts[0]
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	serialLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, serialLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	notBefore := time.Now().Add(-1 * time.Hour)
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName:   params.CommonName,
			Organization: nonEmpty(params.Organization),
		},
		NotBefore:             notBefore,
		NotAfter:              notBefore.AddDate(0, 0, params.ValidDays),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	for _, h := range params.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	parsed, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}

	return &Bundle{
		CertPEM:     pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
		KeyPEM:      pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}),
		Certificate: parsed,
	}, nil
}

// WriteFile writes the bundle to path, readable by the owner only.
func (b *Bundle) WriteFile(path string) error {
	if err := os.WriteFile(path, b.PEM(), 0600); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
