package inspect

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// Options holds connection settings that don't fit in a database URL.
type Options struct {
	// CAFile is a PEM bundle used to verify the server certificate
	CAFile string

	// CertFile and KeyFile hold the client certificate for mutual TLS. They
	// must be set together.
	CertFile string
	KeyFile  string
}

// TLSEnabled reports whether any TLS file was provided.
func (o Options) TLSEnabled() bool {
	return o.CAFile != "" || o.CertFile != "" || o.KeyFile != ""
}

// TLSConfig builds the client TLS configuration described by opts.
//
// Example:
//
//	cfg, err := TLSConfig(Options{
//		CAFile:   "certs/ca.crt",
//		CertFile: "certs/client.crt",
//		KeyFile:  "certs/client.key",
//	})
//	if err != nil {
//		return err
//	}
func TLSConfig(opts Options) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if (opts.CertFile == "") != (opts.KeyFile == "") {
		return nil, errors.New("cert file and key file must be provided together")
	}

	if opts.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load cert file/key file")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if opts.CAFile != "" {
		caCert, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load CA file")
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.Errorf("no certificates found in CA file: %s", opts.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
