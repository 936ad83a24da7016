package exchange

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"time"

	"github.com/gleb-zvonkov/web-client/input"
	"github.com/pkg/errors"
)

// SendRequest performs the round trip and drains the response body
// before returning, so callers never hold a live connection.
func SendRequest(in *input.Request, options *Options) (*Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}
	r, err := BuildHTTPRequest(in)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := client.Do(r)
	if err != nil {
		return nil, classifyTransportError(in.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(&TransportError{URL: in.URL, Err: err})
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
		Duration:   time.Since(start),
	}, nil
}

// classifyTransportError separates connectivity failures (dial, DNS,
// TLS handshake, timeouts) from everything else.
func classifyTransportError(rawURL string, err error) error {
	if isConnectError(err) {
		return errors.WithStack(&ConnectError{URL: rawURL, Err: err})
	}
	return errors.WithStack(&TransportError{URL: rawURL, Err: err})
}

func isConnectError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		// crypto/tls reports handshake alerts as "remote error" and
		// "local error" operations.
		switch opErr.Op {
		case "dial", "remote error", "local error":
			return true
		}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return isTLSHandshakeError(err)
}

// isTLSHandshakeError matches failures raised while the TLS session is
// still being established, before any request has been written.
func isTLSHandshakeError(err error) bool {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &invalidErr)
}
