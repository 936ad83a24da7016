package exchange

import "net/http"

type Options struct {
	// Transport overrides the round tripper used for the request.
	// Leaving it nil means http.DefaultTransport.
	Transport http.RoundTripper
}
