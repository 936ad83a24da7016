package exchange

import "net/http"

func BuildHTTPClient(options *Options) (*http.Client, error) {
	client := http.Client{
		Transport: options.Transport,
	}
	return &client, nil
}
