package exchange

import (
	"net/http"
	"time"
)

// Response is the drained result of the round trip. By the time the
// renderer sees it, the body has been read in full and the connection
// is closed.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
