package output

import (
	"net/http"
	"time"

	"github.com/gleb-zvonkov/web-client/input"
)

type Printer interface {
	PrintRequestLine(in *input.Request) error
	PrintBody(body []byte) error
	PrintHeader(header http.Header) error
	PrintError(in *input.Request, message string) error
	PrintStats(elapsed time.Duration, size int64) error
}
