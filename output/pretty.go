package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/gleb-zvonkov/web-client/input"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type PrettyPrinter struct {
	writer  io.Writer
	aurora  aurora.Aurora
	palette *ReportPalette
}

type PrettyPrinterConfig struct {
	Writer      io.Writer
	EnableColor bool
}

type ReportPalette struct {
	Label          aurora.Color
	URL            aurora.Color
	Method         aurora.Color
	Error          aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

// This aurora version exports no gray constant; bright black (SGR 90)
// fills that role.
var defaultReportPalette = ReportPalette{
	Label:          aurora.BlackFg | aurora.BrightFg,
	URL:            aurora.CyanFg,
	Method:         aurora.BlueFg,
	Error:          aurora.RedFg | aurora.BoldFm,
	FieldName:      aurora.BlackFg | aurora.BrightFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.BlackFg | aurora.BrightFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:  config.Writer,
		aurora:  aurora.NewAurora(config.EnableColor),
		palette: &defaultReportPalette,
	}
}

// PrintRequestLine echoes the target and effective method, plus the
// payload as typed when the method is POST.
func (p *PrettyPrinter) PrintRequestLine(in *input.Request) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Requesting URL:", p.palette.Label),
		p.aurora.Colorize(in.URL, p.palette.URL))
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Method:", p.palette.Label),
		p.aurora.Colorize(string(in.Method), p.palette.Method))
	if in.Method != input.MethodPost {
		return nil
	}
	if in.Body.BodyType == input.JSONBody {
		fmt.Fprintf(p.writer, "%s %s\n",
			p.aurora.Colorize("JSON:", p.palette.Label), in.Body.RawJSON)
	} else {
		fmt.Fprintf(p.writer, "%s %s\n",
			p.aurora.Colorize("Data:", p.palette.Label), in.Body.RawData)
	}
	return nil
}

// PrintBody renders the response body. A body that is valid JSON is
// re-serialized with sorted keys and four-space indentation; anything
// else passes through untouched.
func (p *PrettyPrinter) PrintBody(body []byte) error {
	if !json.Valid(body) {
		fmt.Fprintf(p.writer, "%s\n", p.aurora.Colorize("Response body:", p.palette.Label))
		fmt.Fprintf(p.writer, "%s\n", body)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return errors.Wrap(err, "parsing response body as JSON")
	}

	fmt.Fprintf(p.writer, "%s\n", p.aurora.Colorize("Response body (JSON with sorted keys):", p.palette.Label))
	encoder := json.NewEncoder(p.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

// PrintHeader lists the response headers sorted by name, one line per
// value, followed by a blank line.
func (p *PrettyPrinter) PrintHeader(header http.Header) error {
	var names []string
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range header[name] {
			fmt.Fprintf(p.writer, "%s%s %s\n",
				p.aurora.Colorize(name, p.palette.FieldName),
				p.aurora.Colorize(":", p.palette.FieldSeparator),
				p.aurora.Colorize(value, p.palette.FieldValue))
		}
	}

	fmt.Fprintln(p.writer)
	return nil
}

// PrintError writes the three-line failure report: the target, the
// effective method and the reason.
func (p *PrettyPrinter) PrintError(in *input.Request, message string) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Requesting URL:", p.palette.Label),
		p.aurora.Colorize(in.URL, p.palette.URL))
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Method:", p.palette.Label),
		p.aurora.Colorize(string(in.Method), p.palette.Method))
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Error:", p.palette.Label),
		p.aurora.Colorize(message, p.palette.Error))
	return nil
}

func (p *PrettyPrinter) PrintStats(elapsed time.Duration, size int64) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Elapsed time:", p.palette.Label), elapsed.Round(time.Millisecond))
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Response size:", p.palette.Label), bytefmt.ByteSize(uint64(size)))
	return nil
}
