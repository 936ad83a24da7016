package input

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

type URLErrorKind int

const (
	InvalidProtocol URLErrorKind = iota
	RelativeWithoutBase
	InvalidPort
	InvalidIPv4
	InvalidIPv6
	ParseFailed
)

// URLError describes why a target URL was rejected before any network
// activity. Error() is the user-facing message, so it names the
// problem without leaking parser internals.
type URLError struct {
	Kind URLErrorKind
	URL  string
}

func (e *URLError) Error() string {
	switch e.Kind {
	case InvalidProtocol, RelativeWithoutBase:
		return "The URL does not have a valid base protocol."
	case InvalidPort:
		return "The URL contains an invalid port number."
	case InvalidIPv4:
		return "The URL contains an invalid IPv4 address."
	case InvalidIPv6:
		return "The URL contains an invalid IPv6 address."
	default:
		return "Some error occurred while parsing the URL."
	}
}

func newURLError(kind URLErrorKind, rawURL string) error {
	return errors.WithStack(&URLError{Kind: kind, URL: rawURL})
}

// BuildRequest turns the positional arguments and flag values into a
// Request. The URL is kept exactly as typed; ValidateTarget decides
// later whether it is usable.
func BuildRequest(args []string, options *Options) (*Request, error) {
	switch len(args) {
	case 0:
		return nil, newUsageError("URL is required")
	case 1:
		// ok
	default:
		return nil, newUsageError("unexpected argument: " + args[1])
	}

	method := resolveMethod(options)
	return &Request{
		URL:    args[0],
		Method: method,
		Body:   buildBody(options, method),
	}, nil
}

// resolveMethod never fails: a --json body forces POST, and anything
// that is not POST after case normalization dispatches as GET.
func resolveMethod(options *Options) Method {
	if options.HasJSON {
		return MethodPost
	}
	if strings.ToUpper(options.Method) == string(MethodPost) {
		return MethodPost
	}
	return MethodGet
}

func buildBody(options *Options, method Method) Body {
	if options.HasJSON {
		return Body{BodyType: JSONBody, RawJSON: options.JSON}
	}
	if options.HasData && method == MethodPost {
		return Body{
			BodyType: FormBody,
			Fields:   parseFormFields(options.Data),
			RawData:  options.Data,
		}
	}
	return Body{BodyType: EmptyBody}
}

// parseFormFields splits "a=1&b=2" into fields. A repeated name
// replaces the earlier value, and pieces without '=' are dropped.
func parseFormFields(data string) []Field {
	var fields []Field
	for _, pair := range strings.Split(data, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		replaced := false
		for i := range fields {
			if fields[i].Name == name {
				fields[i].Value = value
				replaced = true
				break
			}
		}
		if !replaced {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}
	return fields
}

// ValidateTarget checks the URL before anything is sent. The scheme
// prefix check runs first so that a completely non-HTTP input fails
// with the protocol message no matter how malformed the rest is.
func ValidateTarget(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return newURLError(InvalidProtocol, rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return newURLError(classifyParseError(err), rawURL)
	}
	return validateHost(u, rawURL)
}

func classifyParseError(err error) URLErrorKind {
	message := err.Error()
	switch {
	case strings.Contains(message, "invalid port"):
		return InvalidPort
	case strings.Contains(message, "missing ']'"):
		return InvalidIPv6
	default:
		return ParseFailed
	}
}

func validateHost(u *url.URL, rawURL string) error {
	if !u.IsAbs() {
		return newURLError(RelativeWithoutBase, rawURL)
	}
	host := u.Hostname()
	if host == "" {
		return newURLError(ParseFailed, rawURL)
	}
	if strings.HasPrefix(u.Host, "[") {
		// Brackets must hold an IPv6 literal, not a dotted quad.
		if net.ParseIP(host) == nil || !strings.Contains(host, ":") {
			return newURLError(InvalidIPv6, rawURL)
		}
	} else if hostLooksNumeric(host) && net.ParseIP(host) == nil {
		return newURLError(InvalidIPv4, rawURL)
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
			return newURLError(InvalidPort, rawURL)
		}
	}
	return nil
}

// hostLooksNumeric reports whether the host consists of digits and
// dots only, in which case it must be a valid dotted-quad address.
func hostLooksNumeric(host string) bool {
	if host == "" {
		return false
	}
	for _, c := range host {
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
