package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gleb-zvonkov/web-client/input"
	"github.com/gleb-zvonkov/web-client/version"
	"github.com/pkg/errors"
)

func BuildHTTPRequest(in *input.Request) (*http.Request, error) {
	bodyTuple, err := buildHTTPBody(in)
	if err != nil {
		return nil, err
	}

	r, err := http.NewRequest(string(in.Method), in.URL, bodyTuple.body)
	if err != nil {
		return nil, errors.Wrap(err, "building HTTP request")
	}
	if bodyTuple.contentType != "" {
		r.Header.Set("Content-Type", bodyTuple.contentType)
	}
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", fmt.Sprintf("web-client/%s", version.Current()))
	}
	return r, nil
}

type bodyTuple struct {
	body        io.Reader
	contentType string
}

func buildHTTPBody(in *input.Request) (bodyTuple, error) {
	switch in.Body.BodyType {
	case input.EmptyBody:
		return bodyTuple{}, nil
	case input.JSONBody:
		return buildJSONBody(in)
	case input.FormBody:
		return buildFormBody(in)
	default:
		return bodyTuple{}, errors.Errorf("unknown body type: %v", in.Body.BodyType)
	}
}

// buildJSONBody sends the payload bytes exactly as typed; sorting and
// re-indentation happen on the response side only.
func buildJSONBody(in *input.Request) (bodyTuple, error) {
	if !json.Valid([]byte(in.Body.RawJSON)) {
		return bodyTuple{}, errors.WithStack(&JSONPayloadError{Payload: in.Body.RawJSON})
	}
	return bodyTuple{
		body:        strings.NewReader(in.Body.RawJSON),
		contentType: "application/json",
	}, nil
}

func buildFormBody(in *input.Request) (bodyTuple, error) {
	form := url.Values{}
	for _, field := range in.Body.Fields {
		form.Set(field.Name, field.Value)
	}
	return bodyTuple{
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, nil
}
