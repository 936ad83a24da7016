package output

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gleb-zvonkov/web-client/input"
)

func TestPrettyPrinter_PrintRequestLine(t *testing.T) {
	testCases := []struct {
		title    string
		request  *input.Request
		expected string
	}{
		{
			title: "GET request",
			request: &input.Request{
				URL:    "http://example.com/hello?foo=bar",
				Method: input.MethodGet,
			},
			expected: strings.Join([]string{
				"Requesting URL: http://example.com/hello?foo=bar",
				"Method: GET",
				"",
			}, "\n"),
		},
		{
			title: "POST with JSON payload",
			request: &input.Request{
				URL:    "http://example.com/api",
				Method: input.MethodPost,
				Body:   input.Body{BodyType: input.JSONBody, RawJSON: `{"x": 1}`},
			},
			expected: strings.Join([]string{
				"Requesting URL: http://example.com/api",
				"Method: POST",
				`JSON: {"x": 1}`,
				"",
			}, "\n"),
		},
		{
			title: "POST with form data",
			request: &input.Request{
				URL:    "http://example.com/form",
				Method: input.MethodPost,
				Body: input.Body{
					BodyType: input.FormBody,
					Fields:   []input.Field{{Name: "a", Value: "1"}},
					RawData:  "a=1",
				},
			},
			expected: strings.Join([]string{
				"Requesting URL: http://example.com/form",
				"Method: POST",
				"Data: a=1",
				"",
			}, "\n"),
		},
		{
			title: "POST without a body still echoes the data line",
			request: &input.Request{
				URL:    "http://example.com/form",
				Method: input.MethodPost,
				Body:   input.Body{BodyType: input.EmptyBody},
			},
			expected: strings.Join([]string{
				"Requesting URL: http://example.com/form",
				"Method: POST",
				"Data: ",
				"",
			}, "\n"),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := NewPrettyPrinter(PrettyPrinterConfig{
				Writer:      &buffer,
				EnableColor: false,
			})

			// Exercise
			err := printer.PrintRequestLine(tt.request)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", tt.expected, buffer.String())
			}
		})
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title    string
		body     string
		expected string
	}{
		{
			title: "keys are sorted",
			body:  `{"zzz": "hello", "aaa": 1}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`    "aaa": 1,`,
				`    "zzz": "hello"`,
				"}\n",
			}, "\n"),
		},
		{
			title: "nested objects are sorted too",
			body:  `{"b": {"d": 1, "c": 2}, "a": 3}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`    "a": 3,`,
				`    "b": {`,
				`        "c": 2,`,
				`        "d": 1`,
				"    }",
				"}\n",
			}, "\n"),
		},
		{
			title: "arrays keep their order",
			body:  `[3, 1, 2]`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"[",
				"    3,",
				"    1,",
				"    2",
				"]\n",
			}, "\n"),
		},
		{
			title: "numbers survive as typed",
			body:  `{"big": 12345678901234567890123, "pi": 3.14}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`    "big": 12345678901234567890123,`,
				`    "pi": 3.14`,
				"}\n",
			}, "\n"),
		},
		{
			title: "unicode escapes are decoded",
			body:  `{"msg": "hello ⚡"}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`    "msg": "hello ⚡"`,
				"}\n",
			}, "\n"),
		},
		{
			title: "html characters are not escaped",
			body:  `{"link": "<a>&</a>"}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`    "link": "<a>&</a>"`,
				"}\n",
			}, "\n"),
		},
		{
			title: "null document",
			body:  "null",
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"null\n",
			}, "\n"),
		},
		{
			title: "plain text passes through",
			body:  "hello, world",
			expected: strings.Join([]string{
				"Response body:",
				"hello, world\n",
			}, "\n"),
		},
		{
			title:    "empty body",
			body:     "",
			expected: "Response body:\n\n",
		},
		{
			title: "truncated JSON is not prettified",
			body:  `{"a": 1`,
			expected: strings.Join([]string{
				"Response body:",
				`{"a": 1` + "\n",
			}, "\n"),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := NewPrettyPrinter(PrettyPrinterConfig{
				Writer:      &buffer,
				EnableColor: false,
			})

			// Exercise
			err := printer.PrintBody([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", tt.expected, buffer.String())
			}
		})
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	header := http.Header{}
	header.Set("X-Request-Id", "0451")
	header.Set("Content-Type", "application/json")
	header.Add("Set-Cookie", "a=1")
	header.Add("Set-Cookie", "b=2")

	// Exercise
	err := printer.PrintHeader(header)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify: names are sorted, repeated fields keep their order.
	expected := strings.Join([]string{
		"Content-Type: application/json",
		"Set-Cookie: a=1",
		"Set-Cookie: b=2",
		"X-Request-Id: 0451",
		"",
		"",
	}, "\n")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintError(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	request := &input.Request{
		URL:    "ftp://example.com",
		Method: input.MethodGet,
	}

	// Exercise
	err := printer.PrintError(request, "The URL does not have a valid base protocol.")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Requesting URL: ftp://example.com",
		"Method: GET",
		"Error: The URL does not have a valid base protocol.",
		"",
	}, "\n")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintStats(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})

	// Exercise
	err := printer.PrintStats(235*time.Millisecond, 1536)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Elapsed time: 235ms",
		"Response size: 1.5K",
		"",
	}, "\n")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
}

func TestPrettyPrinter_Color(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: true,
	})
	request := &input.Request{
		URL:    "http://example.com",
		Method: input.MethodGet,
	}

	// Exercise
	err := printer.PrintRequestLine(request)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if !strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("expected colored output: actual=%q", buffer.String())
	}
	if !strings.Contains(buffer.String(), "\x1b[90m") {
		t.Errorf("labels should render bright black: actual=%q", buffer.String())
	}
	if !strings.Contains(buffer.String(), "http://example.com") {
		t.Errorf("colored output should still contain the URL: actual=%q", buffer.String())
	}
}
