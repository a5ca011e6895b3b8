package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/hit/packages/http"
)

// JSONExchange is the machine-readable rendering of one exchange.
type JSONExchange struct {
	Method   string       `json:"method"`
	Status   JSONStatus   `json:"status"`
	Headers  []JSONHeader `json:"headers"`
	Body     string       `json:"body"`
	Duration float64      `json:"duration"` // milliseconds
}

type JSONStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type JSONHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type JSONWarning struct {
	Warning string `json:"warning"`
}

type JSONError struct {
	Error string `json:"error"`
}

// JSONFormatter writes each rendering as a JSON document.
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResponse(method string, resp *http.Response) {
	headers := make([]JSONHeader, 0, len(resp.Headers))
	for _, h := range resp.Headers {
		headers = append(headers, JSONHeader{Key: h.Key, Value: h.Value})
	}

	f.write(JSONExchange{
		Method: method,
		Status: JSONStatus{
			Code:    resp.StatusCode,
			Message: resp.Status,
		},
		Headers:  headers,
		Body:     resp.BodyString(),
		Duration: float64(resp.DurationMs()),
	})
}

func (f *JSONFormatter) FormatWarning(msg string) {
	f.write(JSONWarning{Warning: msg})
}

func (f *JSONFormatter) FormatError(err error) {
	f.write(JSONError{Error: err.Error()})
}

func (f *JSONFormatter) write(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(f.writer, `{"error": %q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(f.writer, string(data))
}
