package http

import (
	"net/http"
	"sort"
	"strings"
	"time"
)

// Field is one response header entry. Duplicate keys stay as separate
// entries so they render on separate lines.
type Field struct {
	Key   string
	Value string
}

type Response struct {
	StatusCode int
	Status     string // reason phrase without the code, e.g. "OK"
	Headers    []Field
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	for _, f := range r.Headers {
		if strings.EqualFold(f.Key, key) {
			return f.Value
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// statusMessage strips the numeric code from the status line, falling back
// to the standard reason phrase when the server sent none.
func statusMessage(resp *http.Response) string {
	_, msg, found := strings.Cut(resp.Status, " ")
	if found && msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}

// captureHeaders flattens the header map into ordered fields: keys sorted,
// one entry per value.
func captureHeaders(h http.Header) []Field {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []Field
	for _, k := range keys {
		for _, v := range h[k] {
			fields = append(fields, Field{Key: k, Value: v})
		}
	}
	return fields
}
