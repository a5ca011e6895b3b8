package request

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Options holds the raw CLI option values before validation.
type Options struct {
	URL     string
	Method  string
	Headers []string // key:value
	Queries []string // key=value[&key=value...]
	Data    string   // urlencoded body
	JSON    string   // JSON body
	File    string   // file body path
	Timeout string   // seconds
	Trace   bool
}

// formBodyPattern is the strict urlencoded-pairs shape a --data value is
// checked against. A mismatch only warns; the value is sent as-is.
var formBodyPattern = regexp.MustCompile(`^[\w%-]+=[\w%-]*(&[\w%-]+=[\w%-]*)*$`)

// Resolve validates opts into a Spec or fails with one of the fatal error
// kinds. Non-fatal field problems are reported through warn and skipped or
// sent as-is per field. No network I/O happens here; the only filesystem
// access is the eager read of a file body.
func Resolve(opts Options, warn func(string)) (*Spec, error) {
	if warn == nil {
		warn = func(string) {}
	}

	u, err := parseURL(opts.URL)
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("%w: unknown method %q (expected one of %s)",
			ErrInvalidArgument, opts.Method, strings.Join(Methods, ", "))
	}

	body, err := resolveBody(opts, warn)
	if err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(opts.Timeout)
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		URL:     u,
		Method:  method,
		Headers: parseHeaders(opts.Headers, warn),
		Query:   parseQueries(opts.Queries, warn),
		Body:    body,
		Timeout: timeout,
	}

	if opts.Trace {
		spec.TraceID = uuid.NewString()
	}

	return spec, nil
}

func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %v", ErrInvalidArgument, raw, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: URL %q must be absolute (include a scheme)", ErrInvalidArgument, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme %q (only http and https are allowed)", ErrInvalidArgument, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: URL %q must have a host", ErrInvalidArgument, raw)
	}
	return u, nil
}

// parseHeaders splits each entry at the first colon and lowercases the
// key. Entries without a colon are skipped with a warning; a repeated key
// overwrites the previous value with a warning.
func parseHeaders(entries []string, warn func(string)) *FieldMap {
	headers := NewFieldMap()
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, ":")
		if !found || key == "" {
			warn(fmt.Sprintf("skipping malformed header %q (expected key:value)", entry))
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if headers.Set(key, value) {
			warn(fmt.Sprintf("overwriting header key %q", key))
		}
	}
	return headers
}

// parseQueries splits each entry on "&" and each pair at the first "=".
// Pairs without "=" are skipped with a warning; a repeated key overwrites
// the previous value with a warning.
func parseQueries(entries []string, warn func(string)) *FieldMap {
	query := NewFieldMap()
	for _, entry := range entries {
		for _, pair := range strings.Split(entry, "&") {
			if pair == "" {
				continue
			}
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				warn(fmt.Sprintf("skipping malformed query pair %q (expected key=value)", pair))
				continue
			}
			if query.Set(key, value) {
				warn(fmt.Sprintf("overwriting query key %q", key))
			}
		}
	}
	return query
}

func resolveBody(opts Options, warn func(string)) (Body, error) {
	supplied := 0
	for _, set := range []bool{opts.Data != "", opts.JSON != "", opts.File != ""} {
		if set {
			supplied++
		}
	}
	if supplied > 1 {
		return Body{}, fmt.Errorf("%w: --data, --json and --file are mutually exclusive", ErrConflictingOptions)
	}

	switch {
	case opts.Data != "":
		if !formBodyPattern.MatchString(opts.Data) {
			warn(fmt.Sprintf("data value %q does not look urlencoded; sending as-is", opts.Data))
		}
		return Body{Type: BodyForm, Raw: opts.Data}, nil

	case opts.JSON != "":
		if !gjson.Valid(opts.JSON) {
			warn(fmt.Sprintf("json value %q is not valid JSON; sending as-is", opts.JSON))
		}
		return Body{Type: BodyJSON, Raw: opts.JSON}, nil

	case opts.File != "":
		content, err := os.ReadFile(opts.File)
		if err != nil {
			return Body{}, fmt.Errorf("%w: cannot read body file: %v", ErrFileAccess, err)
		}
		return Body{Type: BodyFile, Path: opts.File, Content: content}, nil
	}

	return Body{Type: BodyNone}, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q is not a number of seconds", ErrInvalidArgument, raw)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("%w: timeout must not be negative", ErrInvalidArgument)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
