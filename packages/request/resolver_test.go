package request

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectWarnings(warnings *[]string) func(string) {
	return func(msg string) {
		*warnings = append(*warnings, msg)
	}
}

func TestResolve_Defaults(t *testing.T) {
	spec, err := Resolve(Options{URL: "http://example.com/path"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "GET", spec.Method)
	assert.Equal(t, "example.com", spec.URL.Host)
	assert.Equal(t, "/path", spec.URL.Path)
	assert.Equal(t, 0, spec.Headers.Len())
	assert.Equal(t, 0, spec.Query.Len())
	assert.Equal(t, BodyNone, spec.Body.Type)
	assert.Equal(t, time.Duration(0), spec.Timeout)
	assert.Empty(t, spec.TraceID)
}

func TestResolve_URLValidation(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"relative URL", "example.com/path"},
		{"unsupported scheme", "ftp://example.com"},
		{"missing host", "http:///path"},
		{"unparsable", "http://exa mple.com/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Options{URL: tt.url}, nil)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestResolve_Method(t *testing.T) {
	spec, err := Resolve(Options{URL: "http://example.com", Method: "delete"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE", spec.Method)

	_, err = Resolve(Options{URL: "http://example.com", Method: "TRACE"}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolve_HeaderParsing(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:     "http://example.com",
		Headers: []string{"Accept: text/plain", "X-Token:abc", "nocolon"},
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	assert.Equal(t, []string{"accept", "x-token"}, spec.Headers.Keys())

	v, ok := spec.Headers.Get("accept")
	assert.True(t, ok)
	assert.Equal(t, "text/plain", v)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "nocolon")
}

func TestResolve_HeaderOverwriteWarnsOnce(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:     "http://example.com",
		Headers: []string{"X-Token:first", "x-token:second"},
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	v, _ := spec.Headers.Get("x-token")
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, spec.Headers.Len())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "overwriting header key")
	assert.Contains(t, warnings[0], "x-token")
}

func TestResolve_QueryParsing(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:     "http://example.com",
		Queries: []string{"a=1&b=2", "c=3", "broken"},
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, spec.Query.Keys())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "broken")
}

func TestResolve_QueryOverwrite(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:     "http://example.com",
		Queries: []string{"a=1", "a=2"},
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	v, _ := spec.Query.Get("a")
	assert.Equal(t, "2", v)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "overwriting query key")
}

func TestResolve_ConflictingBodies(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"data and json", Options{URL: "http://example.com", Data: "a=1", JSON: `{}`}},
		{"data and file", Options{URL: "http://example.com", Data: "a=1", File: "x"}},
		{"json and file", Options{URL: "http://example.com", JSON: `{}`, File: "x"}},
		{"all three", Options{URL: "http://example.com", Data: "a=1", JSON: `{}`, File: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.opts, nil)
			assert.ErrorIs(t, err, ErrConflictingOptions)
		})
	}
}

func TestResolve_DataBody(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:  "http://example.com",
		Data: "name=ada&lang=go",
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	assert.Equal(t, BodyForm, spec.Body.Type)
	assert.Equal(t, "name=ada&lang=go", spec.Body.Raw)
	assert.Equal(t, "application/x-www-form-urlencoded", spec.Body.ContentType())
	assert.Empty(t, warnings)
}

func TestResolve_DataBodyPatternWarning(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:  "http://example.com",
		Data: "not urlencoded at all",
	}, collectWarnings(&warnings))

	// Sent as-is despite the warning
	require.NoError(t, err)
	assert.Equal(t, BodyForm, spec.Body.Type)
	assert.Equal(t, "not urlencoded at all", spec.Body.Raw)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "does not look urlencoded")
}

func TestResolve_JSONBody(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:  "http://example.com",
		JSON: `{"a":1}`,
	}, collectWarnings(&warnings))

	require.NoError(t, err)
	assert.Equal(t, BodyJSON, spec.Body.Type)
	assert.Equal(t, []byte(`{"a":1}`), spec.Body.Bytes())
	assert.Equal(t, "application/json", spec.Body.ContentType())
	assert.Empty(t, warnings)
}

func TestResolve_InvalidJSONBodyWarning(t *testing.T) {
	var warnings []string
	spec, err := Resolve(Options{
		URL:  "http://example.com",
		JSON: `{"a":`,
	}, collectWarnings(&warnings))

	// Sent as-is despite the warning
	require.NoError(t, err)
	assert.Equal(t, BodyJSON, spec.Body.Type)
	assert.Equal(t, `{"a":`, spec.Body.Raw)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not valid JSON")
}

func TestResolve_FileBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o644))

	spec, err := Resolve(Options{URL: "http://example.com", File: path}, nil)

	require.NoError(t, err)
	assert.Equal(t, BodyFile, spec.Body.Type)
	assert.Equal(t, path, spec.Body.Path)
	assert.Equal(t, []byte("file contents"), spec.Body.Bytes())
	assert.Equal(t, "application/octet-stream", spec.Body.ContentType())
}

func TestResolve_MissingFileBody(t *testing.T) {
	_, err := Resolve(Options{
		URL:  "http://example.com",
		File: filepath.Join(t.TempDir(), "does-not-exist"),
	}, nil)

	assert.ErrorIs(t, err, ErrFileAccess)
}

func TestResolve_Timeout(t *testing.T) {
	spec, err := Resolve(Options{URL: "http://example.com", Timeout: "2.5"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, spec.Timeout)

	_, err = Resolve(Options{URL: "http://example.com", Timeout: "soon"}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Resolve(Options{URL: "http://example.com", Timeout: "-1"}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolve_Trace(t *testing.T) {
	spec, err := Resolve(Options{URL: "http://example.com", Trace: true}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, spec.TraceID)
}
