package request

import (
	"net/url"
	"time"
)

// BodyType identifies the origin of the request payload.
type BodyType int

const (
	BodyNone BodyType = iota
	BodyForm
	BodyJSON
	BodyFile
)

// Body is the mutually exclusive payload variant. Raw holds the text of a
// form or JSON body; Path and Content describe a file body, with Content
// read eagerly during resolution.
type Body struct {
	Type    BodyType
	Raw     string
	Path    string
	Content []byte
}

// Bytes returns the payload to send on the wire.
func (b Body) Bytes() []byte {
	switch b.Type {
	case BodyForm, BodyJSON:
		return []byte(b.Raw)
	case BodyFile:
		return b.Content
	}
	return nil
}

// ContentType returns the default media type for the active body variant,
// or "" when no body is set.
func (b Body) ContentType() string {
	switch b.Type {
	case BodyForm:
		return "application/x-www-form-urlencoded"
	case BodyJSON:
		return "application/json"
	case BodyFile:
		return "application/octet-stream"
	}
	return ""
}

// Spec is the validated, immutable description of the single request to
// issue. Header keys are lowercase and unique; query keys are unique.
type Spec struct {
	URL     *url.URL
	Method  string
	Headers *FieldMap
	Query   *FieldMap
	Body    Body
	Timeout time.Duration
	TraceID string
}

// Methods lists the accepted request methods.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

func validMethod(m string) bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}
