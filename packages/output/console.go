package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hit/packages/http"
	"github.com/fatih/color"
)

// Formatter is the rendering surface the CLI drives.
type Formatter interface {
	FormatResponse(method string, resp *http.Response)
	FormatWarning(msg string)
	FormatError(err error)
}

const bannerText = " RESPONSE "

type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatResponse prints the exchange in fixed order: banner, method,
// status line, one line per header, then the body text.
func (f *ConsoleFormatter) FormatResponse(method string, resp *http.Response) {
	banner := color.New(color.Bold, color.ReverseVideo).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	rule := strings.Repeat("=", 15)
	fmt.Fprintf(f.writer, "%s\n", banner(rule+bannerText+rule))
	fmt.Fprintf(f.writer, "%s %s\n", bold("METHOD:"), method)
	fmt.Fprintf(f.writer, "%s %d - %s\n", bold("STATUS:"), resp.StatusCode, resp.Status)
	for _, h := range resp.Headers {
		fmt.Fprintf(f.writer, "%s %s\n", cyan(strings.ToLower(h.Key)+":"), h.Value)
	}
	fmt.Fprintf(f.writer, "%s %s\n", bold("BODY:"), resp.BodyString())
}

func (f *ConsoleFormatter) FormatWarning(msg string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", yellow("Warning:"), msg)
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
