package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hit/packages/http"
	"github.com/abdul-hamid-achik/hit/packages/output"
	"github.com/abdul-hamid-achik/hit/packages/request"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hit <url>",
	Short: "Fire one HTTP request from the terminal",
	Long: `hit issues a single HTTP request described on the command line and
prints the response: status, headers and body. One request per
invocation, no retries, no redirects.

Examples:
  hit http://example.com/health
  hit http://example.com/search -Q "q=golang&page=2"
  hit http://example.com/users -M POST --json '{"name":"ada"}'
  hit http://example.com/upload -M PUT --file ./payload.bin
  hit http://example.com/slow --timeout 2.5`,
	Args:          cobra.ExactArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	methodFlag  string
	headersFlag []string
	queriesFlag []string
	dataFlag    string
	jsonFlag    string
	fileFlag    string
	timeoutFlag string
	traceFlag   bool
	noColorFlag bool
	outputFlag  string
)

func init() {
	rootCmd.Flags().StringVarP(&methodFlag, "method", "M", "GET",
		"Request method: "+strings.Join(request.Methods, ", "))
	rootCmd.Flags().StringArrayVarP(&headersFlag, "headers", "H", nil,
		"Request header as key:value (repeatable)")
	rootCmd.Flags().StringArrayVarP(&queriesFlag, "queries", "Q", nil,
		"Query parameters as \"key=value[&key=value...]\" (repeatable)")
	rootCmd.Flags().StringVarP(&dataFlag, "data", "D", "",
		"Urlencoded request body")
	rootCmd.Flags().StringVar(&jsonFlag, "json", "",
		"JSON request body")
	rootCmd.Flags().StringVar(&fileFlag, "file", "",
		"Path to a file to send as the request body")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", "",
		"Exchange timeout in seconds")
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false,
		"Stamp an x-request-id header on the request")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false,
		"Disable colored output")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "console",
		"Output format: console, json")

	rootCmd.AddCommand(versionCmd)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		// Flag and argument errors never reach the command body, so
		// they are rendered here; runRoot renders its own failures.
		var rendered renderedError
		if !errors.As(err, &rendered) {
			newFormatter().FormatError(err)
		}
		os.Exit(exitCodeFor(err))
	}
}

// renderedError marks a failure already printed by the command body so
// Execute does not print it twice.
type renderedError struct{ err error }

func (e renderedError) Error() string { return e.err.Error() }
func (e renderedError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, request.ErrFileAccess):
		return ExitFileError
	case errors.Is(err, http.ErrNetwork):
		return ExitNetworkError
	case errors.Is(err, request.ErrInvalidArgument),
		errors.Is(err, request.ErrConflictingOptions):
		return ExitUsageError
	}
	// Remaining failures come from cobra flag/argument parsing.
	var rendered renderedError
	if errors.As(err, &rendered) {
		return ExitError
	}
	return ExitUsageError
}

func newFormatter() output.Formatter {
	if strings.EqualFold(outputFlag, "json") {
		return output.NewJSONFormatter()
	}
	return output.NewConsoleFormatter(output.WithNoColor(noColorFlag))
}

func runRoot(cmd *cobra.Command, args []string) (err error) {
	formatter := newFormatter()

	// Safety net: a stray panic becomes a printed error, not a stack
	// trace.
	defer func() {
		if r := recover(); r != nil {
			perr := fmt.Errorf("unexpected failure: %v", r)
			formatter.FormatError(perr)
			err = renderedError{perr}
		}
	}()

	opts := request.Options{
		URL:     args[0],
		Method:  methodFlag,
		Headers: headersFlag,
		Queries: queriesFlag,
		Data:    dataFlag,
		JSON:    jsonFlag,
		File:    fileFlag,
		Timeout: timeoutFlag,
		Trace:   traceFlag,
	}

	spec, err := request.Resolve(opts, formatter.FormatWarning)
	if err != nil {
		formatter.FormatError(err)
		return renderedError{err}
	}

	client := http.NewClient()
	resp, err := client.Do(cmd.Context(), spec)
	if err != nil {
		formatter.FormatError(err)
		return renderedError{err}
	}

	formatter.FormatResponse(spec.Method, resp)
	return nil
}
