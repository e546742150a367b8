package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/kroma-labs/ruxios-go/example/fetch/internal/config"
	"github.com/kroma-labs/ruxios-go/example/fetch/internal/telemetry"
	"github.com/kroma-labs/ruxios-go/ruxios"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type options struct {
	method       string
	headers      []string
	data         string
	query        string
	schemaFile   string
	envPrefix    string
	timeout      time.Duration
	timeoutSet   bool
	watch        time.Duration
	debug        bool
	curl         bool
	noColor      bool
	metricsAddr  string
	otlpEndpoint string
}

// NewRootCmd builds the fetch command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "fetch URL",
		Short:   "Send one JSON request and print the response",
		Version: version,
		Long: `fetch sends a single request with ruxios and prints the status and the
JSON body. With --env PREFIX the URL is relative to <PREFIX>_BASE_URL,
read from the environment or a .env file.`,
		Example: `  fetch https://api.github.com/users/octocat --query login
  fetch https://jsonplaceholder.typicode.com/posts -X POST -d '{"title":"foo","userId":1}'
  GITHUB_BASE_URL=https://api.github.com fetch --env GITHUB /users/octocat`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.timeoutSet = cmd.Flags().Changed("timeout")
			return run(cmd.Context(), opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.method, "request", "X", "GET", "HTTP method")
	f.StringArrayVarP(&opts.headers, "header", "H", nil, `header "Name: value" (repeatable)`)
	f.StringVarP(&opts.data, "data", "d", "", "JSON request body")
	f.StringVarP(&opts.query, "query", "q", "", "print only this gjson path of the response")
	f.StringVar(&opts.schemaFile, "schema", "", "validate the response against this JSON Schema file")
	f.StringVar(&opts.envPrefix, "env", "", "build the client from <PREFIX>_* environment variables")
	f.DurationVarP(&opts.timeout, "timeout", "t", ruxios.DefaultTimeout, "request timeout")
	f.DurationVar(&opts.watch, "watch", 0, "repeat the request at this interval until interrupted")
	f.BoolVarP(&opts.debug, "verbose", "v", false, "log requests and responses")
	f.BoolVar(&opts.curl, "curl", false, "log the cURL equivalent of each request")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", `serve Prometheus metrics on this address, e.g. ":2112"`)
	f.StringVar(&opts.otlpEndpoint, "otlp-endpoint", "", `export traces to this OTLP gRPC collector, e.g. "localhost:4317"`)

	return cmd
}

// Execute runs the command with interrupt handling and returns its error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func run(ctx context.Context, opts *options, url string) error {
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		OTLPEndpoint: opts.otlpEndpoint,
		MetricsAddr:  opts.metricsAddr,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()

	client, err := newClient(opts)
	if err != nil {
		return err
	}

	req, err := newRequest(opts, url)
	if err != nil {
		return err
	}
	req.Client(client)

	var schema string
	if opts.schemaFile != "" {
		b, err := os.ReadFile(opts.schemaFile)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		schema = string(b)
	}

	p := newPalette(opts.noColor)
	p.printRequest(os.Stdout, ruxios.ParseMethod(opts.method).String(), client.Config().BaseURL+url)

	if opts.watch <= 0 {
		return fetchOnce(ctx, p, req, opts.query, schema)
	}

	ticker := time.NewTicker(opts.watch)
	defer ticker.Stop()

	for {
		if err := fetchOnce(ctx, p, req, opts.query, schema); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func newClient(opts *options) (*ruxios.Client, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: opts.noColor}).
		With().Timestamp().Logger()
	if opts.debug || opts.curl {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	var clientOpts []ruxios.Option

	if opts.envPrefix != "" {
		var envOpts []ruxios.EnvOption
		if _, err := os.Stat(config.DefaultEnvFile); err == nil {
			envOpts = append(envOpts, ruxios.WithEnvFile(config.DefaultEnvFile))
		}
		cfg, err := ruxios.ConfigFromEnv(opts.envPrefix, envOpts...)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, ruxios.WithConfig(cfg))
	}

	// An explicit --timeout overrides <PREFIX>_TIMEOUT_MS.
	if opts.envPrefix == "" || opts.timeoutSet {
		clientOpts = append(clientOpts, ruxios.WithTimeout(opts.timeout))
	}

	clientOpts = append(clientOpts,
		ruxios.WithServiceName(config.ServiceName),
		ruxios.WithLogger(logger),
		ruxios.WithDebug(opts.debug),
		ruxios.WithGenerateCurl(opts.curl),
		ruxios.WithRequestID(config.RequestIDHeader),
	)

	return ruxios.New(clientOpts...), nil
}

func newRequest(opts *options, url string) (*ruxios.FetchBuilder, error) {
	req := ruxios.Fetch(url).Method(opts.method)

	for _, h := range opts.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q, want \"Name: value\"", h)
		}
		req.Header(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	if opts.data != "" {
		if !json.Valid([]byte(opts.data)) {
			return nil, errors.New("--data is not valid JSON")
		}
		req.Body(ruxios.RawValue([]byte(opts.data)))
	}

	return req, nil
}

func fetchOnce(ctx context.Context, p palette, req *ruxios.FetchBuilder, query, schema string) error {
	resp, err := req.Do(ctx)

	var doc ruxios.Value
	switch {
	case err == nil:
		p.printStatus(os.Stdout, resp.Status)
		doc = resp.Data
	case ruxios.IsMethod(err):
		var e *ruxios.Error[ruxios.Value]
		errors.As(err, &e)
		p.printStatus(os.Stdout, e.Status)
		doc = e.Value
	default:
		if status, ok := ruxios.StatusOf(err); ok {
			p.printStatus(os.Stdout, status)
		}
		return err
	}

	printDocument(os.Stdout, doc, query)

	if schema != "" {
		verr := doc.Validate(schema)
		var violations ruxios.ValidationErrors
		switch {
		case verr == nil:
			p.statusOK.Fprintln(os.Stdout, "schema: valid")
		case errors.As(verr, &violations):
			p.printViolations(os.Stdout, violations)
		default:
			return verr
		}
	}

	return err
}
