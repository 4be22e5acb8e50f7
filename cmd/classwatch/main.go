package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/classwatch"
	"github.com/fwojciec/classwatch/goquery"
	cwhttp "github.com/fwojciec/classwatch/http"
	"github.com/fwojciec/classwatch/rod"
	cwslog "github.com/fwojciec/classwatch/slog"
	"github.com/fwojciec/classwatch/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("classwatch"),
		kong.Description("Filter class openings from the registration schedule"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Rules load first: a broken rules file should fail before any fetch.
	rules, err := yaml.Load(cli.Rules)
	if err != nil {
		return err
	}

	var fetcher classwatch.Fetcher
	if cli.Render {
		fetcher, err = rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return err
		}
	} else {
		fetcher = cwhttp.NewFetcher(cwhttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: cwslog.NewLoggingFetcher(fetcher, logger),
		Parser:  goquery.NewParser(),
		Rules:   rules,
	}

	cmd := &WatchCmd{URL: cli.URL}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Rules   string        `short:"r" default:"classwatch.yaml" help:"Path to the YAML rules file"`
	Render  bool          `help:"Fetch with a headless browser instead of plain HTTP"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Log fetch progress to stderr"`
	URL     string        `arg:"" optional:"" help:"Openings page URL (defaults to the registration openings listing)"`
}
