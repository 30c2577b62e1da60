// Command numbeo prints Numbeo cost-of-living prices for one city as a text table.
//
// Usage:
//
//	numbeo --city "San Francisco, CA" --country "United States" [--api-key KEY]
//
// The API key falls back to NUMBEO_API_KEY from the environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rickgao/numbeo-prices/internal/api"
	"github.com/rickgao/numbeo-prices/internal/config"
	"github.com/rickgao/numbeo-prices/internal/report"
	"github.com/rickgao/numbeo-prices/internal/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1 // transport or API error
	exitConfigError = 2 // missing or invalid input, no request was made
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and maps its error to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, config.ErrInvalid) {
		fmt.Fprint(stderr, cmd.UsageString())
		return exitConfigError
	}
	return exitFailure
}

type rootOptions struct {
	flags      config.Overrides
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "numbeo",
		Short: "Show Numbeo cost-of-living prices for a city",
		Long: "Fetches the Numbeo item catalog and the prices for one city, " +
			"joins them and prints a table sorted by display order and item name.",
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &config.Error{Field: "arguments", Message: err.Error()}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				opts.flags.LogLevel = "debug"
			}

			cfg, err := config.Resolve(config.Sources{
				ConfigPath: opts.configPath,
				EnvFile:    opts.envFile,
				Flags:      opts.flags,
			})
			if err != nil {
				return err
			}

			level, _ := cfg.SlogLevel()
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			return run(cmd.Context(), cfg, logger, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.Error{Field: "flags", Message: err.Error()}
	})

	f := cmd.Flags()
	f.StringVar(&opts.flags.City, "city", "", "city name, e.g. 'San Francisco, CA' (required)")
	f.StringVar(&opts.flags.Country, "country", "", "country name, e.g. 'United States' (required)")
	f.StringVar(&opts.flags.APIKey, "api-key", "", "Numbeo API key (default $"+config.EnvAPIKey+")")
	f.StringVar(&opts.flags.BaseURL, "base-url", "", "Numbeo API base URL (default "+config.DefaultBaseURL+")")
	f.DurationVar(&opts.flags.Timeout, "timeout", 0, "per-request timeout (default 30s)")
	f.BoolVar(&opts.flags.DataPoints, "data-points", false, "add a Data Points column")
	f.StringVar(&opts.flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "shorthand for --log-level debug")
	f.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	f.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file to read "+config.EnvAPIKey+" from")

	return cmd
}

// run fetches the catalog, then the city prices, and writes the table to stdout.
// Nothing is written unless both fetches succeed.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	start := time.Now()
	query := cfg.CityQuery()

	logger.Info("starting",
		"version", version.Version,
		"commit", version.Commit,
		"query", query,
		"api_url", cfg.API.BaseURL,
	)

	client := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	catalog, err := client.GetItems(ctx)
	if err != nil {
		return err
	}

	prices, err := client.GetCityPrices(ctx, query)
	if err != nil {
		return err
	}

	if len(prices.Observations) == 0 {
		logger.Warn("no prices returned for query", "query", query)
	}

	table := report.Build(prices.Name, catalog, prices.Observations, report.Options{
		DataPoints: cfg.Output.DataPoints,
	})
	if _, err := table.WriteTo(stdout); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	logger.Info("done",
		"catalog_items", len(catalog),
		"observations", len(prices.Observations),
		"rows", len(table.Rows),
		"elapsed", time.Since(start),
	)
	return nil
}
