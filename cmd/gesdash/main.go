package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Divaprk/DAaaS-Platform-G36/cmd/gesdash/ui"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/config"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/source"
	"github.com/Divaprk/DAaaS-Platform-G36/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	csvPath    string
	endpoint   string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive dashboard; subcommands cover the
// non-interactive analytics.
var rootCmd = &cobra.Command{
	Use:   "gesdash",
	Short: "Graduate Employment Survey dashboard",
	Long: `gesdash visualizes graduate employment survey statistics: salaries,
employment rates, and relative course standing, from a local CSV dataset or
the remote analytics endpoint.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if csvPath != "" {
			cfg.Source.CSVPath = csvPath
		}
		if endpoint != "" {
			cfg.Source.Endpoint = endpoint
		}

		// The interactive dashboard owns the terminal; route logs to the
		// configured file or drop them rather than corrupting the UI.
		interactive := cmd.Name() == "gesdash"
		logger, err = buildLogger(interactive)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context())
	},
}

func buildLogger(interactive bool) (*zap.Logger, error) {
	if interactive && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if verbose || cfg.Logging.Level == "debug" {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if cfg.Logging.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	if cfg.Logging.File != "" {
		zc.OutputPaths = []string{cfg.Logging.File}
	}
	return zc.Build()
}

// buildSource picks the configured record source: CSV path wins, then the
// endpoint.
func buildSource() (source.Source, error) {
	if cfg.Source.CSVPath != "" {
		return source.NewCSVFile(cfg.Source.CSVPath, logger), nil
	}
	if cfg.Source.Endpoint != "" {
		return source.NewEndpoint(cfg.Source.Endpoint, logger), nil
	}
	return nil, fmt.Errorf("no record source configured: set source.csv_path or source.endpoint (or --csv / --endpoint)")
}

// loadRecords loads from the configured source, falling back to the latest
// cached snapshot when the source is unreachable.
func loadRecords(ctx context.Context) (*source.Result, error) {
	src, err := buildSource()
	if err != nil {
		return nil, err
	}

	res, err := src.Load(ctx)
	if err == nil {
		return res, nil
	}

	st, openErr := store.Open(cfg.Cache.Path)
	if openErr != nil {
		return nil, err
	}
	defer st.Close()

	snap, cacheErr := st.Latest(ctx)
	if cacheErr != nil {
		return nil, err
	}
	logger.Warn("source unavailable, using cached snapshot",
		zap.Error(err),
		zap.String("snapshot", snap.ID),
		zap.Time("fetched_at", snap.FetchedAt))
	return &source.Result{
		Records:   snap.Records,
		Summary:   snap.Summary,
		Origin:    snap.Origin + " (cached)",
		FetchedAt: snap.FetchedAt,
	}, nil
}

func runDashboard(ctx context.Context) error {
	src, err := buildSource()
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, src, cfg.Mode(), cfg.Metric(), logger)
	prog := tea.NewProgram(model, tea.WithAltScreen())

	// Re-feed the dashboard when a watched CSV dataset changes on disk.
	if csv, ok := src.(*source.CSVFile); ok && cfg.Source.Watch {
		watcher, err := source.NewDatasetWatcher(csv, func(res *source.Result) {
			prog.Send(ui.DatasetReloadedMsg{Result: res})
		}, logger)
		if err != nil {
			return fmt.Errorf("start dataset watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("start dataset watcher: %w", err)
		}
		defer watcher.Stop()
	}

	_, err = prog.Run()
	return err
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gesdash.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "CSV dataset path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "analytics endpoint URL (overrides config)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(tradeoffCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
