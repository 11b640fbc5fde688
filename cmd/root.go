package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/fffdata/config"
	"github.com/s0up4200/fffdata/fff"
	"github.com/s0up4200/fffdata/filter"
)

var (
	cfgFile   string
	envFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	logFile   io.Closer
	fffClient *fff.Client
	filters   *filter.Manager

	// Command flags
	jsonOutput  bool
	concurrency int
	timeout     time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fffdata",
	Short: "Query matches and clubs from the FFF football API",
	Long: `fffdata is a CLI for the public API of the French Football Federation.
It fetches matches, clubs and any catalog endpoint, filters them with
expressions and prints them as a tree or as JSON.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file of FFF_* environment overrides")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "c", 0, "maximum parallel requests (default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default from config)")

	// Runs after every command that reached its hooks, failed or not
	cobra.OnFinalize(shutdownApp)

	// Add subcommands
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(clubCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// The env file is optional unless set explicitly
	if err := config.LoadEnvFile(envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override output settings from command line if specified
	if cmd.Flags().Changed("json") {
		cfg.Output.JSON = jsonOutput
	}
	if cmd.Flags().Changed("concurrency") {
		if concurrency < 1 {
			return fmt.Errorf("--concurrency must be at least 1, got %d", concurrency)
		}
		cfg.Output.Concurrency = concurrency
	}
	if cmd.Flags().Changed("timeout") {
		if timeout < time.Second {
			return fmt.Errorf("--timeout must be at least 1s, got %s", timeout)
		}
		cfg.API.Timeout = timeout
	}

	// Setup logger
	logger, logFile, err = setupLogger(cfg.Logging)
	if err != nil {
		return err
	}

	// Register named filters from config
	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filters in config: %w", err)
	}

	// Create FFF client
	fffClient, err = fff.NewClient(logger,
		fff.WithBaseURL(cfg.API.BaseURL),
		fff.WithTimeout(cfg.API.Timeout),
		fff.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create FFF client: %w", err)
	}

	logger.Debug().
		Str("base_url", fffClient.BaseURL()).
		Dur("timeout", cfg.API.Timeout).
		Int("filters", len(cfg.Filters)).
		Msg("FFF client ready")

	return nil
}

// shutdownApp releases the client and the log file. It is safe to call
// more than once.
func shutdownApp() {
	if fffClient != nil {
		if err := fffClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close FFF client")
		}
		fffClient = nil
	}
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		logFile = nil
	}
}

// setupLogger configures the zerolog logger. When cfg.File is set, JSON logs
// are also written to a rotated file; the returned closer releases it.
func setupLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
		}
	}

	if cfg.File == "" {
		return zerolog.New(console).With().Timestamp().Logger(), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}

	out := zerolog.MultiLevelWriter(console, rotated)
	return zerolog.New(out).With().Timestamp().Logger(), rotated, nil
}
