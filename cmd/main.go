package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"url-checker/app"
	"url-checker/internal/common"
	"url-checker/internal/config"
	"url-checker/internal/urlfile"
)

var errUsage = errors.New("no URLs given: pass URLs as arguments or use --file")

var (
	urlFile        string
	workerCount    int
	timeoutSeconds float64
	maxRetries     int
	outputPath     string
	metricsListen  string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "url-checker [flags] [URL ...]",
	Short: "Check reachability of a set of URLs concurrently",
	Long: `url-checker probes a list of URLs with a bounded worker pool,
per-request timeouts and a fixed-delay retry policy.

Each completed URL is printed as soon as its check finishes, and the full
set of results is written as a JSON report at the end of the run. A URL is
considered reachable if any HTTP status line is received; 4xx/5xx codes
are recorded verbatim, not treated as failures.

Example:
  url-checker --workers 8 --timeout 3 --retries 1 https://example.com
  url-checker --file sites.txt --output status.json`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&urlFile, "file", "", "file with one URL per line ('#' comments and blank lines are skipped)")
	rootCmd.Flags().IntVar(&workerCount, "workers", runtime.NumCPU(), "number of concurrent workers")
	rootCmd.Flags().Float64Var(&timeoutSeconds, "timeout", 5, "per-request timeout in seconds")
	rootCmd.Flags().IntVar(&maxRetries, "retries", 0, "additional attempts after a failed probe")
	rootCmd.Flags().StringVar(&outputPath, "output", config.DefaultOutputPath, "path of the JSON report")
	rootCmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "optional address to serve prometheus metrics during the run")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	urls := make([]string, 0, len(args))
	if urlFile != "" {
		fileURLs, err := urlfile.ParseFile(urlFile)
		if err != nil {
			return err
		}
		urls = append(urls, fileURLs...)
	}
	urls = append(urls, args...)

	if len(urls) == 0 {
		return errUsage
	}

	cfg, err := config.New(config.Options{
		URLs:          urls,
		WorkerCount:   workerCount,
		Timeout:       time.Duration(timeoutSeconds * float64(time.Second)),
		MaxRetries:    maxRetries,
		OutputPath:    outputPath,
		MetricsListen: metricsListen,
	})
	if err != nil {
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	application := app.NewApplication(
		common.WithLogger(logger),
		common.WithConfig(cfg),
		common.WithEnv(os.Getenv("APP_ENV")),
	)

	if err := application.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	// Blocks until the run completes or a shutdown signal arrives.
	sig := <-application.Done()
	logger.Debug("shutting down", zap.String("signal", sig.String()))

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := application.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop application gracefully: %w", err)
	}

	return nil
}

// newLogger keeps stdout clean for the progress stream; logs go to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
