package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baramlab/aqlens/pkg/config"
	"github.com/baramlab/aqlens/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aqlens",
	Short: "aqlens - 대기질 데이터 분석 백엔드",
	Long: `aqlens CLI

CSV 대기오염 측정 데이터를 전처리하고 AQI 예측을 수행합니다.
전처리 파이프라인: impute → dedupe → cap-outliers → normalize → engineer

Usage:
  go run ./cmd/aqlens [command]

Examples:
  go run ./cmd/aqlens stats --file readings.csv
  go run ./cmd/aqlens analyze --file readings.csv
  go run ./cmd/aqlens predict --file readings.csv --out predicted.csv
  go run ./cmd/aqlens api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initDeps loads configuration and builds the logger every command shares.
func initDeps() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "console"
	}

	log := logger.New(cfg)
	return cfg, log, nil
}
