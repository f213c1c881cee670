package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baramlab/aqlens/internal/ingest"
	"github.com/baramlab/aqlens/internal/quality"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "원본 데이터셋 통계 출력",
	Long: `업로드 전 데이터셋의 상태를 요약합니다.

출력 항목:
- 행/열 개수
- 결측값 개수
- 중복 행 개수
- 3σ 기준 이상치 개수

Example:
  go run ./cmd/aqlens stats --file readings.csv`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFile, "file", "", "CSV 파일 경로")
	_ = statsCmd.MarkFlagRequired("file")
}

func runStats(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Dataset Statistics ===")

	cfg, _, err := initDeps()
	if err != nil {
		return err
	}

	ds, err := loadDataset(statsFile)
	if err != nil {
		return err
	}

	stats := quality.Describe(ds.Records)

	fmt.Printf("\n📊 %s\n", statsFile)
	fmt.Printf("  Rows:           %d\n", stats.RowCount)
	fmt.Printf("  Columns:        %d\n", stats.ColumnCount)
	fmt.Printf("  Missing values: %d\n", stats.MissingValues)
	fmt.Printf("  Duplicates:     %d\n", stats.Duplicates)
	fmt.Printf("  Outliers (3σ):  %d\n", stats.Outliers)

	if stats.Clean() {
		fmt.Println("\n✅ Dataset needs no treatment")
	} else {
		fmt.Println("\n⚠️ Dataset needs preprocessing (run: aqlens analyze)")
	}

	// Head preview
	fmt.Printf("\n=== Preview (first %d rows) ===\n", cfg.PreviewRows)
	for i, rec := range ds.Head(cfg.PreviewRows) {
		fmt.Printf("[%d]", i)
		for _, col := range ds.Header {
			if cell, ok := rec[col]; ok {
				fmt.Printf(" %s=%s", col, cell.String())
			}
		}
		fmt.Println()
	}

	return nil
}

// loadDataset reads and parses a CSV file for the analysis commands.
func loadDataset(path string) (*ingest.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	ds, err := ingest.ParseDataset(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return ds, nil
}
