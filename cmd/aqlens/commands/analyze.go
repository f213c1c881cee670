package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baramlab/aqlens/internal/contracts"
	"github.com/baramlab/aqlens/internal/metrics"
	"github.com/baramlab/aqlens/internal/pipeline"
	"github.com/baramlab/aqlens/internal/quality"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "전처리 파이프라인 실행 및 탐색적 분석",
	Long: `전처리 파이프라인을 실행하고 상관관계 매트릭스를 출력합니다.

파이프라인 단계 (순서 고정):
  1. impute       결측값을 컬럼 중앙값으로 대체
  2. dedupe       복합 키 기준 중복 제거
  3. cap-outliers IQR 기준 이상치 클램핑
  4. normalize    min-max 정규화
  5. engineer     파생 피처 생성 (Month, PM_Ratio, lag)

Example:
  go run ./cmd/aqlens analyze --file readings.csv`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "CSV 파일 경로")
	_ = analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Exploratory Analysis ===")

	_, log, err := initDeps()
	if err != nil {
		return err
	}

	ds, err := loadDataset(analyzeFile)
	if err != nil {
		return err
	}

	// Raw statistics before any treatment
	rawStats := quality.Describe(ds.Records)
	fmt.Printf("\n📊 Raw: %d rows, %d columns, %d missing, %d duplicates, %d outliers\n",
		rawStats.RowCount, rawStats.ColumnCount,
		rawStats.MissingValues, rawStats.Duplicates, rawStats.Outliers)

	// Preprocessing
	runner := pipeline.NewRunner(log.Zerolog())
	engineered, err := runner.Run(ds.Records)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	fmt.Printf("✅ Preprocessed: %d rows\n", len(engineered))

	// Correlation matrix over the processed columns
	processed := make([]contracts.Record, len(engineered))
	for i, e := range engineered {
		processed[i] = e.Record
	}
	matrix := metrics.Correlations(processed)

	fmt.Println("\n=== Pearson Correlation Matrix ===")
	fmt.Printf("%-12s", "")
	for _, col := range matrix.Columns {
		fmt.Printf("%8.6s", col)
	}
	fmt.Println()
	for i, col := range matrix.Columns {
		fmt.Printf("%-12s", col)
		for j := range matrix.Columns {
			fmt.Printf("%8.2f", matrix.Values[i][j])
		}
		fmt.Println()
	}

	return nil
}
