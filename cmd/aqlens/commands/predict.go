package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/baramlab/aqlens/internal/contracts"
	"github.com/baramlab/aqlens/internal/ingest"
	"github.com/baramlab/aqlens/internal/model"
	"github.com/baramlab/aqlens/internal/pipeline"
)

var (
	predictFile  string
	predictOut   string
	predictModel string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "AQI 예측 실행 (mock 모델 2종)",
	Long: `전처리 후 80/20 분할로 두 모델을 평가합니다.

모델 (고정 가중치 mock, 실제 학습 없음):
- Random Forest: 오염물질 가중합 + 계절 항
- XGBoost:       PM_Ratio에 더 큰 가중치

분할은 시드 없는 셔플이므로 실행마다 지표가 달라집니다.

Example:
  go run ./cmd/aqlens predict --file readings.csv
  go run ./cmd/aqlens predict --file readings.csv --out predicted.csv --model xgb`,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringVar(&predictFile, "file", "", "CSV 파일 경로")
	predictCmd.Flags().StringVar(&predictOut, "out", "", "테스트셋 예측 결과 CSV 출력 경로 (선택)")
	predictCmd.Flags().StringVar(&predictModel, "model", "rf", "CSV 출력에 사용할 모델 (rf|xgb)")
	_ = predictCmd.MarkFlagRequired("file")
}

func runPredict(cmd *cobra.Command, args []string) error {
	fmt.Println("=== AQI Prediction ===")

	cfg, log, err := initDeps()
	if err != nil {
		return err
	}

	ds, err := loadDataset(predictFile)
	if err != nil {
		return err
	}

	// Preprocess and split
	runner := pipeline.NewRunner(log.Zerolog())
	engineered, err := runner.Run(ds.Records)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	split := pipeline.TrainTestSplit(engineered, cfg.TrainRatio)
	if len(split.Train) == 0 || len(split.Test) == 0 {
		return fmt.Errorf("dataset too small for a train/test split: %d rows", len(engineered))
	}

	fmt.Printf("\n📊 Split: %d train / %d test rows\n", len(split.Train), len(split.Test))

	// Evaluate both models on the held-out rows
	models := map[string]model.Model{
		"rf":  model.NewRandomForest(),
		"xgb": model.NewXGBoost(),
	}

	for _, key := range []string{"rf", "xgb"} {
		result := model.Evaluate(models[key], split.Test, log.Zerolog())
		printResult(result)
	}

	// Optional CSV export of the test-set predictions
	if predictOut != "" {
		m, ok := models[predictModel]
		if !ok {
			return fmt.Errorf("unknown model %q (valid: rf, xgb)", predictModel)
		}

		rows := make([]contracts.Record, len(split.Test))
		for i, e := range split.Test {
			rows[i] = e.Record
		}

		out, err := ingest.WritePredictions(ds.Header, rows, m.Predict(split.Test))
		if err != nil {
			return fmt.Errorf("export predictions: %w", err)
		}

		if err := os.WriteFile(predictOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", predictOut, err)
		}

		fmt.Printf("\n✅ Predictions written to %s (%s)\n", predictOut, m.Name())
	}

	return nil
}

func printResult(result contracts.ModelResult) {
	fmt.Printf("\n[%s]\n", result.ModelName)
	fmt.Printf("  MAE:  %.4f\n", result.MAE)
	fmt.Printf("  RMSE: %.4f\n", result.RMSE)
	if math.IsNaN(result.R2) {
		fmt.Println("  R²:   undefined (constant actuals)")
	} else {
		fmt.Printf("  R²:   %.4f\n", result.R2)
	}

	fmt.Println("  Feature importance:")
	for _, fi := range result.FeatureImportance {
		fmt.Printf("    %-12s %.2f\n", fi.Feature, fi.Importance)
	}
}
