package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baramlab/aqlens/internal/api"
	"github.com/baramlab/aqlens/internal/api/handlers"
	"github.com/baramlab/aqlens/internal/model"
	"github.com/baramlab/aqlens/internal/pipeline"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

요청마다 업로드된 CSV 하나를 메모리에서 처리하며, 요청 간에
아무것도 저장하지 않습니다.

Endpoints:
  GET  /health               - Health check
  POST /api/dataset/stats    - 원본 통계 + 미리보기
  POST /api/dataset/analyze  - 전처리 + 상관관계 매트릭스
  POST /api/predict          - 분할 후 두 모델 평가

Example:
  go run ./cmd/aqlens api
  go run ./cmd/aqlens api --port 8087`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== aqlens API Server ===")

	// 1. Load config and logger
	cfg, log, err := initDeps()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Build the pipeline and models
	runner := pipeline.NewRunner(log.Zerolog())
	models := []model.Model{
		model.NewRandomForest(),
		model.NewXGBoost(),
	}

	// 3. Create handlers
	datasetHandler := handlers.NewDatasetHandler(runner, cfg, log)
	predictHandler := handlers.NewPredictHandler(runner, models, cfg, log)

	// 4. Create router and server
	router := api.NewRouter(datasetHandler, predictHandler, cfg, log)
	server := api.New(cfg, log, router)

	// 5. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/dataset/stats")
	fmt.Println("  POST /api/dataset/analyze")
	fmt.Println("  POST /api/predict")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	fmt.Println("\n✅ Server stopped")
	return nil
}
