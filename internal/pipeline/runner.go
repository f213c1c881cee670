package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/baramlab/aqlens/internal/contracts"
)

// Runner sequences the five preprocessing stages in their required order
// ⭐ SSOT: 전처리 단계 순서는 여기서만 정의
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a new pipeline runner.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{
		log: log.With().Str("component", "pipeline.runner").Logger(),
	}
}

// Run executes impute → dedupe → cap-outliers → normalize → engineer on a
// copy of the input. The order is load-bearing: capping assumes imputed
// values and normalization assumes capped values.
func (r *Runner) Run(records []contracts.Record) ([]contracts.EngineeredRecord, error) {
	if len(records) == 0 {
		return nil, contracts.ErrEmptyInput
	}

	imputed := Impute(records)
	r.log.Debug().Int("rows", len(imputed)).Msg("missing values imputed")

	deduped := Dedupe(imputed)
	r.log.Debug().
		Int("rows", len(deduped)).
		Int("removed", len(imputed)-len(deduped)).
		Msg("duplicates removed")

	capped := CapOutliers(deduped)
	r.log.Debug().Int("rows", len(capped)).Msg("outliers capped")

	normalized := Normalize(capped)
	r.log.Debug().Int("rows", len(normalized)).Msg("columns normalized")

	engineered := Engineer(normalized)

	r.log.Info().
		Int("rows_in", len(records)).
		Int("rows_out", len(engineered)).
		Msg("preprocessing completed")

	return engineered, nil
}
