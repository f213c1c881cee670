package pipeline

import (
	"strings"

	"github.com/baramlab/aqlens/internal/contracts"
)

// Dedupe keeps the first record per composite key {Date, PM25, PM10, NO2,
// SO2, CO}, preserving input order. Records differing only in the remaining
// columns count as duplicates — a deliberately coarse key.
func Dedupe(records []contracts.Record) []contracts.Record {
	seen := make(map[string]bool, len(records))
	out := make([]contracts.Record, 0, len(records))

	for _, rec := range records {
		key := dedupeKey(rec)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec.Clone())
	}

	return out
}

func dedupeKey(rec contracts.Record) string {
	parts := make([]string, len(contracts.DedupeColumns))
	for i, col := range contracts.DedupeColumns {
		parts[i] = rec[col].String()
	}
	return strings.Join(parts, "|")
}
