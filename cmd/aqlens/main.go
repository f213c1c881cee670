package main

import (
	"os"

	"github.com/baramlab/aqlens/cmd/aqlens/commands"
)

// main is the entry point for the aqlens CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/aqlens [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
