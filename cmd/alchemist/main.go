// Command alchemist runs a single generation from the command line: it
// factors the seed (argv[1], or the configured default), writes the slice
// image and prints the alchemy report.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"alchemist-server/internal/generator"
	"alchemist-server/internal/shared/config"
	"alchemist-server/internal/shared/logger"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Init()

	cfg := config.GlobalConfig
	seed := cfg.World.DefaultSeed

	if len(os.Args) > 1 {
		parsed, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed must be an integer, got %q\n", os.Args[1])
			os.Exit(1)
		}
		seed = parsed
	}

	service := generator.NewService(cfg.World, slog.Default())

	result, err := service.Generate(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(result.Report)
	fmt.Printf("Slice written to %s\n", result.ArtifactPath)
}
