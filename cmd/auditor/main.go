package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"boletim-audit/internal/config"
	"boletim-audit/internal/gateway"
	"boletim-audit/internal/usecase"
)

func main() {
	// Define command-line flags
	measurementStr := flag.String("measurement", "", "Comma-separated list of measurement statement files (CSV or XLSX) (required)")
	contractFile := flag.String("contract", "", "Path to the contract price table (CSV or XLSX); built-in table when omitted")
	supportFile := flag.String("support", "", "Path to an optional supporting-evidence table (CSV or XLSX)")
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	tolerance := flag.Float64("tolerance", -1, "Total-mismatch tolerance in currency units; overrides the config file when set")
	flag.Parse()

	if *measurementStr == "" {
		fmt.Println("Error: the -measurement flag is required.")
		flag.Usage()
		os.Exit(1)
	}
	measurementFiles := strings.Split(*measurementStr, ",")

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
	}
	if *tolerance >= 0 {
		cfg.Reconcile.TotalTolerance = *tolerance
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	fileRepo := gateway.NewFileTableRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	auditUseCase := usecase.NewReconciliationUseCase(fileRepo, cfg)

	// --- Execute the Usecase ---
	report, err := auditUseCase.Audit(context.Background(), measurementFiles, *contractFile, *supportFile)
	if err != nil {
		log.Fatalf("Audit failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
