package main

import (
	"fmt"
	"log"
	"strings"

	"pacbound-go/internal/config"
	"pacbound-go/internal/presenter"
	"pacbound-go/internal/simulation"
	"pacbound-go/internal/stats"
)

func main() {
	// Load configuration
	cfg := config.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	log.Println("Starting PAC bound verification...")

	// Run the Monte Carlo experiments
	fmt.Printf("Running %d simulations...\n", cfg.NSimulations)
	sim := simulation.NewSimulator(cfg.NSimulations, cfg.NSamples, cfg.Seed)
	riskGaps := sim.Run()

	// Empirical quantile and the closed-form bound
	quantile95 := stats.Percentile(riskGaps, 0.95)
	boundVal := stats.PACBound(cfg.NSamples, cfg.H, cfg.Delta)

	printSummary(quantile95, boundVal)

	// Generate the histogram figure
	err := presenter.MakeHistogramPlot(riskGaps, quantile95, boundVal, cfg.Bins, cfg.NSimulations, cfg.NSamples, cfg.PlotPath)
	if err != nil {
		log.Fatal("Error rendering histogram: ", err)
	}
	log.Println("Histogram saved to", cfg.PlotPath)

	if cfg.CSVPath != "" {
		if err := presenter.SaveGapsToCSV(cfg.CSVPath, riskGaps); err != nil {
			log.Printf("Error saving %s: %v", cfg.CSVPath, err)
		}
	}

	if cfg.TermHist {
		fmt.Println("\nRisk gap distribution:")
		presenter.PrintTermHistogram(riskGaps, cfg.Bins)
	}
}

func printSummary(quantile, bound float64) {
	sep := strings.Repeat("-", 30)
	fmt.Println(sep)
	fmt.Printf("Empirical 95%% Quantile: %.5f\n", quantile)
	fmt.Printf("Theoretical PAC Bound:  %.5f\n", bound)
	fmt.Println(sep)
}
