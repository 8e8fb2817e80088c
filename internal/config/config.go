package config

import (
	"flag"
	"fmt"
	"time"
)

type Config struct {
	NSimulations int
	NSamples     int
	Delta        float64
	H            int
	Bins         int
	Seed         int64
	PlotPath     string
	CSVPath      string
	TermHist     bool
}

func Parse() *Config {
	cfg := &Config{}

	// define flags
	flag.IntVar(&cfg.NSimulations, "n-simulations", 10000, "number of training sets to generate")
	flag.IntVar(&cfg.NSamples, "n-samples", 200, "size of each training set")
	flag.Float64Var(&cfg.Delta, "delta", 0.05, "confidence parameter, the bound holds with probability 1-delta")
	flag.IntVar(&cfg.H, "h", 1, "VC dimension of the threshold classifier family")
	flag.IntVar(&cfg.Bins, "bins", 50, "number of histogram bins")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "random seed, a fixed value gives a reproducible run")
	flag.StringVar(&cfg.PlotPath, "plot", "pac_bound_hist.pdf", "output path for the histogram figure")
	flag.StringVar(&cfg.CSVPath, "csv", "", "optional CSV output path for the risk-gap sequence")
	flag.BoolVar(&cfg.TermHist, "term-hist", false, "print a terminal histogram of the risk gaps")
	flag.Parse()

	return cfg
}

// Validate checks if the parameters are valid.
func (cfg *Config) Validate() error {
	if cfg.NSimulations < 1 {
		return fmt.Errorf("n-simulations must be positive")
	}
	if cfg.NSamples < 1 {
		return fmt.Errorf("n-samples must be positive")
	}
	if cfg.Delta <= 0 || cfg.Delta >= 1 {
		return fmt.Errorf("delta must be in (0, 1)")
	}
	if cfg.H < 1 {
		return fmt.Errorf("h must be positive")
	}
	if cfg.Bins < 1 {
		return fmt.Errorf("bins must be positive")
	}
	return nil
}
