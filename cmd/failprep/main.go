// Command failprep prepares rural-postman failure-scenario benchmark
// instances: it either recomputes depot placements from battery-range
// coverage, or rebalances the required/non-required edge split.
//
// Usage:
//
//	failprep -mode place -in Failure_Scenarios -out Updated_Failure_Scenarios -factor 2
//	failprep -mode rebalance -in Updated_Failure_Scenarios -out Balanced_Failure_Scenarios
//	failprep -mode place -config instances.yaml
//
// Flags override values from the optional YAML config, which itself
// overrides the built-in gdb/bccm/eglese table.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Eashwar-S/rpp-scenarios/batch"
)

func main() {
	mode := flag.String("mode", "place", "what to do: place (depot placement) or rebalance (edge split)")
	configPath := flag.String("config", "", "optional YAML config with the instance table and paths")
	in := flag.String("in", "", "input base directory (overrides config)")
	out := flag.String("out", "", "output base directory (overrides config)")
	factor := flag.Float64("factor", 0, "radius divisor for depot placement (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := batch.DefaultConfig()
	if *configPath != "" {
		loaded, err := batch.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *in != "" {
		cfg.InputBase = *in
	}
	if *out != "" {
		cfg.OutputBase = *out
	}
	if *factor != 0 {
		cfg.Factor = *factor
	}

	runner, err := batch.NewRunner(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch *mode {
	case "place":
		err = runner.PlaceDepots()
	case "rebalance":
		err = runner.RebalanceAll()
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q (want place or rebalance)\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
