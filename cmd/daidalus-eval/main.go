// cmd/daidalus-eval/main.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// daidalus-eval replays an ingestion file through a Daidalus coordinator
// and prints each traffic aircraft's alert level and the ownship's four
// maneuver-guidance bands at every step.
// Usage: daidalus-eval [-config FILE] [-env-config FILE] [-ownship NAME] <ingestion-file.csv>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nasa/daidalus-go/config"
	"github.com/nasa/daidalus-go/daidalus"
	"github.com/nasa/daidalus-go/ingest"
	lg "github.com/nasa/daidalus-go/log"
	"github.com/nasa/daidalus-go/traj"
)

func main() {
	configFile := flag.String("config", "", "persisted parameter file (spec.md §6.2)")
	envConfig := flag.String("env-config", "", "optional viper-overlay config file (yaml/toml/json)")
	ownship := flag.String("ownship", "", "override which aircraft is ownship, by name")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: daidalus-eval [flags] <ingestion-file.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := lg.New(*logLevel, "")

	params := config.Default()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			logger.Errorf("opening config file: %v", err)
			os.Exit(1)
		}
		params, err = config.Load(f, params)
		f.Close()
		if err != nil {
			logger.Errorf("loading config file: %v", err)
			os.Exit(1)
		}
	}
	if *envConfig != "" {
		var err error
		params, err = config.LoadEnvOverlay(*envConfig, params)
		if err != nil {
			logger.Errorf("loading env overlay: %v", err)
			os.Exit(1)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Errorf("opening ingestion file: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	steps, err := ingest.ReadAll(f, ingest.Options{OwnshipOverride: *ownship})
	if err != nil {
		logger.Errorf("reading ingestion file: %v", err)
		os.Exit(1)
	}

	d := daidalus.New(params)
	for _, step := range steps {
		if len(step.States) == 0 {
			continue
		}
		d.SetOwnship(step.States[0])
		for _, tr := range step.States[1:] {
			d.AddTraffic(tr)
		}

		fmt.Printf("=== step %s ===\n", step.Time.Format("15:04:05"))
		for _, tr := range step.States[1:] {
			level := d.AlertLevel(tr.ID, step.Time)
			fmt.Printf("  %-12s alert level %d\n", tr.ID, level)
		}

		for _, dim := range []traj.Dimension{traj.Direction, traj.HorizontalSpeed, traj.VerticalSpeed, traj.Altitude} {
			result := d.Bands(dim, step.Time)
			fmt.Printf("  %-16s preferred=%.2f active=%s\n", dim, result.Preferred, result.ActiveInterval().Region)
			for _, iv := range result.Intervals {
				fmt.Printf("      [%8.2f, %8.2f] %s\n", iv.Lo, iv.Hi, iv.Region)
			}
		}

		if d.Log.HasMessage() {
			for _, m := range d.Log.Messages() {
				logger.Warnf("%s", m)
			}
			d.Log.Clear()
		}
	}
}
