// cmd/daidalus-view/main.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// daidalus-view is a terminal dashboard that steps a Daidalus coordinator
// through an ingestion file and renders the ownship's current alert
// levels and bands live, one step per tick.
// Usage: daidalus-view [-config FILE] <ingestion-file.csv>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jroimartin/gocui"

	"github.com/nasa/daidalus-go/config"
	"github.com/nasa/daidalus-go/daidalus"
	"github.com/nasa/daidalus-go/ingest"
	"github.com/nasa/daidalus-go/traj"
)

type session struct {
	coordinator *daidalus.Daidalus
	steps       []ingest.Step
	index       int
}

func (s *session) advance() bool {
	if s.index >= len(s.steps) {
		return false
	}
	step := s.steps[s.index]
	s.index++
	if len(step.States) == 0 {
		return true
	}
	s.coordinator.SetOwnship(step.States[0])
	for _, tr := range step.States[1:] {
		s.coordinator.AddTraffic(tr)
	}
	return true
}

func (s *session) render(g *gocui.Gui) error {
	v, err := g.View("status")
	if err != nil {
		return err
	}
	v.Clear()
	if s.index == 0 {
		fmt.Fprintln(v, " no step loaded yet")
		return nil
	}
	step := s.steps[s.index-1]
	fmt.Fprintf(v, " step %s  (%d/%d)   ctrl-c to quit\n", step.Time.Format("15:04:05"), s.index, len(s.steps))

	a, err := g.View("alerts")
	if err != nil {
		return err
	}
	a.Clear()
	fmt.Fprintln(a, " TRAFFIC       LEVEL")
	fmt.Fprintln(a, " ===================")
	for _, tr := range step.States[1:] {
		level := s.coordinator.AlertLevel(tr.ID, step.Time)
		fmt.Fprintf(a, " %-12s  %d\n", tr.ID, level)
	}

	b, err := g.View("bands")
	if err != nil {
		return err
	}
	b.Clear()
	fmt.Fprintln(b, " DIMENSION         PREFERRED   ACTIVE")
	fmt.Fprintln(b, " =========================================")
	for _, dim := range []traj.Dimension{traj.Direction, traj.HorizontalSpeed, traj.VerticalSpeed, traj.Altitude} {
		result := s.coordinator.Bands(dim, step.Time)
		fmt.Fprintf(b, " %-16s  %9.2f   %s\n", dim, result.Preferred, result.ActiveInterval().Region)
	}
	return nil
}

func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " DAIDALUS-VIEW "
	}

	if v, err := g.SetView("alerts", 0, 3, maxX/2-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " ALERTS "
	}

	if v, err := g.SetView("bands", maxX/2, 3, maxX-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " BANDS "
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	configFile := flag.String("config", "", "persisted parameter file (spec.md §6.2)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: daidalus-view [-config FILE] <ingestion-file.csv>")
		os.Exit(1)
	}

	params := config.Default()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			log.Fatalf("opening config file: %v", err)
		}
		params, err = config.Load(f, params)
		f.Close()
		if err != nil {
			log.Fatalf("loading config file: %v", err)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("opening ingestion file: %v", err)
	}
	steps, err := ingest.ReadAll(f, ingest.Options{})
	f.Close()
	if err != nil {
		log.Fatalf("reading ingestion file: %v", err)
	}

	s := &session{coordinator: daidalus.New(params), steps: steps}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	go func() {
		for range time.Tick(time.Second) {
			if !s.advance() {
				return
			}
			g.Update(s.render)
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}
