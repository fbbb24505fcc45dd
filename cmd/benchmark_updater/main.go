package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/hive"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type updaterTestConfig struct {
	name       string // friendly name for the test, should be unique
	nCells     int64  // number of source cells
	nEffects   int64  // number of registered effects, spread across the cells
	writes     int64  // writes issued while paused, per iteration
	iterations int64  // number of pause/resume cycles
}

func main() {
	log.Print("Starting updater benchmark, please wait...")
	defer log.Print("Finished updater benchmark")

	cfgs := []updaterTestConfig{
		{
			name:       "narrow",
			nCells:     1,
			nEffects:   10,
			writes:     100,
			iterations: 10000,
		},
		{
			name:       "wide",
			nCells:     100,
			nEffects:   100,
			writes:     100,
			iterations: 1000,
		},
		{
			name:       "dense",
			nCells:     10,
			nEffects:   1000,
			writes:     1000,
			iterations: 100,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "cells", "effects", "writes/cycle", "cycles", "time", "replayRate",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		cells := make([]*hive.Cell[int], cfg.nCells)
		deps := make([]hive.Observable, cfg.nCells)
		for i := range cells {
			cells[i] = hive.New(i)
			deps[i] = cells[i]
		}

		updater := hive.NewUpdater()
		replayed := int64(0)
		for i := int64(0); i < cfg.nEffects; i++ {
			dep := deps[i%cfg.nCells]
			updater.Register(func() {
				replayed++
			}, dep)
		}
		replayed = 0

		start := time.Now()
		for i := int64(0); i < cfg.iterations; i++ {
			updater.Pause()
			for j := int64(0); j < cfg.writes; j++ {
				cell := cells[j%cfg.nCells]
				cell.Write(cell.Read() + 1)
			}
			updater.Resume()
		}
		duration := time.Since(start)

		replayRate := float64(replayed) / (float64(duration) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			humanize.Comma(cfg.nCells),
			humanize.Comma(cfg.nEffects),
			humanize.Comma(cfg.writes),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(duration),
			humanize.Comma(int64(replayRate)),
		})
	}
	table.Render() // Send output
}
