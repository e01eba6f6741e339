//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/logger"
	"github.com/markkurossi/masking/diag"
	"github.com/markkurossi/masking/env"
	"github.com/markkurossi/masking/fault"
	"github.com/markkurossi/masking/metrics"
	"github.com/markkurossi/masking/rng"
	"github.com/markkurossi/masking/timing"
	"github.com/markkurossi/tabulate"
	"github.com/prometheus/client_golang/prometheus"
)

// consolePin models the error LED on the console.
type consolePin struct {
	on bool
}

func (p *consolePin) Toggle() {
	p.on = !p.on
	if p.on {
		fmt.Fprintf(os.Stderr, "\rLD5 ●")
	} else {
		fmt.Fprintf(os.Stderr, "\rLD5 ○")
	}
}

func main() {
	fVerbose := flag.Bool("v", false, "Verbose output")
	fSeed := flag.String("seed", "",
		"Deterministic ChaCha20 seed as 64 hex digits (simulation only)")
	fTrials := flag.Int("trials", 1000, "Self-test trials per share count")
	fBench := flag.Int("bench", 0, "Benchmark iterations per share count")
	fExample := flag.Bool("example", false, "Print the 2-share worked example")
	fLog := flag.String("log", "", "Write diagnostics to log file")
	flag.Parse()

	log.SetFlags(0)

	var sink diag.Sink = diag.NewLine(os.Stderr)
	if len(*fLog) > 0 {
		f, err := os.OpenFile(*fLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0600)
		if err != nil {
			log.Fatalf("failed to open log file: %s", err)
		}
		l := logger.Init("masking", *fVerbose, false, f)
		defer l.Close()
		sink = diag.NewGLog(l)
	}

	var src rng.Source
	if len(*fSeed) > 0 {
		seed, err := hex.DecodeString(*fSeed)
		if err != nil {
			log.Fatalf("invalid seed: %s", err)
		}
		src, err = rng.NewChaChaSource(seed)
		if err != nil {
			log.Fatal(err)
		}
		src = rng.NewLocked(src)
		fmt.Printf("Using deterministic seed; not for production use\n")
	}

	reg := prometheus.NewRegistry()
	config := &env.Config{
		Rand: src,
		Sink: sink,
		Fault: &fault.Policy{
			Sink:      sink,
			Indicator: fault.NewBlinker(&consolePin{}),
		},
		Metrics: metrics.New(reg),
		Verbose: *fVerbose,
	}

	if *fExample {
		example(config)
	}

	failed := selfTestAll(config, *fTrials)

	if *fBench > 0 {
		t := timing.NewTiming()
		for _, w := range widths {
			w.bench(config, *fBench, t)
		}
		t.Print(os.Stdout)
	}

	if *fVerbose {
		printMetrics(reg)
	}

	if failed {
		os.Exit(1)
	}
}

func printMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		log.Printf("failed to gather metrics: %s", err)
		return
	}
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Metric").SetAlign(tabulate.ML)
	tab.Header("Labels").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			row := tab.Row()
			row.Column(mf.GetName())
			var labels string
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%s ", lp.GetName(), lp.GetValue())
			}
			row.Column(labels)
			row.Column(fmt.Sprintf("%.0f", m.GetCounter().GetValue()))
		}
	}
	tab.Print(os.Stdout)
}
