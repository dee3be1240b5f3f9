// blindscan sweeps a satellite frontend for transponders and prints one
// descriptor line per discovered signal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edision-open/blindscan/pkg/blindscan"
	"github.com/edision-open/blindscan/pkg/frontend"
	"github.com/edision-open/blindscan/pkg/lockfile"
	"github.com/edision-open/blindscan/pkg/transponder"
)

var (
	startFreq  = flag.Uint("start", blindscan.DefaultStartMHz, "Scan start frequency in MHz")
	stopFreq   = flag.Uint("stop", blindscan.DefaultStopMHz, "Scan stop frequency in MHz")
	minRate    = flag.Uint("min", blindscan.DefaultSymbolRateMinMHz, "Minimum symbol rate to scan in MS/s")
	maxRate    = flag.Uint("max", blindscan.DefaultSymbolRateMaxMHz, "Maximum symbol rate to scan in MS/s")
	vertical   = flag.Bool("vertical", false, "Signal polarity is vertical")
	cband      = flag.Bool("cband", false, "Scan C-band")
	high       = flag.Bool("high", false, "Scan Ku-band high")
	slot       = flag.Int("slot", 0, "NIM slot (0...3)")
	configPath = flag.String("config", "", "YAML scan configuration file")
	basePath   = flag.String("base", frontend.DefaultBase, "Frontend procfs base directory")
	settleTime = flag.Duration("settle", 5*time.Second, "Delay before scanning starts")
	lockPath   = flag.String("lock", "/var/run/blindscan.pid", "Pidfile path for the singleton lock")
	verbose    = flag.Bool("v", false, "Verbose output - log scanner state transitions")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "DVB-S/S2 blind scan for stb frontends\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -slot 1 -vertical              # Scan slot 1, vertical polarity\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -start 1100 -stop 1400 -cband  # Narrow C-band sweep\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config /etc/blindscan.yaml    # Parameters from a config file\n", os.Args[0])
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("blindscan: ")

	if err := run(); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func run() error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	lock, err := lockfile.Acquire(*lockPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Give the tuner time to settle after boot or a channel change
	// before asking it to sweep.
	if *settleTime > 0 {
		select {
		case <-time.After(*settleTime):
		case <-ctx.Done():
			return nil
		}
	}

	feIndex, err := frontend.ResolveSlot(*slot)
	if err != nil {
		// Not fatal: the slot simply has no usable frontend.
		log.Printf("skipping slot %d: %v", *slot, err)
		return nil
	}

	device := frontend.NewWithBase(*basePath, feIndex)
	if !device.Available() {
		log.Printf("skipping %s: no blind scan support", device)
		return nil
	}

	scanner, err := blindscan.New(device, config)
	if err != nil {
		return err
	}

	out := make(chan transponder.Descriptor)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		writer := bufio.NewWriter(os.Stdout)
		for descriptor := range out {
			fmt.Fprintln(writer, descriptor)
			writer.Flush()
		}
	}()

	err = scanner.Run(ctx, out)
	<-printed
	if err != nil {
		return err
	}

	if scanner.State() == blindscan.StateAborted {
		log.Printf("scan aborted")
	}
	return nil
}

// buildConfig merges defaults, the optional config file and explicit
// command line flags, in that order.
func buildConfig() (*blindscan.ScanConfig, error) {
	config := blindscan.DefaultConfig()
	if *configPath != "" {
		loaded, err := blindscan.LoadConfigFile(*configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if *cband && *high {
		return nil, fmt.Errorf("-cband and -high are mutually exclusive")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			config.StartMHz = uint32(*startFreq)
		case "stop":
			config.StopMHz = uint32(*stopFreq)
		case "min":
			config.SymbolRateMinMHz = uint32(*minRate)
		case "max":
			config.SymbolRateMaxMHz = uint32(*maxRate)
		case "vertical":
			if *vertical {
				config.Polarity = transponder.Vertical
			}
		case "cband":
			if *cband {
				config.Band = transponder.BandC
			}
		case "high":
			if *high {
				config.Band = transponder.BandKuHigh
			}
		}
	})

	if *verbose {
		config.DebugLog = log.Printf
	}

	return config, config.Validate()
}
