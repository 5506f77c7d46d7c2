package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/wbrown/bgstrip"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] image [image...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Writes <name>-nobg.png next to each input.")
	flag.PrintDefaults()
}

func main() {
	configFile := flag.String("config", "",
		"Path to a JSON tuning file")
	borderWidth := flag.Int("border", bgstrip.DefaultBorderWidth,
		"Width of the border sampled for the background color")
	tolerances := flag.String("tolerances", "10,15,20,25,30,35,40,45,50",
		"Comma separated tolerance sweep, in percent")
	suffix := flag.String("suffix", bgstrip.DefaultSuffix,
		"Suffix added to the output file name")
	engine := flag.String("engine", "go",
		"Keying engine: go or gocv")
	erode := flag.Int("erode", bgstrip.DefaultErodeRadius,
		"Radius of the disk used to erode the alpha edge")
	blur := flag.Float64("blur", bgstrip.DefaultBlurSigma,
		"Sigma of the alpha edge blur, 0 to disable")
	halo := flag.Float64("halo", bgstrip.DefaultHaloThreshold,
		"Color distance under which an edge pixel counts as halo")
	haloLimit := flag.Float64("halo-limit", bgstrip.DefaultThresholds().HaloLimit,
		"Halo ratio above which a hole surge is tolerated")
	timeout := flag.Duration("timeout", bgstrip.DefaultTimeout,
		"Time limit for a single candidate, 0 for none")
	keep := flag.String("keep", "",
		"Directory to keep candidates, sweep chart and contact sheet in")
	strict := flag.Bool("strict", false,
		"Exit with status 2 if any image fails")
	quiet := flag.Bool("quiet", false,
		"Only report errors")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	cfg := bgstrip.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = bgstrip.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags given explicitly override the config file
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "border":
			cfg.BorderWidth = *borderWidth
		case "tolerances":
			tols, err := bgstrip.ParseTolerances(*tolerances)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Tolerances = tols
		case "suffix":
			cfg.Suffix = *suffix
		case "erode":
			cfg.ErodeRadius = *erode
		case "blur":
			cfg.BlurSigma = *blur
		case "halo":
			cfg.HaloThreshold = *halo
		case "halo-limit":
			cfg.Thresholds.HaloLimit = *haloLimit
		case "timeout":
			cfg.TimeoutSeconds = timeout.Seconds()
		}
	})
	if flagErr == nil {
		flagErr = cfg.Validate()
	}
	if flagErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", flagErr)
		os.Exit(1)
	}

	out := io.Writer(os.Stderr)
	if *quiet {
		out = io.Discard
	}
	logger := log.New(out, "", 0)

	opts := cfg.Options()
	switch strings.ToLower(*engine) {
	case "go":
	case "gocv":
		opts = append(opts, bgstrip.WithKeyer(&bgstrip.GocvKeyer{
			ErodeRadius: cfg.ErodeRadius,
			BlurSigma:   cfg.BlurSigma,
		}))
	default:
		fmt.Fprintln(os.Stderr, "Invalid engine, options are go or gocv")
		os.Exit(1)
	}
	opts = append(opts, bgstrip.WithLogger(logger))
	if *keep != "" {
		opts = append(opts, bgstrip.WithDiagnostics(*keep))
	}
	remover := bgstrip.NewRemover(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	failed := 0
	for _, path := range flag.Args() {
		if _, err := remover.Process(ctx, path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, context.Canceled) {
				break
			}
		}
	}
	logger.Printf("Processed %d image(s), %d failed, in %v",
		flag.NArg(), failed, time.Since(start).Round(time.Millisecond))

	if *strict && failed > 0 {
		stop()
		os.Exit(2)
	}
}
