package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nvr-ai/go-energy/config"
	"github.com/nvr-ai/go-energy/energy"
	"github.com/nvr-ai/go-energy/images"
	"github.com/nvr-ai/go-energy/process"
	"github.com/nvr-ai/go-energy/profiler"
)

const usage = `Usage: energy [flags] <path> [gamma] [function] [mode] [space] [lab-to-rgb]

  path        input image file (%s)
  gamma       power curve applied to normalized energy (default 3)
  function    energy | alpha | fillavg (default energy)
  mode        combined | component (default combined)
  space       lab | rgb (default lab)
  lab-to-rgb  yes | no, component LAB only (default no)

Flags:
`

func main() {
	var (
		verbose  bool
		parallel bool
	)
	flag.BoolVar(&verbose, "v", false, "Print per-stage timings and the output checksum")
	flag.BoolVar(&parallel, "parallel", true, "Partition the energy passes across CPU cores")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, formatList())
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Parse(flag.Args())
	if err != nil {
		flag.Usage()
		log.Fatalf("Invalid arguments: %v", err)
	}
	cfg.Parallel = parallel
	cfg.Verbose = verbose

	if cfg.ConvertLabToRGB && cfg.Mode == energy.ModeComponent && cfg.Space == energy.SpaceLAB {
		log.Printf("LAB to RGB output divides RGB values by LAB-space maxima; colors are an approximation")
	}

	var prof *profiler.Profiler
	if cfg.Verbose {
		prof = profiler.New()
	}

	out, err := process.Run(cfg, prof)
	if err != nil {
		log.Fatalf("Failed to process %s: %v", cfg.Path, err)
	}

	fmt.Printf("Wrote %s (mode=%s, space=%s, exponent=%.4f)\n", out, cfg.Mode, cfg.Space, cfg.Exponent)

	if cfg.Verbose {
		prof.Report(os.Stdout)
		if data, err := os.ReadFile(out); err == nil {
			fmt.Printf("Output checksum: %s\n", images.ComputeChecksum(data))
		}
	}
}

// formatList names the decodable input formats.
func formatList() string {
	names := make([]string, 0, len(images.SupportedFormats))
	for _, f := range images.SupportedFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
