package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/IvanShishkin/collider/internal/config"
	"github.com/IvanShishkin/collider/internal/core"
	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/IvanShishkin/collider/internal/report"
	"github.com/IvanShishkin/collider/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type scanOptions struct {
	patterns         []string
	excludeLightMaps bool
	interactive      bool
	workers          int
	hash             string
	exclude          []string
	reportFormat     string
	outputFile       string
	catalogPath      string
	configFile       string
}

// scanCmd creates the scan command
func scanCmd() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a resources directory for map collisions",
		Long: `Recursively walk a directory, hash every file matching the selected patterns and
group same-named files into critical conflicts and redundant duplicates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.patterns, "patterns", nil, "Include patterns (comma-separated, e.g. *.ymap,*.ybn)")
	cmd.Flags().BoolVar(&opts.excludeLightMaps, "exclude-lightmaps", false, "Ignore lodlights*.ymap and vw_*.ymap")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose file types interactively")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of hashing goroutines (default: CPU cores * 2)")
	cmd.Flags().StringVar(&opts.hash, "hash", "", "Hash algorithm: md5, sha256, xxhash, xxh3 (default: md5)")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "Directory names to skip (comma-separated)")
	cmd.Flags().StringVarP(&opts.reportFormat, "report", "r", "", "Report format: lua, txt, html, md, json, yaml (default: console output)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "YAML file with the pattern catalog")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Config file (YAML)")

	return cmd
}

func runScan(cmd *cobra.Command, opts *scanOptions, args []string) error {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return err
	}

	// Override config with CLI flags
	if len(args) == 1 {
		cfg.Path = args[0]
	}
	if cfg.Path == "" {
		cfg.Path = "."
	}
	if opts.catalogPath != "" {
		cfg.CatalogPath = opts.catalogPath
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.hash != "" {
		cfg.HashAlgorithm = opts.hash
	}
	if len(opts.exclude) > 0 {
		cfg.Exclude = opts.exclude
	}
	if opts.reportFormat != "" {
		cfg.ReportFormat = opts.reportFormat
	}
	if opts.outputFile != "" {
		cfg.OutputFile = opts.outputFile
	}

	catalog, err := patterns.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	// Pattern selection: interactive, then flags, then catalog recommendation
	switch {
	case opts.interactive:
		sel, err := tui.Run(catalog)
		if errors.Is(err, tui.ErrCancelled) {
			yellow.Println("\n  Scan cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		cfg.Patterns = sel.Patterns
		cfg.LightMapExclusion = sel.LightMapExclusion
	case len(opts.patterns) > 0:
		cfg.Patterns = opts.patterns
	case cfg.CatalogPath != "":
		cfg.Patterns, cfg.LightMapExclusion = catalog.Recommended()
	}
	if cmd.Flags().Changed("exclude-lightmaps") {
		cfg.LightMapExclusion = opts.excludeLightMaps
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	generator, err := report.NewGenerator(cfg, logger)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	printBanner()
	gray.Print("  Scanning:  ")
	fmt.Println(cfg.Path)
	gray.Print("  Patterns:  ")
	fmt.Println(strings.Join(cfg.PatternsSnapshot(), ", "))
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scanner := core.NewScanner(cfg, logger)
	scanner.SetCatalog(catalog)
	scanner.SetProgressCallback(newProgressPrinter(isTerminal()))

	results, err := scanner.Scan(ctx)
	if err != nil {
		logger.Error("Scan failed", zap.Error(err))
		return err
	}

	path, err := generator.Generate(results)
	if err != nil {
		// The scan itself succeeded; show it before reporting the write failure
		generator.PrintConsole(results)
		return err
	}

	if path != "" {
		fmt.Println()
		gray.Print("  Conflicts:  ")
		red.Println(results.TotalConflicts())
		gray.Print("  Duplicates: ")
		yellow.Println(results.TotalDuplicates())
		gray.Print("  Report:     ")
		accent.Println(path)
		fmt.Println()
	}

	return nil
}

// newProgressPrinter renders scan progress as a bar, redrawn in place on a terminal
func newProgressPrinter(tty bool) core.ProgressCallback {
	const barWidth = 30
	printed := false

	return func(percent int, message string) {
		if tty && printed {
			fmt.Print("\033[1A\033[K")
		}
		printed = true

		filled := barWidth * percent / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		gray.Print("  Progress:  ")
		fmt.Print("[")
		accent.Print(bar)
		fmt.Printf("] %3d%%  ", percent)
		gray.Println(message)
	}
}
