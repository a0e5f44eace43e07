// Command watttrace is a minimal, non-core CLI consumer of the
// watttrace package: construct the library type directly and print its
// result. Flag shape (a path, an optional language override, an output
// format) follows original_source's argparse-based CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/report"
	"github.com/wattrace/analyzer-core/internal/scan"
	watttrace "github.com/wattrace/analyzer-core"
)

func main() {
	var (
		langFlag = flag.String("lang", "", "language override: python, java, c, cpp, javascript, typescript")
		format   = flag.String("format", "json", "output format: json or yaml")
		syncOnly = flag.Bool("sync", false, "always use the textual fallback walker, skipping the parser registry")
		extRoot  = flag.String("extension-root", "", "root directory to initialize the parser registry with")
		dirMode  = flag.Bool("dir", false, "treat the path argument as a project directory and scan every recognizable source file under it")
		verbose  = flag.Bool("v", false, "log non-fatal fallback/parse-failure warnings to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: watttrace [flags] <path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	analyzer := watttrace.New(watttrace.WithLogger(logger))
	if err := analyzer.Initialize(*extRoot); err != nil {
		logger.Warn().Err(err).Msg("parser registry initialization failed, continuing with fallback walker only")
	}
	defer analyzer.Dispose()

	override := model.Unknown
	if *langFlag != "" {
		override = model.Language(*langFlag)
	}

	if *dirMode {
		runDirMode(analyzer, path, override, *syncOnly, *format, logger)
		return
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}

	var result watttrace.AnalysisResult
	if *syncOnly {
		result = analyzer.EstimateSync(source, path, override)
	} else {
		result = analyzer.Estimate(context.Background(), source, path, override)
	}

	rep := analyzer.ToSerializable(result, source)
	printReport(rep, *format)
}

// runDirMode implements the CLI's optional project-scan mode: it finds
// the project root the same way a Go/Java/JS/Python tool would, then
// estimates every recognizable source file under it, printing one
// report per file. A missing project root is not fatal — files are
// still walked and estimated with per-file extension/content detection.
func runDirMode(analyzer *watttrace.Analyzer, dir string, override model.Language, syncOnly bool, format string, logger zerolog.Logger) {
	ctx := context.Background()

	if root, ok := scan.FindRoot(dir); ok {
		logger.Info().Str("root", root.Path).Str("marker", root.Marker).Str("module", root.ModulePath).
			Msg("project root detected")
	}

	files, err := scan.Files(ctx, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scanning %s: %v\n", dir, err)
		os.Exit(1)
	}

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable file")
			continue
		}

		var result watttrace.AnalysisResult
		if syncOnly {
			result = analyzer.EstimateSync(source, path, override)
		} else {
			result = analyzer.Estimate(ctx, source, path, override)
		}
		printReport(analyzer.ToSerializable(result, source), format)
	}
}

func printReport(rep watttrace.Report, format string) {
	var out []byte
	var err error
	switch format {
	case "yaml":
		out, err = report.ToYAML(rep)
	default:
		out, err = json.MarshalIndent(rep, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
