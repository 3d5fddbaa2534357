package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/projectx47612-beep/Test-Reports/internal/analysis"
	"github.com/projectx47612-beep/Test-Reports/internal/config"
	"github.com/projectx47612-beep/Test-Reports/internal/export"
	"github.com/projectx47612-beep/Test-Reports/internal/extract"
	"github.com/projectx47612-beep/Test-Reports/internal/report"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stderr)
	if version != "dev" {
		cfg.Version = version
	}
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if len(cfg.InputPaths) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	rules, err := loadRules(cfg)
	if err != nil {
		log.Fatalf("Failed to load rule table: %v", err)
	}

	acquirer := extract.NewAcquirer(
		extract.NewTesseractEngine(cfg.OCRLanguage),
		extract.WithOCRPreprocessing(cfg.MinOCRWidth, cfg.OCRScale),
		extract.WithDebugLogging(cfg.IsDebug()),
	)
	svc := report.NewService(cfg.MaxFileSize, rules, acquirer)

	var results []*report.Result
	failed := 0
	for _, path := range cfg.InputPaths {
		result, err := svc.ProcessFile(path)
		if err != nil {
			// A bad document must not abort the rest of the batch.
			log.Printf("Skipping %s: %v", path, err)
			failed++
			continue
		}
		printResult(result, cfg.PreviewLength)
		results = append(results, result)
	}

	if len(results) > 1 {
		abnormal := 0
		for _, result := range results {
			if result.Records.Abnormal() {
				abnormal++
			}
		}
		fmt.Printf("\n%d of %d reports contain abnormal findings\n", abnormal, len(results))
	}

	if cfg.ExportPath != "" && len(results) > 0 {
		if err := export.WriteXLSX(cfg.ExportPath, results); err != nil {
			log.Fatalf("Failed to export results: %v", err)
		}
		fmt.Printf("\nResults exported to %s\n", cfg.ExportPath)
	}

	if failed == len(cfg.InputPaths) {
		os.Exit(1)
	}
}

// loadRules returns the rule table, replaced from disk when configured.
func loadRules(cfg *config.Config) (*analysis.Ruleset, error) {
	if cfg.RulesFile != "" {
		return analysis.LoadRulesFile(cfg.RulesFile)
	}
	return analysis.DefaultRuleset(), nil
}

// printResult renders one document's outcome: text preview, result table,
// and the advisory summary.
func printResult(result *report.Result, previewLength int) {
	fmt.Printf("\n=== %s ===\n", result.Name)

	if result.Content.Strategy == extract.StrategyNone {
		fmt.Println("No text could be extracted from this file.")
		return
	}

	fmt.Printf("Extraction strategy: %s\n\n", result.Content.Strategy)
	if previewLength > 0 {
		fmt.Println(preview(result.Content.Text, previewLength))
		fmt.Println()
	}

	if len(result.Records) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Test", "Value", "Reference Range", "Status", "Meaning"})
		for _, rec := range result.Records {
			table.Append([]string{
				rec.Test,
				fmt.Sprintf("%v", rec.Value),
				rec.ReferenceRange,
				rec.StatusDetail,
				rec.Meaning,
			})
		}
		table.Render()
		fmt.Println()
	}

	fmt.Println(result.Summary)
}

// preview returns the first n characters of text, rune-safe.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("Lab Report Analyzer\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
