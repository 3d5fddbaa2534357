package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel      = "info"
	DefaultMaxFileSize   = 100 * 1024 * 1024 // 100MB
	DefaultPreviewLength = 1000
	DefaultOCRLanguage   = "eng"
	DefaultMinOCRWidth   = 1000
	DefaultOCRScale      = 1.5
)

// Config holds all configuration for the lab report analyzer CLI.
type Config struct {
	// InputPaths are the report files to process, from positional args.
	InputPaths []string

	// RulesFile optionally replaces the compiled-in rule table.
	RulesFile string

	// ExportPath, when set, receives an XLSX workbook of all results.
	ExportPath string

	// PreviewLength is the number of extracted-text characters printed
	// per document.
	PreviewLength int

	// OCR configuration
	OCRLanguage string
	MinOCRWidth int
	OCRScale    float64

	// Application configuration
	Version     string
	AppName     string
	LogLevel    string
	MaxFileSize int64 // Maximum report file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PreviewLength: DefaultPreviewLength,
		OCRLanguage:   DefaultOCRLanguage,
		MinOCRWidth:   DefaultMinOCRWidth,
		OCRScale:      DefaultOCRScale,
		Version:       "1.0.0",
		AppName:       "labreport",
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)
	cfg.InputPaths = pflag.Args()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("LABREPORT")
	viper.AutomaticEnv()

	viper.SetDefault("rules", cfg.RulesFile)
	viper.SetDefault("export", cfg.ExportPath)
	viper.SetDefault("preview", cfg.PreviewLength)
	viper.SetDefault("lang", cfg.OCRLanguage)
	viper.SetDefault("minocrwidth", cfg.MinOCRWidth)
	viper.SetDefault("ocrscale", cfg.OCRScale)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("rules", cfg.RulesFile, "JSON file overriding the compiled-in lab rule table")
	pflag.String("export", cfg.ExportPath, "Write an XLSX workbook of all results to this path")
	pflag.Int("preview", cfg.PreviewLength, "Number of extracted-text characters to preview per file")
	pflag.String("lang", cfg.OCRLanguage, "OCR language")
	pflag.Int("minocrwidth", cfg.MinOCRWidth, "Upscale rasters whose narrower dimension is below this many pixels")
	pflag.Float64("ocrscale", cfg.OCRScale, "Upscale factor for small rasters")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum report file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("rules", pflag.Lookup("rules"))
	_ = viper.BindPFlag("export", pflag.Lookup("export"))
	_ = viper.BindPFlag("preview", pflag.Lookup("preview"))
	_ = viper.BindPFlag("lang", pflag.Lookup("lang"))
	_ = viper.BindPFlag("minocrwidth", pflag.Lookup("minocrwidth"))
	_ = viper.BindPFlag("ocrscale", pflag.Lookup("ocrscale"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <report.pdf|report.png|report.jpg> ...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nLab Report Analyzer - extracts lab values from report files and flags abnormal findings\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s report.pdf                        # analyze one report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --export=out.xlsx a.pdf b.png     # batch, with XLSX export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --rules=rules.json scan.jpg       # custom rule table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  LABREPORT_RULES        Rules file\n")
		fmt.Fprintf(os.Stderr, "  LABREPORT_EXPORT       Export path\n")
		fmt.Fprintf(os.Stderr, "  LABREPORT_LANG         OCR language\n")
		fmt.Fprintf(os.Stderr, "  LABREPORT_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  LABREPORT_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.RulesFile = viper.GetString("rules")
	cfg.ExportPath = viper.GetString("export")
	cfg.PreviewLength = viper.GetInt("preview")
	cfg.OCRLanguage = viper.GetString("lang")
	cfg.MinOCRWidth = viper.GetInt("minocrwidth")
	cfg.OCRScale = viper.GetFloat64("ocrscale")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.PreviewLength < 0 {
		return errors.New("preview length cannot be negative")
	}

	if c.MinOCRWidth <= 0 {
		return errors.New("minimum OCR width must be positive")
	}

	if c.OCRScale < 1 {
		return errors.New("OCR scale factor must be at least 1")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Inputs: %d, RulesFile: %s, ExportPath: %s, OCRLanguage: %s, LogLevel: %s, MaxFileSize: %d}",
		len(c.InputPaths), c.RulesFile, c.ExportPath, c.OCRLanguage, c.LogLevel, c.MaxFileSize)
}
