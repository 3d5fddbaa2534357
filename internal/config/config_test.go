package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("LABREPORT_RULES")
	os.Unsetenv("LABREPORT_EXPORT")
	os.Unsetenv("LABREPORT_PREVIEW")
	os.Unsetenv("LABREPORT_LANG")
	os.Unsetenv("LABREPORT_MINOCRWIDTH")
	os.Unsetenv("LABREPORT_OCRSCALE")
	os.Unsetenv("LABREPORT_LOGLEVEL")
	os.Unsetenv("LABREPORT_MAXFILESIZE")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("DefaultConfig() LogLevel = %v, want %v", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("DefaultConfig() MaxFileSize = %v, want %v", cfg.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.PreviewLength != DefaultPreviewLength {
		t.Errorf("DefaultConfig() PreviewLength = %v, want %v", cfg.PreviewLength, DefaultPreviewLength)
	}
	if cfg.OCRLanguage != DefaultOCRLanguage {
		t.Errorf("DefaultConfig() OCRLanguage = %v, want %v", cfg.OCRLanguage, DefaultOCRLanguage)
	}
	if cfg.MinOCRWidth != DefaultMinOCRWidth {
		t.Errorf("DefaultConfig() MinOCRWidth = %v, want %v", cfg.MinOCRWidth, DefaultMinOCRWidth)
	}
	if cfg.OCRScale != DefaultOCRScale {
		t.Errorf("DefaultConfig() OCRScale = %v, want %v", cfg.OCRScale, DefaultOCRScale)
	}
}

func TestLoadFromFlags_Defaults(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"labreport"}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("LoadFromFlags() OCRLanguage = %v, want %v", cfg.OCRLanguage, "eng")
	}
	if len(cfg.InputPaths) != 0 {
		t.Errorf("LoadFromFlags() InputPaths = %v, want empty", cfg.InputPaths)
	}
}

func TestLoadFromFlags_PositionalArgs(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"labreport", "--loglevel=debug", "a.pdf", "b.png"}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "debug")
	}
	if len(cfg.InputPaths) != 2 || cfg.InputPaths[0] != "a.pdf" || cfg.InputPaths[1] != "b.png" {
		t.Errorf("LoadFromFlags() InputPaths = %v, want [a.pdf b.png]", cfg.InputPaths)
	}
	if !cfg.IsDebug() {
		t.Error("IsDebug() = false, want true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative preview length",
			mutate:  func(c *Config) { c.PreviewLength = -1 },
			wantErr: true,
		},
		{
			name:    "zero min OCR width",
			mutate:  func(c *Config) { c.MinOCRWidth = 0 },
			wantErr: true,
		},
		{
			name:    "downscaling factor",
			mutate:  func(c *Config) { c.OCRScale = 0.5 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
