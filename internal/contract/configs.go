package contract

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/huangsam/rangemerge/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = -1 // shortest representation that round-trips
	MaxPrecision     = 6
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "warn"
	DefaultColor     = "auto"
	StdinPath        = "-"
)

// ErrInvalidConfig is wrapped by every validation failure from ProcessAndValidate.
var ErrInvalidConfig = errors.New("invalid config")

// validate is shared because validator caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a merge.
// This struct is the "final, validated" config.
type Config struct {
	InputPath    string             // File to read ranges from, or "-" for stdin
	InlineRanges string             // Ranges passed directly via --ranges
	InputFormat  schema.InputFormat `validate:"oneof=json csv parquet"`
	Threshold    float64            // Raw threshold; the merge pipeline coerces it
	Output       schema.OutputMode  `validate:"oneof=text json csv parquet"`
	OutputFile   string
	Precision    int    `validate:"min=-1,max=6"`
	LogLevel     string `validate:"oneof=trace debug info warn error"`
	Addr         string `validate:"required"`

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Ranges      string `mapstructure:"ranges"`
	InputFormat string `mapstructure:"input-format"`
	Threshold   string `mapstructure:"threshold"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Precision   int    `mapstructure:"precision"`
	Color       string `mapstructure:"color"`
	LogLevel    string `mapstructure:"log-level"`
	Addr        string `mapstructure:"addr"`
}

// ReadsStdin reports whether ranges come from standard input.
func (c *Config) ReadsStdin() bool {
	return c.InlineRanges == "" && (c.InputPath == "" || c.InputPath == StdinPath)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := processThreshold(cfg, input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("%w: parquet output requires --output-file", ErrInvalidConfig)
	}
	if cfg.InputFormat == schema.ParquetIn && cfg.InlineRanges != "" {
		return fmt.Errorf("%w: --ranges cannot be combined with parquet input", ErrInvalidConfig)
	}
	return nil
}

// validateSimpleInputs copies and normalizes the flat string and int inputs.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = strings.TrimSpace(input.InputPathStr)
	cfg.InlineRanges = strings.TrimSpace(input.Ranges)
	if cfg.InputPath != "" && cfg.InlineRanges != "" {
		return fmt.Errorf("cannot read ranges from both %q and --ranges", cfg.InputPath)
	}

	cfg.InputFormat = schema.InputFormat(strings.ToLower(strings.TrimSpace(input.InputFormat)))
	if cfg.InputFormat == "" {
		cfg.InputFormat = schema.JSONIn
	}
	if _, ok := schema.ValidInputFormats[cfg.InputFormat]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be json, csv, parquet", input.InputFormat)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet", input.Output)
	}
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)

	if input.Precision < -1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between -1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	colorStr := input.Color
	if colorStr == "" {
		colorStr = DefaultColor
	}
	useColors, err := ParseColorString(colorStr)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return nil
}

// processThreshold parses the threshold string. A value that parses but is
// negative or non-finite is kept and warned about: the merge pipeline clamps
// it to 0 rather than failing.
func processThreshold(cfg *Config, input *ConfigRawInput) error {
	raw := strings.TrimSpace(input.Threshold)
	if raw == "" {
		cfg.Threshold = 0
		return nil
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid threshold '%s': %w", input.Threshold, err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		LogWarn("Threshold will be treated as 0", fmt.Errorf("received %s", raw))
	}
	cfg.Threshold = t
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
