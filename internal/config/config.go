package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Decision DecisionConfig `yaml:"decision" mapstructure:"decision"`
	Random   RandomConfig   `yaml:"random" mapstructure:"random"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DecisionConfig configures criteria evaluation.
type DecisionConfig struct {
	// Optimism is the Hurwicz coefficient, in [0, 1].
	Optimism float64 `yaml:"optimism" mapstructure:"optimism"`
}

// RandomConfig configures random matrix generation. Cells are drawn from
// [Low, High).
type RandomConfig struct {
	Low  int   `yaml:"low" mapstructure:"low"`
	High int   `yaml:"high" mapstructure:"high"`
	Seed int64 `yaml:"seed" mapstructure:"seed"` // 0 = time-seeded
}

// OutputConfig configures how reports are printed.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // table, json or csv
	Color  string `yaml:"color" mapstructure:"color"`   // auto, always or never
}

// BatchConfig configures batch evaluation.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Output formats and color modes accepted by OutputConfig.
var (
	OutputFormats = []string{"table", "json", "csv"}
	ColorModes    = []string{"auto", "always", "never"}
)

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DECIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("decision.optimism", 0.5)
	v.SetDefault("random.low", 1)
	v.SetDefault("random.high", 100)
	v.SetDefault("random.seed", 0)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.color", "auto")
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the configuration is internally consistent. All
// problems are reported together.
func (c *Config) Validate() error {
	var errs []string

	if !(c.Decision.Optimism >= 0 && c.Decision.Optimism <= 1) {
		errs = append(errs, fmt.Sprintf("decision.optimism must be between 0 and 1, got %v", c.Decision.Optimism))
	}
	if c.Random.Low >= c.Random.High {
		errs = append(errs, fmt.Sprintf("random.low (%d) must be less than random.high (%d)", c.Random.Low, c.Random.High))
	}
	if !oneOf(c.Output.Format, OutputFormats) {
		errs = append(errs, fmt.Sprintf("output.format must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.Output.Format))
	}
	if !oneOf(c.Output.Color, ColorModes) {
		errs = append(errs, fmt.Sprintf("output.color must be one of %s, got %q", strings.Join(ColorModes, ", "), c.Output.Color))
	}
	if c.Batch.Concurrency < 1 {
		errs = append(errs, "batch.concurrency must be >= 1")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
