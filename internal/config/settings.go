package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
	KeyOutputFormat = "output.format"
	KeyOutputDir    = "output.dir"
	KeyInputs       = "inputs"

	EnvPrefix = "IMMOCALC"
)

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"file"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// Settings holds CLI settings resolved from flags, environment and settings file.
type Settings struct {
	Logging LoggingConfig `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Inputs  string        `mapstructure:"inputs"`
}

// NewViper creates a viper instance with defaults and IMMOCALC_* environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOutputFormat, "console")
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyInputs, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional settings file and decodes all layers into Settings.
// Precedence: bound flags, environment, settings file, defaults.
func LoadSettings(v *viper.Viper, settingsFile string) (*Settings, error) {
	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &s, nil
}
