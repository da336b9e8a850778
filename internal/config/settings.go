package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appDirName = "people"
	configName = "config"
	configType = "toml"
	configFile = configName + "." + configType
	envPrefix  = "PEOPLE"

	currentSchemaVersion = 1

	KeyVersion      = "version"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
	KeyOutputFormat = "output.format"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputTOML  = "toml"
)

type Settings struct {
	Version int            `toml:"version"`
	Log     LogSettings    `toml:"log"`
	Output  OutputSettings `toml:"output"`
}

type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File is a log path; empty means stderr.
	File string `toml:"file"`
}

type OutputSettings struct {
	Format string `toml:"format"`
}

func Defaults() Settings {
	return Settings{
		Version: currentSchemaVersion,
		Log: LogSettings{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Output: OutputSettings{
			Format: OutputTable,
		},
	}
}

// Dir returns the directory holding config.toml, honouring XDG_CONFIG_HOME.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	return filepath.Join(base, appDirName), nil
}

func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// Load reads settings from dir/config.toml, PEOPLE_* environment variables
// and defaults, in decreasing precedence after explicit v.Set calls.
func Load(v *viper.Viper, dir string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := Defaults()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault(KeyVersion, defaults.Version)
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogFormat, defaults.Log.Format)
	v.SetDefault(KeyLogFile, defaults.Log.File)
	v.SetDefault(KeyOutputFormat, defaults.Output.Format)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		Version: v.GetInt(KeyVersion),
		Log: LogSettings{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
			File:   strings.TrimSpace(v.GetString(KeyLogFile)),
		},
		Output: OutputSettings{
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyOutputFormat))),
		},
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	switch s.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q", s.Log.Format)
	}

	if err := ValidateOutputFormat(s.Output.Format); err != nil {
		return err
	}

	return nil
}

func ValidateOutputFormat(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputTOML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or toml)", format)
	}
}
