package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	sumerrors "github.com/alexisbeaulieu97/sumcalc/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. SUMCALC_LOG_LEVEL.
const EnvPrefix = "SUMCALC"

// flagKeys maps command-line flags onto settings keys.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"log-file":       "log.file",
	"theme-file":     "theme.file",
	"theme-fallback": "theme.fallback",
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When set it must exist.
	ConfigFile string
	// Home overrides the user's home directory for defaults and search paths.
	Home string
	// Flags, when non-nil, are bound on top of file and environment values.
	Flags *pflag.FlagSet
}

// Defaults returns the settings used when nothing else is configured.
func Defaults(home string) Settings {
	stateDir := filepath.Join(home, ".sumcalc")
	return Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(stateDir, "sumcalc.log"),
		},
		Theme: ThemeSettings{
			File:     filepath.Join(stateDir, "preferences.yaml"),
			Fallback: "system",
		},
	}
}

// Load resolves settings from defaults, the config file, SUMCALC_*
// environment variables and bound flags, in increasing precedence.
func Load(opts LoadOptions) (*Settings, error) {
	home := opts.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v, Defaults(home))

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "sumcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && opts.ConfigFile == "":
			// No config file is fine; defaults and env still apply.
		case errors.Is(err, os.ErrNotExist):
			return nil, sumerrors.NewStorageError("read", opts.ConfigFile, err)
		default:
			return nil, sumerrors.NewParseError(configPath(v, opts.ConfigFile), extractLine(err), err)
		}
	}

	if opts.Flags != nil {
		for flag, key := range flagKeys {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	settings.Log.Level = strings.ToLower(strings.TrimSpace(settings.Log.Level))
	settings.Log.File = expandHome(settings.Log.File, home)
	settings.Theme.File = expandHome(settings.Theme.File, home)

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("theme.file", d.Theme.File)
	v.SetDefault("theme.fallback", d.Theme.Fallback)
}

func configPath(v *viper.Viper, explicit string) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return explicit
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
