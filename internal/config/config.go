package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dailycheck/internal/model"
)

const (
	dirName   = ".dailycheck"
	fileName  = "config.yaml"
	envPrefix = "DAILYCHECK"
)

var validThemes = map[string]bool{
	"classic": true,
	"neon":    true,
	"mono":    true,
}

type Config struct {
	DBPath            string    `mapstructure:"db_path" yaml:"db_path"`
	Theme             string    `mapstructure:"theme" yaml:"theme"`
	DefaultRecurrence string    `mapstructure:"default_recurrence" yaml:"default_recurrence"`
	Log               LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File is where logs go. "-" means stderr, empty disables logging.
	File string `mapstructure:"file" yaml:"file"`
}

// DefaultConfig keeps everything under ~/.dailycheck.
func DefaultConfig() *Config {
	dir := GlobalDir()
	return &Config{
		DBPath:            filepath.Join(dir, "labels.db"),
		Theme:             "classic",
		DefaultRecurrence: string(model.Daily),
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "dailycheck.log"),
		},
	}
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if !validThemes[strings.ToLower(c.Theme)] {
		return fmt.Errorf("invalid theme %q: must be one of classic, neon, mono", c.Theme)
	}
	if _, err := model.ParseRecurrence(c.DefaultRecurrence); err != nil {
		return fmt.Errorf("default_recurrence: %w", err)
	}
	return nil
}

// Recurrence returns the validated default recurrence.
func (c Config) Recurrence() model.Recurrence {
	r, err := model.ParseRecurrence(c.DefaultRecurrence)
	if err != nil {
		return model.Daily
	}
	return r
}

// Load merges, in order: defaults, the global file, the project file (or the
// explicit path when given), then DAILYCHECK_* environment variables.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("default_recurrence", def.DefaultRecurrence)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	paths := []string{GlobalConfigPath(), ProjectConfigPath()}
	if explicitPath != "" {
		paths = []string{explicitPath}
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) && explicitPath == "" {
				continue
			}
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
		v.SetConfigFile(p)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	if cfg.Log.File != "-" {
		cfg.Log.File = expandHome(cfg.Log.File)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, creating parents.
// An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	content := "# dailycheck configuration\n" +
		"# theme: classic | neon | mono\n" +
		"# default_recurrence: day | week | month\n" +
		"# log.file: path, \"-\" for stderr, empty to disable\n" + string(b)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// GlobalDir is ~/.dailycheck, or ./.dailycheck without a home directory.
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

func GlobalConfigPath() string {
	return filepath.Join(GlobalDir(), fileName)
}

func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, dirName, fileName)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
