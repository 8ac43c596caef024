package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultLogLevel     = "info"
	defaultEpsilon      = 1e-6
	defaultOutputFormat = "text"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	config *viper.Viper
	flags  map[string]*pflag.Flag
}

// Load reads config/config.<env>.yaml from the nearest ancestor of the working
// directory holding a config folder, then layers environment variables on top.
// A missing file is not an error; a file that exists but cannot be parsed is.
func Load(env string) (*Config, error) {
	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		slog.Warn("no config file, using environment variables only", "env", env, "err", err.Error())
		configPath = ""
	}

	return loadFile(configPath)
}

func loadFile(configPath string) (*Config, error) {
	viperConfig := viper.New()
	if len(configPath) > 0 {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	return &Config{config: viperConfig}, nil
}

// BindFlags lets command-line flags override both env and file values. Flags
// are matched by name: log-level, epsilon and output.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"flag.log_level": "log-level",
		"flag.epsilon":   "epsilon",
		"flag.output":    "output",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.config.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
		if c.flags == nil {
			c.flags = make(map[string]*pflag.Flag)
		}
		c.flags[key] = flag
	}
	return nil
}

func (c *Config) GetLogLevel() string {
	if c.flagChanged("flag.log_level") {
		return c.config.GetString("flag.log_level")
	}
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

func (c *Config) GetEpsilon() float32 {
	if c.flagChanged("flag.epsilon") {
		return float32(c.config.GetFloat64("flag.epsilon"))
	}
	epsilon := c.config.GetFloat64("EPSILON")
	if epsilon == 0 {
		epsilon = c.config.GetFloat64("compare.epsilon")
	}
	if epsilon <= 0 {
		epsilon = defaultEpsilon
	}

	return float32(epsilon)
}

func (c *Config) GetOutputFormat() string {
	if c.flagChanged("flag.output") {
		return c.config.GetString("flag.output")
	}
	outputFormat := c.config.GetString("OUTPUT_FORMAT")
	if len(outputFormat) == 0 {
		outputFormat = c.config.GetString("output.format")
	}
	if outputFormat != OutputJSON {
		outputFormat = defaultOutputFormat
	}

	return outputFormat
}

// flagChanged reports whether a bound flag was set explicitly; unset flags
// only carry their defaults and must not shadow env or file values.
func (c *Config) flagChanged(key string) bool {
	if c.flags == nil {
		return false
	}
	flag, ok := c.flags[key]
	return ok && flag.Changed
}

// findConfigDir walks up from start to the first directory containing a
// config folder and returns that folder's path.
func findConfigDir(start string) (string, error) {
	for dir := start; ; {
		configDir := filepath.Join(dir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return configDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no config directory above %s", start)
		}
		dir = parent
	}
}

func getConfigPath(env string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	configDir, err := findConfigDir(currentDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, fmt.Sprintf("config.%s.yaml", env))
	if _, err := os.Stat(configPath); err != nil {
		return "", fmt.Errorf("config file %s: %w", configPath, err)
	}

	return configPath, nil
}
