package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTERM_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTERM_LOG_FILE" env-default:""`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BotDelay time.Duration `yaml:"bot-delay" env:"TICTACTERM_BOT_DELAY" env-default:"600ms"`
	NoColor  bool          `yaml:"no-color" env:"TICTACTERM_NO_COLOR" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file. A missing file
// is fine for an installed binary; environment variables and defaults
// take over.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
