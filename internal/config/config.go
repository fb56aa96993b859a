package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

type Config struct {
	LogLevel         string        `yaml:"log-level" env:"CONNECT4_LOG_LEVEL" env-default:"info"`
	BaseAddress      string        `yaml:"base-address" env:"CONNECT4_BASE_ADDRESS" env-default:"https://connect4core.azurewebsites.net/"`
	TeamName         string        `yaml:"team-name" env:"CONNECT4_TEAM_NAME" env-default:"John&James"`
	Password         string        `yaml:"password" env:"CONNECT4_PASSWORD" env-default:"qwelkjdflgkj"`
	PollInterval     time.Duration `yaml:"poll-interval" env:"CONNECT4_POLL_INTERVAL" env-default:"0s"`
	MaxFetchFailures int           `yaml:"max-fetch-failures" env:"CONNECT4_MAX_FETCH_FAILURES" env-default:"5"`
	Journal          Journal       `yaml:"journal"`
}

// Journal - optional redis storage for observed game snapshots.
type Journal struct {
	Enabled bool   `yaml:"enabled" env:"CONNECT4_JOURNAL_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"CONNECT4_JOURNAL_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"CONNECT4_JOURNAL_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Credentials() entity.Credentials {
	return entity.Credentials{
		TeamName: that.TeamName,
		Password: that.Password,
	}
}

func (that *Journal) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
