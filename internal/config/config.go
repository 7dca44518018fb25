package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis             Redis    `yaml:"redis"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"triqui.db"`
	Opponent          Opponent `yaml:"opponent"`
	Defaults          Defaults `yaml:"defaults"`
}

type Redis struct {
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"REDIS_SNAPSHOT_TTL" env-default:"30m"`
}

// Opponent tunes the computer player.
type Opponent struct {
	ThinkDelay      time.Duration `yaml:"think-delay" env:"OPPONENT_THINK_DELAY" env-default:"1s"`
	WinMessage      string        `yaml:"win-message" env-default:"Oops, the computer won"`
	DrawMessage     string        `yaml:"draw-message" env-default:"It's a tie. Better luck next time!"`
	HistoryPageSize int           `yaml:"history-page-size" env-default:"20"`
}

// Defaults are applied to players that have not saved their own settings.
type Defaults struct {
	Difficulty     string `yaml:"difficulty" env-default:"easy"`
	Sound          bool   `yaml:"sound" env-default:"true"`
	VictoryMessage string `yaml:"victory-message" env-default:"You won!"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
