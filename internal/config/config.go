package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis    `yaml:"redis"`
	Postgres   Postgres `yaml:"postgres"`
	Kafka      Kafka    `yaml:"kafka"`
	Engine     Engine   `yaml:"engine"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

type Postgres struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN" env-default:""`
}

// Kafka - analytics are disabled when Brokers is empty.
type Kafka struct {
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
	Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"gomoku-events"`
}

type Engine struct {
	AIStrategy   string  `yaml:"ai-strategy" env:"ENGINE_AI_STRATEGY" env-default:"heuristic"`
	HintStrategy string  `yaml:"hint-strategy" env:"ENGINE_HINT_STRATEGY" env-default:"random"`
	Seed         int64   `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
	Jitter       float64 `yaml:"jitter" env:"ENGINE_JITTER" env-default:"2"`
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
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Kafka) Enabled() bool {
	return strings.TrimSpace(that.Brokers) != ""
}

// BrokerList - splits the comma separated broker addresses.
func (that *Kafka) BrokerList() []string {
	var brokers []string
	for _, broker := range strings.Split(that.Brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return brokers
}
