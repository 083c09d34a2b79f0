package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env         string `yaml:"env" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	MarketDB    `yaml:"market_db"`
	LogConfig   `yaml:"log_config"`
	KafkaConfig `yaml:"kafka"`
	Matching    `yaml:"matching"`
	Offers      `yaml:"offers"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type MarketDB struct {
	Dsn           string `yaml:"dsn" env:"MARKET_DB_DSN"`
	MigrationsDir string `yaml:"migrations_dir" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type KafkaConfig struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"marketplace-events"`
}

type Matching struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout" env-default:"3s"`
}

type Offers struct {
	TTL           time.Duration `yaml:"ttl" env-default:"168h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"10m"`
}

func MustLoad() *MarketplaceConfig {
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
