package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries every tunable of the service. Values come from
// config.yaml when present, with QUIZ_-prefixed environment variables
// taking precedence.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	RabbitMQ RabbitMQConfig
	Quiz     QuizConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type QuizConfig struct {
	BankFile     string
	LoadingDelay time.Duration
	TickInterval time.Duration
}

// Load reads configuration from file and environment.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("mongodb.uri", "")
	v.SetDefault("mongodb.database", "quiz_service")
	v.SetDefault("rabbitmq.uri", "")
	v.SetDefault("rabbitmq.exchange", "")
	v.SetDefault("quiz.bank_file", "")
	v.SetDefault("quiz.loading_delay", time.Second)
	v.SetDefault("quiz.tick_interval", time.Second)

	// Missing config file is fine, environment covers everything.
	_ = v.ReadInConfig()

	return &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			AllowOrigins: v.GetStringSlice("server.allow_origins"),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("mongodb.uri"),
			Database: v.GetString("mongodb.database"),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      v.GetString("rabbitmq.uri"),
			Exchange: v.GetString("rabbitmq.exchange"),
		},
		Quiz: QuizConfig{
			BankFile:     v.GetString("quiz.bank_file"),
			LoadingDelay: v.GetDuration("quiz.loading_delay"),
			TickInterval: v.GetDuration("quiz.tick_interval"),
		},
	}
}
