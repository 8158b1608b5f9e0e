package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"marketsim/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis backs the latest-sample cache. An empty address disables it.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Kafka receives every simulated sample. No brokers disables publishing.
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	// Stripe enables the premium subscription when a secret key is set.
	Stripe configs.Stripe `envPrefix:"STRIPE_"`

	Sim configs.Simulation `envPrefix:"SIM_"`

	Auth configs.Auth `envPrefix:"AUTH_"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Parse()
}

// Parse reads configuration from environment variables only. All fields are
// loaded with their defaults when no variable is provided.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
