// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with `env` tags from github.com/caarlos0/env/v11.
// Load also reads a ./.env file once per process through
// github.com/joho/godotenv and caches one parsed value per config type:
//
//	type Config struct {
//		LogLevel  string `env:"EXTKIT_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"EXTKIT_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Parse skips the cache. LoadEnvFiles reads explicit .env files and
// ResetCache forgets cached values, which tests use between cases.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
