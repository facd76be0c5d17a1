package main

// appConfig is read from the environment and an optional ./.env file.
type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"EXTKIT_LOG_LEVEL"`
	LogFormat     string `env:"EXTKIT_LOG_FORMAT"`
	SlugSeparator string `env:"EXTKIT_SLUG_SEPARATOR" envDefault:"-"`
	SlugMaxLength int    `env:"EXTKIT_SLUG_MAX_LENGTH" envDefault:"0"`
}
