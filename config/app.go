package config

type App struct {
	Port string `env:"APP_PORT" default:"8080"`
	Env  string `env:"APP_ENV" default:"dev"`
}
