package config

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// Config holds the runtime settings of the todo binary.
type Config struct {
	Env      string `yaml:"env" env:"TODO_ENV" env-default:"prod"`
	LogLevel string `yaml:"log_level" env:"TODO_LOG_LEVEL" env-default:"warn"`
	Theme    string `yaml:"theme" env:"TODO_THEME" env-default:"classic"`
	Title    string `yaml:"title" env:"TODO_TITLE" env-default:"Today's Todos"`
	NoColor  bool   `yaml:"no_color" env:"TODO_NO_COLOR" env-default:"false"`
}
