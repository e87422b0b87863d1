package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the config from environment variables only.
type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// FileReader reads a yaml, toml or .env file and then applies environment
// overrides on top of it.
type FileReader struct {
	Path string
}

func NewFileReader(path string) FileReader {
	return FileReader{Path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadConfig(r.Path, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", r.Path, err)
	}
	return cfg, nil
}

// Load picks a FileReader when path is set and an EnvReader otherwise.
func Load(path string) (*Config, error) {
	var r Reader = NewEnvReader()
	if path != "" {
		r = NewFileReader(path)
	}
	return r.Read()
}
