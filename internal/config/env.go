package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Env holds the values read from a .env file.
type Env struct {
	Sources   string
	Templates string
	Assets    string
}

// LoadEnv reads a .env file. A missing file is not an error: values may
// still come from the process environment.
func LoadEnv(path string) (Env, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Env{
		Sources:   v.GetString("SOURCES"),
		Templates: v.GetString("TEMPLATES"),
		Assets:    v.GetString("ASSETS"),
	}, nil
}
