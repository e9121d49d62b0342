package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Console ConsoleConfig `toml:"console"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - пишем в stderr
}

type ConsoleConfig struct {
	Banner bool `toml:"banner"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "warn",
		},
		Console: ConsoleConfig{
			Banner: true,
		},
	}
}

// Load собирает конфигурацию по слоям: значения по умолчанию, TOML-файл,
// .env в рабочем каталоге, переменные окружения.
// Пустой path означает TODO_CONFIG, а если и он не задан - без файла.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TODO_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("reading .env: %w", err)
	}

	cfg.Log.Level = getEnv("TODO_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("TODO_LOG_FILE", cfg.Log.File)
	cfg.Console.Banner = !getEnvBool("TODO_NO_BANNER", !cfg.Console.Banner)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
