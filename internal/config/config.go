package config

import (
	"boardgame-server/internal/engine"
	"boardgame-server/pkg/board"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях переменных окружения
var ErrInvalidConfig = errors.New("invalid config")

// Config - настройки процесса. Источники по убыванию приоритета:
// флаги (применяет main), переменные окружения, файл .env, значения по умолчанию.
type Config struct {
	Port      string
	Seed      int64
	Layouts   int
	Circles   int
	StaticDir string
	LogLevel  string
	LogFormat string
}

// Default возвращает конфиг по умолчанию
func Default() Config {
	return Config{
		Port:      "8080",
		Seed:      board.DefaultBaseSeed,
		Layouts:   board.DefaultPresetCount,
		Circles:   board.DefaultNumCircles,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load читает .env (или переданные файлы) и переменные окружения.
// Отсутствующий .env не ошибка. Окружение процесса не изменяется.
func Load(files ...string) (Config, error) {
	fromFile := map[string]string{}
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range values {
			fromFile[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok && v != ""
	}

	cfg := Default()
	if v, ok := lookup("BG_PORT"); ok {
		cfg.Port = v
	}
	if v, ok := lookup("BG_STATIC_DIR"); ok {
		cfg.StaticDir = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}

	var err error
	if v, ok := lookup("BG_SEED"); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: BG_SEED=%q", ErrInvalidConfig, v)
		}
	}
	if v, ok := lookup("BG_LAYOUTS"); ok {
		if cfg.Layouts, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%w: BG_LAYOUTS=%q", ErrInvalidConfig, v)
		}
	}
	if v, ok := lookup("BG_CIRCLES"); ok {
		if cfg.Circles, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%w: BG_CIRCLES=%q", ErrInvalidConfig, v)
		}
	}

	return cfg, cfg.Validate()
}

// Validate проверяет значения, которые могли прийти из окружения или флагов
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidConfig, c.Port)
	}
	if c.Layouts < 1 {
		return fmt.Errorf("%w: layouts must be >= 1, got %d", ErrInvalidConfig, c.Layouts)
	}
	if err := c.Engine().Board.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Engine собирает конфиг движка
func (c Config) Engine() engine.Config {
	cfg := engine.NewConfig()
	cfg.Seed = c.Seed
	cfg.LayoutCount = c.Layouts
	cfg.Board.NumCircles = c.Circles
	return cfg
}
