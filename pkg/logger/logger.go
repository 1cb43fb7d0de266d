package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер из LOG_LEVEL и LOG_FORMAT.
// Используется в тестах и там, где конфиг еще не прочитан.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure пересоздает глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Configure(logLevel, logFormat string, out io.Writer) {
	Log = logrus.New()

	// 1. Уровень логирования. По умолчанию - "info". Для отладки можно выставить "debug".
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == os.Stdout,
		})
	}

	// 3. Куда писать логи (обычно стандартный вывод).
	Log.SetOutput(out)
}
