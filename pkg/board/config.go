package board

import (
	"errors"
	"fmt"
)

// Константы генерации по умолчанию
const (
	DefaultWidth                 = 900
	DefaultHeight                = 500
	DefaultNumCircles            = 45
	DefaultCircleSize            = 60
	DefaultMinDistance           = 25
	DefaultMaxConnectionDistance = 160
	DefaultMaxConnections        = 4
	DefaultExtraEdgeChance       = 0.25
	DefaultSpread                = 200
	DefaultAttempts              = 1000
)

// Config - неизменяемые параметры генератора
type Config struct {
	Width  float64
	Height float64

	// NumCircles - целевое число клеток. Фактическое может быть меньше.
	NumCircles int
	// CircleSize - диаметр клетки, одинаковый для всего расклада
	CircleSize float64
	// MinDistance - зазор между краями соседних клеток
	MinDistance float64
	// Padding - отступ от краев холста (по умолчанию равен диаметру)
	Padding float64
	// Spread - ширина окна случайного сдвига от центра зоны
	Spread float64
	// Attempts - лимит попыток на одну клетку
	Attempts int

	// MaxConnectionDistance - дальше этого дополнительные ребра не проводятся
	MaxConnectionDistance float64
	// MaxConnections - предел степени вершины для дополнительных ребер
	MaxConnections int
	// ExtraEdgeChance - вероятность добавить дополнительное ребро
	ExtraEdgeChance float64

	Zones []ZoneCenter
}

// DefaultConfig создает конфиг по умолчанию
func DefaultConfig() Config {
	return Config{
		Width:                 DefaultWidth,
		Height:                DefaultHeight,
		NumCircles:            DefaultNumCircles,
		CircleSize:            DefaultCircleSize,
		MinDistance:           DefaultMinDistance,
		Padding:               DefaultCircleSize,
		Spread:                DefaultSpread,
		Attempts:              DefaultAttempts,
		MaxConnectionDistance: DefaultMaxConnectionDistance,
		MaxConnections:        DefaultMaxConnections,
		ExtraEdgeChance:       DefaultExtraEdgeChance,
		Zones:                 DefaultZoneCenters(),
	}
}

var ErrInvalidConfig = errors.New("invalid board config")

// Validate проверяет конфиг при загрузке.
// Сам генератор никогда не падает, но бессмысленные параметры лучше отсечь на старте.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.NumCircles < 0:
		return fmt.Errorf("%w: negative circle count %d", ErrInvalidConfig, c.NumCircles)
	case c.CircleSize <= 0:
		return fmt.Errorf("%w: circle size %g", ErrInvalidConfig, c.CircleSize)
	case c.Attempts <= 0:
		return fmt.Errorf("%w: attempts %d", ErrInvalidConfig, c.Attempts)
	case c.MaxConnections < 1:
		return fmt.Errorf("%w: max connections %d", ErrInvalidConfig, c.MaxConnections)
	case c.ExtraEdgeChance < 0 || c.ExtraEdgeChance > 1:
		return fmt.Errorf("%w: extra edge chance %g", ErrInvalidConfig, c.ExtraEdgeChance)
	case len(c.Zones) == 0:
		return fmt.Errorf("%w: no zone centers", ErrInvalidConfig)
	}

	for _, z := range c.Zones {
		if !z.Color.IsValid() {
			return fmt.Errorf("%w: unknown zone color %q", ErrInvalidConfig, z.Color)
		}
	}
	return nil
}
