package engine

import "boardgame-server/pkg/board"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Слот N получает сид Seed * N.
	Seed int64
	// LayoutCount - сколько раскладов держать в кэше
	LayoutCount int
	Board       board.Config
}

// NewConfig создает конфиг по умолчанию: 5 слотов от сида 12345
func NewConfig() Config {
	return Config{
		Seed:        board.DefaultBaseSeed,
		LayoutCount: board.DefaultPresetCount,
		Board:       board.DefaultConfig(),
	}
}
