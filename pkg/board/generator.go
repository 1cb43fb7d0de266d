package board

// Generate создает расклад с параметрами по умолчанию.
// Один и тот же сид всегда дает один и тот же расклад.
func Generate(seed int64) *Layout {
	return GenerateWith(DefaultConfig(), seed)
}

// GenerateWith создает расклад по конфигу.
// Ошибок нет: если клеток поместилось меньше или квадрант пуст,
// возвращается то, что удалось собрать.
func GenerateWith(cfg Config, seed int64) *Layout {
	return NewLayout(seed, cfg).
		WithCircles().
		WithAdjacencies().
		WithStartingSpaces().
		Build()
}
