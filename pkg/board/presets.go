package board

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultBaseSeed - сид слота N равен N * DefaultBaseSeed
const DefaultBaseSeed = 12345

// DefaultPresetCount - количество слотов раскладов
const DefaultPresetCount = 5

var ErrSlotOutOfRange = errors.New("layout slot out of range")

// Presets - кэш заранее сгенерированных раскладов с номерами 1..N.
// Расклады внутри не мутируются, при перегенерации слот получает новый указатель.
type Presets struct {
	mu      sync.RWMutex
	cfg     Config
	layouts []*Layout // индекс 0 = слот 1
}

// Summary - краткое описание слота
type Summary struct {
	Number         int   `json:"number"`
	Seed           int64 `json:"seed"`
	Circles        int   `json:"circles"`
	Adjacencies    int   `json:"adjacencies"`
	StartingSpaces int   `json:"startingSpaces"`
}

// NewPresets генерирует count раскладов, сид слота i = i * baseSeed
func NewPresets(cfg Config, count int, baseSeed int64) *Presets {
	p := &Presets{
		cfg:     cfg,
		layouts: make([]*Layout, count),
	}
	for i := 1; i <= count; i++ {
		p.layouts[i-1] = GenerateWith(cfg, int64(i)*baseSeed)
	}
	return p
}

// Get возвращает расклад слота number (с единицы)
func (p *Presets) Get(number int) (*Layout, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if number < 1 || number > len(p.layouts) {
		return nil, false
	}
	return p.layouts[number-1], true
}

// Count - число слотов
func (p *Presets) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.layouts)
}

// Config возвращает параметры, с которыми генерируются слоты
func (p *Presets) Config() Config {
	return p.cfg
}

// Regenerate пересобирает слот с новым сидом. Результат детерминирован.
func (p *Presets) Regenerate(number int, seed int64) (*Layout, error) {
	layout := GenerateWith(p.cfg, seed)

	p.mu.Lock()
	defer p.mu.Unlock()

	if number < 1 || number > len(p.layouts) {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrSlotOutOfRange, number, len(p.layouts))
	}
	p.layouts[number-1] = layout
	return layout, nil
}

// Summaries возвращает описания всех слотов по порядку
func (p *Presets) Summaries() []Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]Summary, 0, len(p.layouts))
	for i, l := range p.layouts {
		result = append(result, Summary{
			Number:         i + 1,
			Seed:           l.Seed,
			Circles:        len(l.Circles),
			Adjacencies:    len(l.Adjacencies),
			StartingSpaces: len(l.StartingSpaces),
		})
	}
	return result
}
