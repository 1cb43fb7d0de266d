package board

import (
	"boardgame-server/pkg/utils"
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Смещения сида для независимых потоков случайности.
// Стартовые клетки и дополнительные ребра не должны зависеть от того,
// сколько значений съела расстановка клеток.
const (
	StartingSeedOffset = 999
	EdgeSeedOffset     = 1998
)

// pairDistance - кандидат в ребро для Краскала
type pairDistance struct {
	edge     Edge
	distance float64
}

// LayoutBuilder предоставляет fluent API для сборки расклада.
// Порядок шагов важен: WithCircles -> WithAdjacencies -> WithStartingSpaces.
type LayoutBuilder struct {
	seed int64
	cfg  Config
	rng  *utils.SeededRandom

	circles   []Circle
	edges     []Edge
	edgeSet   mapset.Set[Edge]
	neighbors [][]int
	spanning  int
	starting  []int
}

// NewLayout создает builder для расклада с заданным сидом
func NewLayout(seed int64, cfg Config) *LayoutBuilder {
	return &LayoutBuilder{
		seed:    seed,
		cfg:     cfg,
		rng:     utils.NewSeededRandom(seed),
		circles: make([]Circle, 0, max(cfg.NumCircles, 0)),
		edgeSet: mapset.New[Edge](),
	}
}

// WithCircles расставляет клетки и сразу назначает им зоны.
// Зоны берутся из того же потока, что и координаты, в момент принятия кандидата.
func (b *LayoutBuilder) WithCircles() *LayoutBuilder {
	if len(b.cfg.Zones) == 0 {
		return b
	}

	for i := 0; i < b.cfg.NumCircles; i++ {
		x, y, ok := b.placeCircle()
		if !ok {
			// Не нашли места за лимит попыток - просто пропускаем слот
			continue
		}

		b.circles = append(b.circles, Circle{
			ID:    len(b.circles),
			X:     x,
			Y:     y,
			Size:  b.cfg.CircleSize,
			Zones: b.assignZones(x, y),
		})
	}

	b.neighbors = make([][]int, len(b.circles))
	return b
}

// placeCircle ищет свободную точку рядом со случайным центром зоны
func (b *LayoutBuilder) placeCircle() (float64, float64, bool) {
	size := b.cfg.CircleSize
	half := size / 2
	minGap := size + b.cfg.MinDistance

	for attempt := 0; attempt < b.cfg.Attempts; attempt++ {
		zone := b.cfg.Zones[b.rng.Intn(len(b.cfg.Zones))]
		x := zone.X + (b.rng.Next()-0.5)*b.cfg.Spread
		y := zone.Y + (b.rng.Next()-0.5)*b.cfg.Spread

		// 1. Границы холста с отступом
		if x-half < b.cfg.Padding || x+half > b.cfg.Width-b.cfg.Padding ||
			y-half < b.cfg.Padding || y+half > b.cfg.Height-b.cfg.Padding {
			continue
		}

		// 2. Пересечения с уже стоящими клетками
		overlaps := false
		for _, other := range b.circles {
			if math.Hypot(x-other.X, y-other.Y) < minGap {
				overlaps = true
				break
			}
		}

		if !overlaps {
			return x, y, true
		}
	}

	return 0, 0, false
}

// assignZones: ближайшая зона всегда, остальные - независимыми испытаниями
// с вероятностью 1/(rank+1), пока не набрано k зон.
func (b *LayoutBuilder) assignZones(x, y float64) []Color {
	type zoneDistance struct {
		color    Color
		distance float64
	}

	byDistance := make([]zoneDistance, len(b.cfg.Zones))
	for i, z := range b.cfg.Zones {
		byDistance[i] = zoneDistance{color: z.Color, distance: math.Hypot(x-z.X, y-z.Y)}
	}
	sort.SliceStable(byDistance, func(i, j int) bool {
		return byDistance[i].distance < byDistance[j].distance
	})

	numZones := b.rng.Intn(4) + 1
	zones := []Color{byDistance[0].color}

	for rank := 1; rank < numZones && rank < len(byDistance); rank++ {
		if b.rng.Chance(1 / float64(rank+1)) {
			zones = append(zones, byDistance[rank].color)
		}
	}

	return zones
}

// WithAdjacencies строит минимальное остовное дерево (Краскал),
// а затем добавляет короткие ребра для разнообразия.
func (b *LayoutBuilder) WithAdjacencies() *LayoutBuilder {
	if b.neighbors == nil {
		b.neighbors = make([][]int, len(b.circles))
	}

	pairs := b.pairDistances()

	// 1. Остовное дерево: гарантирует связность минимальным числом ребер
	dsu := newDisjointSet(len(b.circles))
	for _, p := range pairs {
		if dsu.union(p.edge.From, p.edge.To) {
			b.connect(p.edge)
		}
	}
	b.spanning = len(b.edges)

	// 2. Дополнительные ребра между близкими клетками.
	// Отдельный поток, чтобы расклад воспроизводился целиком от одного сида.
	edgeRng := utils.NewSeededRandom(b.seed + EdgeSeedOffset)
	for _, p := range pairs {
		if p.distance >= b.cfg.MaxConnectionDistance {
			// pairs отсортированы, дальше только длиннее
			break
		}
		if b.edgeSet.Has(p.edge) {
			continue
		}
		if b.degree(p.edge.From) < b.cfg.MaxConnections &&
			b.degree(p.edge.To) < b.cfg.MaxConnections &&
			edgeRng.Chance(b.cfg.ExtraEdgeChance) {
			b.connect(p.edge)
		}
	}

	return b
}

// pairDistances возвращает все пары клеток по возрастанию расстояния.
// Сортировка стабильная: при равных расстояниях порядок (i, j) сохраняется.
func (b *LayoutBuilder) pairDistances() []pairDistance {
	n := len(b.circles)
	pairs := make([]pairDistance, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := b.circles[j].X - b.circles[i].X
			dy := b.circles[j].Y - b.circles[i].Y
			pairs = append(pairs, pairDistance{
				edge:     NewEdge(i, j),
				distance: math.Sqrt(dx*dx + dy*dy),
			})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].distance < pairs[j].distance
	})
	return pairs
}

func (b *LayoutBuilder) connect(e Edge) {
	if e.From == e.To || b.edgeSet.Has(e) {
		return
	}
	b.edgeSet.Put(e)
	b.edges = append(b.edges, e)
	b.neighbors[e.From] = append(b.neighbors[e.From], e.To)
	b.neighbors[e.To] = append(b.neighbors[e.To], e.From)
}

func (b *LayoutBuilder) degree(id int) int {
	return len(b.neighbors[id])
}

// WithStartingSpaces выбирает по одной стартовой клетке в каждом непустом квадранте
func (b *LayoutBuilder) WithStartingSpaces() *LayoutBuilder {
	rng := utils.NewSeededRandom(b.seed + StartingSeedOffset)
	b.starting = make([]int, 0, len(Quadrants))

	for _, q := range Quadrants {
		var inQuadrant []int
		for i, c := range b.circles {
			if q.Contains(c.X, c.Y, b.cfg.Width, b.cfg.Height) {
				inQuadrant = append(inQuadrant, i)
			}
		}

		if len(inQuadrant) == 0 {
			continue
		}
		b.starting = append(b.starting, inQuadrant[rng.Intn(len(inQuadrant))])
	}

	return b
}

// Build собирает и возвращает готовый расклад
func (b *LayoutBuilder) Build() *Layout {
	neighbors := b.neighbors
	if neighbors == nil {
		neighbors = make([][]int, len(b.circles))
	}

	return &Layout{
		Seed:           b.seed,
		Width:          b.cfg.Width,
		Height:         b.cfg.Height,
		Circles:        b.circles,
		Adjacencies:    b.edges,
		StartingSpaces: b.starting,
		SpanningEdges:  b.spanning,
		neighbors:      neighbors,
	}
}
