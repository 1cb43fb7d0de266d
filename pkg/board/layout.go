package board

import "slices"

// Circle - размещенная клетка поля
type Circle struct {
	ID    int
	X, Y  float64
	Size  float64
	Zones []Color // первая зона всегда ближайшая
}

// Edge - неориентированная связь двух клеток, всегда From < To
type Edge struct {
	From, To int
}

// NewEdge нормализует пару так, чтобы (a,b) и (b,a) давали одно и то же ребро
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// Layout - готовый расклад поля. После Build не меняется.
type Layout struct {
	Seed   int64
	Width  float64
	Height float64

	Circles     []Circle
	Adjacencies []Edge
	// StartingSpaces - индексы клеток в порядке квадрантов TL, TR, BL, BR
	StartingSpaces []int

	// SpanningEdges - сколько первых ребер Adjacencies образуют остовное дерево
	SpanningEdges int

	neighbors [][]int
}

// CircleAt возвращает клетку по индексу
func (l *Layout) CircleAt(id int) (Circle, bool) {
	if id < 0 || id >= len(l.Circles) {
		return Circle{}, false
	}
	return l.Circles[id], true
}

// Adjacent возвращает соседей клетки в порядке добавления ребер
func (l *Layout) Adjacent(id int) []int {
	if id < 0 || id >= len(l.neighbors) {
		return nil
	}
	return slices.Clone(l.neighbors[id])
}

// Degree - число ребер у клетки
func (l *Layout) Degree(id int) int {
	if id < 0 || id >= len(l.neighbors) {
		return 0
	}
	return len(l.neighbors[id])
}

// InZone проверяет принадлежность клетки зоне
func (l *Layout) InZone(id int, zone Color) bool {
	c, ok := l.CircleAt(id)
	if !ok {
		return false
	}
	return slices.Contains(c.Zones, zone)
}

// StartingNumber возвращает номер стартовой клетки (1..4) или 0
func (l *Layout) StartingNumber(id int) int {
	idx := slices.Index(l.StartingSpaces, id)
	return idx + 1
}

// ZoneText - зоны клетки через "/", как в статусной строке
func (c Circle) ZoneText() string {
	s := ""
	for i, z := range c.Zones {
		if i > 0 {
			s += "/"
		}
		s += string(z)
	}
	return s
}
