package board

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

// roomyConfig - холст вдвое больше, чтобы 45 клеток гарантированно поместились
func roomyConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 1800
	cfg.Height = 1000
	cfg.Spread = 400
	for i := range cfg.Zones {
		cfg.Zones[i].X *= 2
		cfg.Zones[i].Y *= 2
	}
	return cfg
}

var testSeeds = []int64{1, 2, 3, 12345, 24690, 37035, 49380, 61725, -42}

// reachable возвращает множество клеток, достижимых из start (BFS)
func reachable(l *Layout, start int) mapset.Set[int] {
	visited := mapset.New[int]()
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, n := range l.Adjacent(current) {
			if !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, seed := range testSeeds {
		a := Generate(seed)
		b := Generate(seed)

		assert.Equal(t, a.Circles, b.Circles, "seed %d: circles differ", seed)
		assert.Equal(t, a.Adjacencies, b.Adjacencies, "seed %d: adjacencies differ", seed)
		assert.Equal(t, a.StartingSpaces, b.StartingSpaces, "seed %d: starting spaces differ", seed)
	}
}

func TestGenerate_NonOverlapAndBounds(t *testing.T) {
	cfg := DefaultConfig()

	for _, seed := range testSeeds {
		l := Generate(seed)
		for i, c := range l.Circles {
			assert.Equal(t, i, c.ID)
			assert.Equal(t, cfg.CircleSize, c.Size)

			assert.GreaterOrEqual(t, c.X, cfg.Padding)
			assert.LessOrEqual(t, c.X, cfg.Width-cfg.Padding)
			assert.GreaterOrEqual(t, c.Y, cfg.Padding)
			assert.LessOrEqual(t, c.Y, cfg.Height-cfg.Padding)

			for j := i + 1; j < len(l.Circles); j++ {
				o := l.Circles[j]
				d := math.Hypot(c.X-o.X, c.Y-o.Y)
				assert.GreaterOrEqual(t, d, cfg.CircleSize+cfg.MinDistance,
					"seed %d: circles %d and %d overlap", seed, i, j)
			}
		}
	}
}

func TestGenerate_Connectivity(t *testing.T) {
	for _, seed := range testSeeds {
		l := Generate(seed)
		n := len(l.Circles)
		require.NotZero(t, n)

		assert.Equal(t, n-1, l.SpanningEdges, "seed %d", seed)
		assert.GreaterOrEqual(t, len(l.Adjacencies), n-1, "seed %d", seed)
		assert.Equal(t, n, reachable(l, 0).Size(), "seed %d: graph is not connected", seed)
	}
}

func TestGenerate_EdgesWellFormed(t *testing.T) {
	for _, seed := range testSeeds {
		l := Generate(seed)
		seen := mapset.New[Edge]()

		for _, e := range l.Adjacencies {
			assert.Less(t, e.From, e.To, "seed %d: edge %v not normalized", seed, e)
			assert.GreaterOrEqual(t, e.From, 0)
			assert.Less(t, e.To, len(l.Circles))
			assert.False(t, seen.Has(e), "seed %d: duplicate edge %v", seed, e)
			seen.Put(e)
		}
	}
}

func TestGenerate_DegreeCap(t *testing.T) {
	cfg := DefaultConfig()

	for _, seed := range testSeeds {
		l := Generate(seed)

		treeDegree := make([]int, len(l.Circles))
		for _, e := range l.Adjacencies[:l.SpanningEdges] {
			treeDegree[e.From]++
			treeDegree[e.To]++
		}

		// Дополнительные ребра ставятся только если у обоих концов степень < 4.
		// Остовное дерево само по себе предел не соблюдает.
		for _, e := range l.Adjacencies[l.SpanningEdges:] {
			assert.LessOrEqual(t, l.Degree(e.From), cfg.MaxConnections, "seed %d: node %d", seed, e.From)
			assert.LessOrEqual(t, l.Degree(e.To), cfg.MaxConnections, "seed %d: node %d", seed, e.To)
		}
		for id := range l.Circles {
			assert.LessOrEqual(t, l.Degree(id), max(cfg.MaxConnections, treeDegree[id]), "seed %d: node %d", seed, id)
		}
	}
}

func TestGenerate_ExtraEdgesAreShort(t *testing.T) {
	cfg := DefaultConfig()
	l := Generate(12345)

	for _, e := range l.Adjacencies[l.SpanningEdges:] {
		a, b := l.Circles[e.From], l.Circles[e.To]
		assert.Less(t, math.Hypot(a.X-b.X, a.Y-b.Y), cfg.MaxConnectionDistance)
	}
}

func TestGenerate_Zones(t *testing.T) {
	cfg := DefaultConfig()

	for _, seed := range testSeeds {
		l := Generate(seed)
		for _, c := range l.Circles {
			require.NotEmpty(t, c.Zones)
			assert.LessOrEqual(t, len(c.Zones), 4)

			seen := mapset.New[Color]()
			for _, z := range c.Zones {
				assert.True(t, z.IsValid(), "unknown zone %q", z)
				assert.False(t, seen.Has(z), "duplicate zone %q in circle %d", z, c.ID)
				seen.Put(z)
			}

			// Первая зона - ближайшая
			nearest := cfg.Zones[0]
			for _, zc := range cfg.Zones[1:] {
				if math.Hypot(c.X-zc.X, c.Y-zc.Y) < math.Hypot(c.X-nearest.X, c.Y-nearest.Y) {
					nearest = zc
				}
			}
			assert.Equal(t, nearest.Color, c.Zones[0], "seed %d circle %d", seed, c.ID)
		}
	}
}

func TestGenerate_StartingSpaces(t *testing.T) {
	for _, seed := range testSeeds {
		l := Generate(seed)
		require.LessOrEqual(t, len(l.StartingSpaces), 4)

		// Запоминаем, какие квадранты непусты, чтобы сопоставить порядок
		var nonEmpty []Quadrant
		for _, q := range Quadrants {
			for _, c := range l.Circles {
				if q.Contains(c.X, c.Y, l.Width, l.Height) {
					nonEmpty = append(nonEmpty, q)
					break
				}
			}
		}
		require.Len(t, l.StartingSpaces, len(nonEmpty))

		for i, idx := range l.StartingSpaces {
			c, ok := l.CircleAt(idx)
			require.True(t, ok)
			assert.True(t, nonEmpty[i].Contains(c.X, c.Y, l.Width, l.Height),
				"seed %d: starting space %d (circle %d) outside %s", seed, i+1, idx, nonEmpty[i])
			assert.Equal(t, i+1, l.StartingNumber(idx))
		}
	}
}

func TestGenerate_Scenario12345(t *testing.T) {
	cfg := roomyConfig()

	l := GenerateWith(cfg, 12345)
	require.Len(t, l.Circles, 45)
	assert.GreaterOrEqual(t, len(l.Adjacencies), 44)
	assert.LessOrEqual(t, len(l.StartingSpaces), 4)
	assert.Equal(t, 45, reachable(l, 0).Size())

	again := GenerateWith(cfg, 12345)
	assert.Equal(t, l.Circles, again.Circles)
	assert.Equal(t, l.Adjacencies, again.Adjacencies)
	assert.Equal(t, l.StartingSpaces, again.StartingSpaces)

	other := GenerateWith(cfg, 24690)
	assert.NotEqual(t, l.Circles, other.Circles)
}

func TestGenerate_DefaultCanvasTruncates(t *testing.T) {
	// На холсте 900x500 45 клеток по 60px не помещаются.
	// Генератор молча отдает меньше, но граф все равно связный.
	l := Generate(12345)

	assert.Less(t, len(l.Circles), DefaultNumCircles)
	assert.Greater(t, len(l.Circles), 0)
	assert.Equal(t, len(l.Circles), reachable(l, 0).Size())
}

func TestGenerate_EmptyAndTiny(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCircles = 0
	l := GenerateWith(cfg, 1)
	assert.Empty(t, l.Circles)
	assert.Empty(t, l.Adjacencies)
	assert.Empty(t, l.StartingSpaces)

	cfg.NumCircles = 1
	l = GenerateWith(cfg, 1)
	require.Len(t, l.Circles, 1)
	assert.Empty(t, l.Adjacencies)
	assert.Len(t, l.StartingSpaces, 1)

	cfg.Zones = nil
	l = GenerateWith(cfg, 1)
	assert.Empty(t, l.Circles)
}

func TestGenerate_ImpossibleCanvas(t *testing.T) {
	// Холст меньше самой клетки: ни одного кандидата не пройдет проверку границ
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Height = 100
	cfg.Attempts = 10

	l := GenerateWith(cfg, 7)
	assert.Empty(t, l.Circles)
	assert.Empty(t, l.StartingSpaces)
}

func TestBuilder_StageOrderIndependentStreams(t *testing.T) {
	// Стартовые клетки и доп. ребра берут свои потоки,
	// поэтому результат не зависит от того, вызывался ли WithAdjacencies.
	full := NewLayout(99, DefaultConfig()).WithCircles().WithAdjacencies().WithStartingSpaces().Build()
	noEdges := NewLayout(99, DefaultConfig()).WithCircles().WithStartingSpaces().Build()

	assert.Equal(t, full.StartingSpaces, noEdges.StartingSpaces)
	assert.Empty(t, noEdges.Adjacencies)
}

// Эталонные расклады, снятые с браузерного генератора.
// Доп. ребра там брались из Math.random, поэтому сверяется только остовное дерево.
func TestGenerate_MatchesReferenceLayouts(t *testing.T) {
	type point struct {
		x, y  float64
		zones []Color
	}

	tests := []struct {
		seed     int64
		circles  int
		first    []point
		mst      []Edge
		lastMST  Edge
		starting []int
	}{
		{
			seed:    12345,
			circles: 26,
			first: []point{
				{459.6697688568, 269.2200234160, []Color{Grey, Purple}},
				{219.9213858880, 112.0588348527, []Color{Red}},
				{540.5528313015, 348.7356666476, []Color{Grey, Purple}},
			},
			mst:      []Edge{{16, 24}, {5, 25}, {5, 21}, {13, 24}},
			lastMST:  Edge{17, 19},
			starting: []int{17, 18, 14, 8},
		},
		{
			seed:    24690,
			circles: 22,
			first: []point{
				{770.9057575837, 333.3555658069, []Color{Purple, Orange}},
				{711.3324159570, 156.8844263721, []Color{Orange, Purple}},
				{158.4929237794, 361.1675221659, []Color{Blue}},
			},
			mst:      []Edge{{12, 17}, {7, 18}, {5, 18}, {7, 9}},
			lastMST:  Edge{12, 16},
			starting: []int{7, 6, 4, 12},
		},
		{
			seed:    1,
			circles: 23,
			first: []point{
				{153.8541347440, 380.8484064601, []Color{Blue, Red}},
				{670.0902283005, 104.4755536411, []Color{Orange, Purple}},
				{792.1774188802, 345.3751005884, []Color{Purple, Grey}},
			},
			mst:      []Edge{{6, 20}, {5, 22}, {2, 22}, {12, 22}},
			lastMST:  Edge{4, 17},
			starting: []int{13, 20, 17, 19},
		},
		{
			seed:    7,
			circles: 22,
			first: []point{
				{262.6986529399, 402.4983332679, []Color{Blue, Grey}},
				{93.7568072416, 216.7874002177, []Color{Red}},
				{775.4834614974, 175.9624736197, []Color{Orange, Purple}},
			},
			mst:      []Edge{{2, 4}, {12, 20}, {10, 19}, {13, 21}},
			lastMST:  Edge{8, 18},
			starting: []int{12, 6, 16, 19},
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("seed %d", tt.seed), func(t *testing.T) {
			l := Generate(tt.seed)
			require.Len(t, l.Circles, tt.circles)

			for i, want := range tt.first {
				c := l.Circles[i]
				assert.InDelta(t, want.x, c.X, 1e-9, "circle %d x", i)
				assert.InDelta(t, want.y, c.Y, 1e-9, "circle %d y", i)
				assert.Equal(t, want.zones, c.Zones, "circle %d zones", i)
			}

			require.Equal(t, tt.circles-1, l.SpanningEdges)
			assert.Equal(t, tt.mst, l.Adjacencies[:len(tt.mst)])
			assert.Equal(t, tt.lastMST, l.Adjacencies[l.SpanningEdges-1])
			assert.Equal(t, tt.starting, l.StartingSpaces)
		})
	}
}
