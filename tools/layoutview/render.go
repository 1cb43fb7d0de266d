package main

import (
	"boardgame-server/pkg/board"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// glyph - одна ячейка терминала
type glyph struct {
	x, y  int
	r     rune
	style tcell.Style
}

var edgeStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// project переводит координаты холста в ячейки терминала.
// Последняя строка экрана занята строкой статуса.
func project(l *board.Layout, cols, rows int, x, y float64) (int, int) {
	if l.Width <= 0 || l.Height <= 0 || cols < 1 || rows < 2 {
		return 0, 0
	}
	cx := int(math.Round(x / l.Width * float64(cols-1)))
	cy := int(math.Round(y / l.Height * float64(rows-2)))
	return min(max(cx, 0), cols-1), min(max(cy, 0), rows-2)
}

// render раскладывает расклад в ячейки: сначала ребра, поверх клетки
func render(l *board.Layout, cols, rows int) []glyph {
	var out []glyph

	for _, e := range l.Adjacencies {
		a, b := l.Circles[e.From], l.Circles[e.To]
		x0, y0 := project(l, cols, rows, a.X, a.Y)
		x1, y1 := project(l, cols, rows, b.X, b.Y)
		for _, p := range line(x0, y0, x1, y1) {
			out = append(out, glyph{x: p[0], y: p[1], r: '·', style: edgeStyle})
		}
	}

	for _, c := range l.Circles {
		x, y := project(l, cols, rows, c.X, c.Y)
		style := tcell.StyleDefault.Foreground(tcell.GetColor(c.Zones[0].Hex())).Bold(true)

		r := '●'
		if n := l.StartingNumber(c.ID); n > 0 {
			r = rune('0' + n)
			style = style.Reverse(true)
		}
		out = append(out, glyph{x: x, y: y, r: r, style: style})
	}

	return out
}

// line - отрезок Брезенхема без концов (концы заняты клетками)
func line(x0, y0, x1, y1 int) [][2]int {
	var points [][2]int
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0

	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if x != x1 || y != y1 {
			points = append(points, [2]int{x, y})
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func statusLine(l *board.Layout, slot int) string {
	where := "ad hoc"
	if slot > 0 {
		where = fmt.Sprintf("layout %d", slot)
	}
	return fmt.Sprintf(" %s | seed %d | circles %d | edges %d | starts %d | 1-9 slot, n/p seed, q quit",
		where, l.Seed, len(l.Circles), len(l.Adjacencies), len(l.StartingSpaces))
}
