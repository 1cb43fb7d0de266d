package main

import (
	"boardgame-server/pkg/board"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_StaysOnScreen(t *testing.T) {
	l := board.Generate(12345)
	cols, rows := 80, 24

	glyphs := render(l, cols, rows)
	assert.NotEmpty(t, glyphs)
	for _, g := range glyphs {
		assert.True(t, g.x >= 0 && g.x < cols, "x=%d", g.x)
		assert.True(t, g.y >= 0 && g.y < rows-1, "y=%d overlaps status line", g.y)
	}
}

func TestRender_StartingNumbers(t *testing.T) {
	l := board.Generate(24690)
	glyphs := render(l, 200, 60)

	// Клетки рисуются после ребер, стартовые - цифрами
	circles := glyphs[len(glyphs)-len(l.Circles):]
	for _, idx := range l.StartingSpaces {
		want := rune('0' + l.StartingNumber(idx))
		assert.Equal(t, want, circles[idx].r)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 0, 0, 5, 0, 4},
		{"vertical", 2, 1, 2, 4, 2},
		{"diagonal", 0, 0, 3, 3, 2},
		{"same point", 1, 1, 1, 1, 0},
		{"neighbors", 0, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, line(tt.x0, tt.y0, tt.x1, tt.y1), tt.want)
		})
	}
}

func TestStatusLine(t *testing.T) {
	l := board.Generate(7)
	assert.Contains(t, statusLine(l, 3), "layout 3 | seed 7")
	assert.Contains(t, statusLine(l, 0), "ad hoc | seed 7")
}

func TestFlagPassed(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"absent", nil, false},
		{"explicit zero", []string{"-seed", "0"}, true},
		{"non-zero", []string{"-seed=42"}, true},
		{"other flag only", []string{"-layout", "3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("layoutview", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fs.Int64("seed", 0, "")
			fs.Int("layout", 1, "")
			assert.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, flagPassed(fs, "seed"))
		})
	}
}
