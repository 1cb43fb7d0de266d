package main

import (
	"boardgame-server/pkg/board"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

type viewer struct {
	screen  tcell.Screen
	presets *board.Presets
	layout  *board.Layout
	slot    int // 0 - расклад вне кэша
}

func main() {
	seed := flag.Int64("seed", 0, "Layout seed (overrides -layout)")
	slot := flag.Int("layout", 1, "Preset slot 1..9")
	base := flag.Int64("base", board.DefaultBaseSeed, "Base seed of the preset cache")
	flag.Parse()

	v := &viewer{presets: board.NewPresets(board.DefaultConfig(), 9, *base)}
	// -seed 0 - тоже валидный сид, поэтому смотрим на факт передачи флага
	if flagPassed(flag.CommandLine, "seed") {
		v.show(0, board.Generate(*seed))
	} else if !v.selectSlot(*slot) {
		fmt.Fprintf(os.Stderr, "layout %d out of range 1..%d\n", *slot, v.presets.Count())
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	v.screen = screen

	v.draw()
	for v.handle(screen.PollEvent()) {
		v.draw()
	}
}

// flagPassed сообщает, был ли флаг явно указан в командной строке
func flagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (v *viewer) show(slot int, l *board.Layout) {
	v.slot = slot
	v.layout = l
}

func (v *viewer) selectSlot(n int) bool {
	l, ok := v.presets.Get(n)
	if ok {
		v.show(n, l)
	}
	return ok
}

// handle обрабатывает событие. false - выход.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r >= '1' && r <= '9':
			v.selectSlot(int(r - '0'))
		case r == 'n':
			v.show(0, board.Generate(v.layout.Seed+1))
		case r == 'p':
			v.show(0, board.Generate(v.layout.Seed-1))
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()

	for _, g := range render(v.layout, cols, rows) {
		v.screen.SetContent(g.x, g.y, g.r, nil, g.style)
	}

	status := []rune(statusLine(v.layout, v.slot))
	for i := 0; i < cols && i < len(status); i++ {
		v.screen.SetContent(i, rows-1, status[i], nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}
