package engine

import (
	"boardgame-server/internal/domain"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/board"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutView(t *testing.T) {
	l := board.Generate(12345)
	view := NewLayoutView(1, l)

	assert.Equal(t, 1, view.Number)
	assert.Equal(t, int64(12345), view.Seed)
	require.Len(t, view.Circles, len(l.Circles))
	assert.Len(t, view.Adjacencies, len(l.Adjacencies))
	assert.Equal(t, l.StartingSpaces, view.StartingSpaces)

	for i, c := range view.Circles {
		assert.Equal(t, len(c.Zones), len(c.ZoneHex))
		assert.Equal(t, l.Circles[i].Zones[0].Hex(), c.ZoneHex[0])
	}
	for n, idx := range view.StartingSpaces {
		assert.Equal(t, n+1, view.Circles[idx].StartingNumber)
	}
}

func TestBuildState(t *testing.T) {
	s := domain.NewSession("s1", 1, board.Generate(12345))
	require.NoError(t, s.Place("sidekick-yellow", 2))
	_, err := s.ChangeHealth("hero-blue", -3)
	require.NoError(t, err)

	logs := []api.LogEntry{{ID: "1", Text: "hello", Type: "INFO"}}
	state := BuildState(s, logs)
	logs[0].Text = "changed"

	assert.Equal(t, "hello", state.Logs[0].Text, "logs are copied")
	assert.Equal(t, "red", state.Session.ActiveFaction)
	require.Len(t, state.Session.Pieces, len(domain.AllPieces()))

	for _, p := range state.Session.Pieces {
		switch p.ID {
		case "sidekick-yellow":
			require.NotNil(t, p.Circle)
			assert.Equal(t, 2, *p.Circle)
			assert.Equal(t, "sidekick", p.Kind)
			assert.Equal(t, domain.SidekickHealth, p.MaxHealth)
		case "hero-blue":
			assert.Nil(t, p.Circle)
			assert.Equal(t, domain.HeroHealth-3, p.Health)
			assert.Equal(t, "blue", p.Faction)
		}
	}

	assert.Nil(t, BuildState(s, nil).Logs)
}
