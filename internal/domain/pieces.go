package domain

import (
	"fmt"
	"strings"
)

// PieceKind - тип фишки
type PieceKind uint8

const (
	KindUnknown PieceKind = iota
	KindHero
	KindSidekick
)

func (k PieceKind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindSidekick:
		return "sidekick"
	}
	return "unknown"
}

// Стартовое здоровье
const (
	HeroHealth     = 15
	SidekickHealth = 6
)

// MaxHealth - значение, к которому здоровье возвращается при сбросе
func (k PieceKind) MaxHealth() int {
	switch k {
	case KindHero:
		return HeroHealth
	case KindSidekick:
		return SidekickHealth
	}
	return 0
}

// Faction - цвет игрока. Не путать с цветом зоны на поле.
type Faction string

const (
	FactionRed    Faction = "red"
	FactionBlue   Faction = "blue"
	FactionGreen  Faction = "green"
	FactionYellow Faction = "yellow"
)

// Factions - порядок передачи хода
var Factions = []Faction{FactionRed, FactionBlue, FactionGreen, FactionYellow}

// PieceID - "hero-red", "sidekick-blue" и т.д.
type PieceID string

// Inactive - позиция фишки вне поля
const Inactive = -1

func NewPieceID(kind PieceKind, faction Faction) PieceID {
	return PieceID(kind.String() + "-" + string(faction))
}

// AllPieces - все фишки: сначала герои, потом помощники
func AllPieces() []PieceID {
	pieces := make([]PieceID, 0, len(Factions)*2)
	for _, kind := range []PieceKind{KindHero, KindSidekick} {
		for _, f := range Factions {
			pieces = append(pieces, NewPieceID(kind, f))
		}
	}
	return pieces
}

// ParsePieceID проверяет строку от клиента
func ParsePieceID(s string) (PieceID, error) {
	id := PieceID(strings.ToLower(strings.TrimSpace(s)))
	if id.Kind() == KindUnknown || id.Faction() == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownPiece, s)
	}
	return id, nil
}

func (p PieceID) parts() (string, string) {
	kind, faction, ok := strings.Cut(string(p), "-")
	if !ok {
		return "", ""
	}
	return kind, faction
}

func (p PieceID) Kind() PieceKind {
	kind, _ := p.parts()
	switch kind {
	case "hero":
		return KindHero
	case "sidekick":
		return KindSidekick
	}
	return KindUnknown
}

// Faction возвращает цвет владельца или "" для неизвестного цвета
func (p PieceID) Faction() Faction {
	_, f := p.parts()
	for _, known := range Factions {
		if Faction(f) == known {
			return known
		}
	}
	return ""
}

func (p PieceID) String() string {
	return string(p)
}
