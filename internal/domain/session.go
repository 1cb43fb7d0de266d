package domain

import (
	"boardgame-server/pkg/board"
	"fmt"
)

// Session - состояние одной партии: где стоят фишки, здоровье, ходы.
// Расклад только читается, своя копия состояния у каждой сессии.
//
// Session не потокобезопасна, доступ сериализует движок.
type Session struct {
	ID           string
	LayoutNumber int
	Layout       *board.Layout

	TotalMoves int
	Turn       int
	Status     string

	positions     map[PieceID]int
	health        map[PieceID]int
	activeFaction int
}

// NewSession создает партию: все фишки вне поля, здоровье полное
func NewSession(id string, layoutNumber int, layout *board.Layout) *Session {
	s := &Session{
		ID:           id,
		LayoutNumber: layoutNumber,
		Layout:       layout,
		positions:    make(map[PieceID]int),
		health:       make(map[PieceID]int),
	}
	s.Reset()
	s.Status = "Drag heroes and sidekicks to circles on the board"
	return s
}

func (s *Session) checkPiece(piece PieceID) error {
	if _, ok := s.positions[piece]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPiece, piece)
	}
	return nil
}

// Place ставит фишку на клетку (откуда угодно). Смежность не проверяется.
func (s *Session) Place(piece PieceID, circleID int) error {
	if err := s.checkPiece(piece); err != nil {
		return err
	}
	circle, ok := s.Layout.CircleAt(circleID)
	if !ok {
		return fmt.Errorf("%w: %d (layout %d has %d circles)",
			ErrUnknownCircle, circleID, s.LayoutNumber, len(s.Layout.Circles))
	}

	s.positions[piece] = circleID
	s.TotalMoves++

	s.Status = fmt.Sprintf("%s → Circle %d (%s) | Pieces on board: %d | Total moves: %d",
		piece, circleID, circle.ZoneText(), s.PiecesOnBoard(), s.TotalMoves)
	return nil
}

// Unplace убирает фишку в неактивную зону. Счетчик ходов не меняется.
func (s *Session) Unplace(piece PieceID) error {
	if err := s.checkPiece(piece); err != nil {
		return err
	}

	s.positions[piece] = Inactive
	s.Status = fmt.Sprintf("%s → Inactive Area | Pieces on board: %d | Total moves: %d",
		piece, s.PiecesOnBoard(), s.TotalMoves)
	return nil
}

// AdvanceTurn передает ход следующему цвету
func (s *Session) AdvanceTurn() Faction {
	s.Turn++
	s.activeFaction = (s.activeFaction + 1) % len(Factions)
	s.Status = fmt.Sprintf("Turn %d | %s to act", s.Turn, s.ActiveFaction())
	return s.ActiveFaction()
}

// ActiveFaction - чей сейчас ход
func (s *Session) ActiveFaction() Faction {
	return Factions[s.activeFaction]
}

// ChangeHealth крутит счетчик здоровья. Ниже нуля не опускается.
func (s *Session) ChangeHealth(piece PieceID, delta int) (int, error) {
	if err := s.checkPiece(piece); err != nil {
		return 0, err
	}

	hp := max(s.health[piece]+delta, 0)
	s.health[piece] = hp
	return hp, nil
}

// Health возвращает текущее здоровье фишки
func (s *Session) Health(piece PieceID) (int, error) {
	if err := s.checkPiece(piece); err != nil {
		return 0, err
	}
	return s.health[piece], nil
}

// PiecePosition возвращает клетку фишки или Inactive
func (s *Session) PiecePosition(piece PieceID) (int, error) {
	if err := s.checkPiece(piece); err != nil {
		return Inactive, err
	}
	return s.positions[piece], nil
}

// PiecesOnCircle - фишки на клетке в порядке AllPieces
func (s *Session) PiecesOnCircle(circleID int) []PieceID {
	var result []PieceID
	for _, p := range AllPieces() {
		if s.positions[p] == circleID && circleID != Inactive {
			result = append(result, p)
		}
	}
	return result
}

// PiecesOnBoard - сколько фишек стоит на поле
func (s *Session) PiecesOnBoard() int {
	n := 0
	for _, pos := range s.positions {
		if pos != Inactive {
			n++
		}
	}
	return n
}

// Reset - новая партия на том же раскладе
func (s *Session) Reset() {
	for _, p := range AllPieces() {
		s.positions[p] = Inactive
		s.health[p] = p.Kind().MaxHealth()
	}
	s.TotalMoves = 0
	s.Turn = 0
	s.activeFaction = 0
	s.Status = "Game reset! Drag heroes and sidekicks to circles on the board"
}

// LoadLayout переключает расклад. Фишки возвращаются с поля,
// здоровье и счетчик ходов сохраняются.
func (s *Session) LoadLayout(number int, layout *board.Layout) {
	s.LayoutNumber = number
	s.Layout = layout
	for p := range s.positions {
		s.positions[p] = Inactive
	}
	s.Status = fmt.Sprintf("Layout %d loaded | Drag heroes and sidekicks to circles", number)
}
