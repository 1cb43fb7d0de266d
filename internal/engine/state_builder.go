package engine

import (
	"boardgame-server/internal/domain"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/board"
)

// BuildState создает полный "снимок" партии для клиента.
// logs копируются, чтобы не было гонки данных с циклом партии.
func BuildState(s *domain.Session, logs []api.LogEntry) *api.ServerResponse {
	var logsCopy []api.LogEntry
	if len(logs) > 0 {
		logsCopy = make([]api.LogEntry, len(logs))
		copy(logsCopy, logs)
	}

	return &api.ServerResponse{
		Type:      "UPDATE",
		SessionID: s.ID,
		Layout:    NewLayoutView(s.LayoutNumber, s.Layout),
		Session:   newSessionView(s),
		Logs:      logsCopy,
	}
}

// NewLayoutView конвертирует расклад в DTO для отрисовки.
// number = 0 для расклада вне кэша.
func NewLayoutView(number int, l *board.Layout) *api.LayoutView {
	view := &api.LayoutView{
		Number:         number,
		Seed:           l.Seed,
		Width:          l.Width,
		Height:         l.Height,
		Circles:        make([]api.CircleView, 0, len(l.Circles)),
		Adjacencies:    make([]api.EdgeView, 0, len(l.Adjacencies)),
		StartingSpaces: make([]int, len(l.StartingSpaces)),
	}
	copy(view.StartingSpaces, l.StartingSpaces)

	for _, c := range l.Circles {
		cv := api.CircleView{
			ID:             c.ID,
			X:              c.X,
			Y:              c.Y,
			Size:           c.Size,
			Zones:          make([]string, len(c.Zones)),
			ZoneHex:        make([]string, len(c.Zones)),
			StartingNumber: l.StartingNumber(c.ID),
		}
		for i, z := range c.Zones {
			cv.Zones[i] = z.String()
			cv.ZoneHex[i] = z.Hex()
		}
		view.Circles = append(view.Circles, cv)
	}

	for _, e := range l.Adjacencies {
		view.Adjacencies = append(view.Adjacencies, api.EdgeView{From: e.From, To: e.To})
	}

	return view
}

func newSessionView(s *domain.Session) *api.SessionView {
	view := &api.SessionView{
		LayoutNumber:  s.LayoutNumber,
		TotalMoves:    s.TotalMoves,
		Turn:          s.Turn,
		ActiveFaction: string(s.ActiveFaction()),
		PiecesOnBoard: s.PiecesOnBoard(),
		Status:        s.Status,
	}

	for _, p := range domain.AllPieces() {
		view.Pieces = append(view.Pieces, toPieceView(s, p))
	}
	return view
}

// toPieceView конвертирует фишку в DTO. Неактивная фишка получает Circle = nil.
func toPieceView(s *domain.Session, p domain.PieceID) api.PieceView {
	view := api.PieceView{
		ID:        p.String(),
		Kind:      p.Kind().String(),
		Faction:   string(p.Faction()),
		MaxHealth: p.Kind().MaxHealth(),
	}

	// Ошибок быть не может: p взят из AllPieces
	view.Health, _ = s.Health(p)
	if pos, _ := s.PiecePosition(p); pos != domain.Inactive {
		circle := pos
		view.Circle = &circle
	}
	return view
}
