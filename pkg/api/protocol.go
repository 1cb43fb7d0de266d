package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту по WebSocket.
// Содержит полный снимок партии: расклад поля и положение фишек.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// SessionID идентификатор партии. Клиент может переподключиться с ним как с токеном.
	SessionID string `json:"sessionId"`

	// Layout текущий расклад. Отправляется целиком, он небольшой.
	Layout *LayoutView `json:"layout,omitempty"`

	// Session состояние фишек, здоровья и счетчиков.
	Session *SessionView `json:"session,omitempty"`

	// Logs новые сообщения для строки статуса и лога.
	Logs []LogEntry `json:"logs,omitempty"`
}

// LayoutView это DTO расклада для отрисовки.
type LayoutView struct {
	Number int     `json:"number,omitempty"` // 0 для расклада вне кэша
	Seed   int64   `json:"seed"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Circles     []CircleView `json:"circles"`
	Adjacencies []EdgeView   `json:"adjacencies"`

	// StartingSpaces индексы клеток в порядке квадрантов TL, TR, BL, BR.
	// Может содержать меньше 4 элементов.
	StartingSpaces []int `json:"startingSpaces"`
}

// CircleView это DTO для одной клетки.
type CircleView struct {
	ID   int     `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`

	// Zones цвета зон, первая - ближайшая. ZoneHex - те же цвета в hex.
	Zones   []string `json:"zones"`
	ZoneHex []string `json:"zoneHex"`

	// StartingNumber 1..4 для стартовых клеток.
	StartingNumber int `json:"startingNumber,omitempty"`
}

// EdgeView это DTO связи двух клеток. Только для отображения.
type EdgeView struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SessionView это DTO состояния партии.
type SessionView struct {
	LayoutNumber  int         `json:"layoutNumber"`
	TotalMoves    int         `json:"totalMoves"`
	Turn          int         `json:"turn"`
	ActiveFaction string      `json:"activeFaction"`
	PiecesOnBoard int         `json:"piecesOnBoard"`
	Status        string      `json:"status"`
	Pieces        []PieceView `json:"pieces"`
}

// PieceView это DTO фишки.
type PieceView struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"` // hero, sidekick
	Faction string `json:"faction"`

	// Circle индекс клетки. nil - фишка в неактивной зоне.
	Circle *int `json:"circle"`

	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, TURN, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Используется только в первом сообщении (handshake),
	// пустой токен означает новую партию.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// PlacePayload используется для PLACE: поставить фишку на клетку.
type PlacePayload struct {
	PieceID  string `json:"pieceId"`
	CircleID int    `json:"circleId"`
}

// PiecePayload используется для UNPLACE.
type PiecePayload struct {
	PieceID string `json:"pieceId"`
}

// HealthPayload используется для HEALTH: кнопки +/- на счетчике.
type HealthPayload struct {
	PieceID string `json:"pieceId"`
	Delta   int    `json:"delta"`
}

// LayoutPayload используется для LOAD_LAYOUT.
type LayoutPayload struct {
	Layout int `json:"layout"`
}

// RegeneratePayload используется для REGENERATE: пересобрать слот с новым сидом.
// Seed - число или произвольная строка (хешируется).
type RegeneratePayload struct {
	Layout int    `json:"layout"`
	Seed   string `json:"seed"`
}
