package handlers

import (
	"boardgame-server/internal/domain"
	"boardgame-server/pkg/board"
	"encoding/json"
)

// LayoutProvider отдает расклады по номеру слота.
// board.Presets неявно реализует этот интерфейс.
type LayoutProvider interface {
	Get(number int) (*board.Layout, bool)
	Regenerate(number int, seed int64) (*board.Layout, error)
}

// Context передает хендлеру состояние партии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Session *domain.Session
	Layouts LayoutProvider
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, TURN, ERROR)
}

// HandlerFunc - это контракт для любой команды (PLACE, HEALTH, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// StatusResult - ответ со строкой статуса партии
func StatusResult(s *domain.Session) Result {
	return Result{Msg: s.Status, MsgType: "INFO"}
}
