package engine

import (
	"boardgame-server/internal/domain"
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/logger"
	"sync"

	"github.com/sirupsen/logrus"
)

// Instance представляет собой одну изолированную партию со своим циклом команд.
type Instance struct {
	ID string

	mu      sync.Mutex
	Session *domain.Session
	Logs    []api.LogEntry // Логи, еще не отправленные клиентам

	// Каналы коммуникации
	CommandChan chan domain.InternalCommand
	done        chan struct{}
	closeOnce   sync.Once

	// Ссылка на Service для доступа к Hub и кэшу раскладов
	Service *GameService
}

func NewInstance(session *domain.Session, service *GameService) *Instance {
	return &Instance{
		ID:          session.ID,
		Session:     session,
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, 100),
		done:        make(chan struct{}),
		Service:     service,
	}
}

// Run запускает цикл команд ЭТОЙ партии. Выходит после Stop.
func (i *Instance) Run() {
	log := logger.Log.WithField("session_id", i.ID)
	log.Info("Session loop started")

	for {
		select {
		case cmd := <-i.CommandChan:
			i.execute(cmd)
			i.publish()
		case <-i.done:
			log.Info("Session loop stopped")
			return
		}
	}
}

// Stop останавливает цикл. Повторный вызов безопасен.
func (i *Instance) Stop() {
	i.closeOnce.Do(func() { close(i.done) })
}

// Enqueue кладет команду в очередь партии. false - партия уже остановлена.
func (i *Instance) Enqueue(cmd domain.InternalCommand) bool {
	select {
	case <-i.done:
		return false
	default:
	}

	select {
	case i.CommandChan <- cmd:
		return true
	case <-i.done:
		return false
	}
}

// execute выполняет хендлер и пишет лог.
// При ошибке хендлер не должен был менять партию, в лог уходит ERROR.
func (i *Instance) execute(cmd domain.InternalCommand) {
	i.mu.Lock()
	defer i.mu.Unlock()

	log := logger.Log.WithFields(logrus.Fields{
		"session_id": i.ID,
		"action":     cmd.Action.String(),
	})

	handler, ok := i.Service.handlers[cmd.Action]
	if !ok {
		log.Warn("No handler for action")
		i.AddLog(domain.ErrUnknownAction.Error()+": "+cmd.Action.String(), "ERROR")
		return
	}

	ctx := handlers.Context{
		Session: i.Session,
		Layouts: i.Service.Presets,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		log.WithError(err).Debug("Command rejected")
		i.AddLog(err.Error(), "ERROR")
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		i.AddLog(result.Msg, msgType)
	}
}

// publish рассылает снимок партии всем ее подписчикам и очищает логи
func (i *Instance) publish() {
	i.mu.Lock()
	state := BuildState(i.Session, i.Logs)
	i.Logs = []api.LogEntry{}
	i.mu.Unlock()

	i.Service.Hub.Publish(i.ID, *state)
}

// Snapshot возвращает текущее состояние без очистки логов
func (i *Instance) Snapshot() *api.ServerResponse {
	i.mu.Lock()
	defer i.mu.Unlock()
	return BuildState(i.Session, nil)
}

// Summary - краткая сводка для /debug/sessions
func (i *Instance) Summary() SessionSummary {
	i.mu.Lock()
	defer i.mu.Unlock()
	return SessionSummary{
		ID:            i.ID,
		LayoutNumber:  i.Session.LayoutNumber,
		LayoutSeed:    i.Session.Layout.Seed,
		TotalMoves:    i.Session.TotalMoves,
		Turn:          i.Session.Turn,
		PiecesOnBoard: i.Session.PiecesOnBoard(),
		Subscribers:   i.Service.Hub.HasSubscribers(i.ID),
	}
}

// SessionSummary - строка отладочного списка партий
type SessionSummary struct {
	ID            string `json:"id"`
	LayoutNumber  int    `json:"layout_number"`
	LayoutSeed    int64  `json:"layout_seed"`
	TotalMoves    int    `json:"total_moves"`
	Turn          int    `json:"turn"`
	PiecesOnBoard int    `json:"pieces_on_board"`
	Subscribers   bool   `json:"has_subscribers"`
}
