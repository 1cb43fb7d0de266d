package engine

import (
	"boardgame-server/internal/domain"
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/internal/engine/handlers/actions"
	"boardgame-server/internal/engine/handlers/admin"
	"boardgame-server/internal/network"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/board"
	"boardgame-server/pkg/logger"
	"boardgame-server/pkg/utils"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultLayoutNumber - слот, с которого начинается новая партия
const DefaultLayoutNumber = 1

type GameService struct {
	Presets *board.Presets
	Hub     *network.Broadcaster

	mu        sync.RWMutex
	instances map[string]*Instance

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	presets := board.NewPresets(cfg.Board, cfg.LayoutCount, cfg.Seed)

	for _, sum := range presets.Summaries() {
		logger.Log.WithFields(logrus.Fields{
			"layout":          sum.Number,
			"seed":            sum.Seed,
			"circles":         sum.Circles,
			"adjacencies":     sum.Adjacencies,
			"starting_spaces": sum.StartingSpaces,
		}).Info("Layout generated")
	}

	s := &GameService{
		Presets:   presets,
		Hub:       network.NewBroadcaster(),
		instances: make(map[string]*Instance),
		handlers:  make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionPlace] = handlers.WithPayload(actions.HandlePlace)
	s.handlers[domain.ActionUnplace] = handlers.WithPayload(actions.HandleUnplace)
	s.handlers[domain.ActionEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	s.handlers[domain.ActionHealth] = handlers.WithPayload(actions.HandleHealth)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(actions.HandleReset)
	s.handlers[domain.ActionLoadLayout] = handlers.WithPayload(actions.HandleLoadLayout)
	s.handlers[domain.ActionRegenerate] = handlers.WithPayload(admin.HandleRegenerate)
}

// Join находит партию по токену или создает новую и сразу подписывает на нее соединение.
// Пустой токен - новая партия со случайным ID.
// Неизвестный токен - новая партия с этим ID.
// Поиск и подписка идут под одним s.mu, поэтому Leave последнего подписчика
// не может закрыть партию между ними.
func (s *GameService) Join(token, subscriberID string) (*Instance, chan api.ServerResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if inst, ok := s.instances[token]; ok {
			return inst, s.Hub.Subscribe(inst.ID, subscriberID), false, nil
		}
	} else {
		token = utils.GenerateID()
	}

	layout, ok := s.Presets.Get(DefaultLayoutNumber)
	if !ok {
		return nil, nil, false, fmt.Errorf("%w: %d", domain.ErrUnknownLayout, DefaultLayoutNumber)
	}

	inst := NewInstance(domain.NewSession(token, DefaultLayoutNumber, layout), s)
	s.instances[token] = inst
	updates := s.Hub.Subscribe(inst.ID, subscriberID)
	go inst.Run()

	logger.Log.WithFields(logrus.Fields{
		"session_id": token,
		"layout":     DefaultLayoutNumber,
	}).Info("Session created")
	return inst, updates, true, nil
}

// GetSession возвращает живую партию
func (s *GameService) GetSession(id string) (*Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.instances[id]
	return inst, ok
}

// closeSession останавливает цикл партии и забывает ее. Вызывать под s.mu.
func (s *GameService) closeSession(id string) {
	inst, ok := s.instances[id]
	if !ok {
		return
	}
	delete(s.instances, id)
	inst.Stop()
	logger.Log.WithField("session_id", id).Info("Session closed")
}

// Leave отписывает соединение. Последний ушедший закрывает партию.
func (s *GameService) Leave(sessionID, subscriberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if remaining := s.Hub.Unsubscribe(sessionID, subscriberID); remaining == 0 {
		s.closeSession(sessionID)
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Ошибка возвращается только если команду некуда доставить;
// ошибки самих хендлеров уходят подписчикам как ERROR-лог.
func (s *GameService) ProcessCommand(sessionID string, externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("session_id", sessionID).Warnf("Unknown action: %s", externalCmd.Action)
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, externalCmd.Action)
	}

	inst, ok := s.GetSession(sessionID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	cmd := domain.InternalCommand{
		Action:    actionType,
		SessionID: sessionID,
		Payload:   externalCmd.Payload,
	}
	if !inst.Enqueue(cmd) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}

// Sessions - сводка по всем живым партиям, отсортированная по ID
func (s *GameService) Sessions() []SessionSummary {
	s.mu.RLock()
	list := make([]*Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		list = append(list, inst)
	}
	s.mu.RUnlock()

	summaries := make([]SessionSummary, 0, len(list))
	for _, inst := range list {
		summaries = append(summaries, inst.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// Shutdown останавливает все партии
func (s *GameService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, inst := range s.instances {
		inst.Stop()
		delete(s.instances, id)
	}
}
