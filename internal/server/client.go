package server

import (
	"boardgame-server/internal/engine"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/logger"
	"boardgame-server/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService.
// Одна вкладка браузера = один Client = один подписчик партии.
type Client struct {
	Game         *engine.GameService
	Conn         *websocket.Conn
	Send         chan api.ServerResponse
	SessionID    string
	SubscriberID string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game:         game,
		Conn:         conn,
		Send:         make(chan api.ServerResponse, 256),
		SubscriberID: utils.GenerateID(),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	subscribed := false
	defer func() {
		if subscribed {
			// Закрывает канал подписки, пересылка закроет c.Send
			c.Game.Leave(c.SessionID, c.SubscriberID)
			logger.Log.WithFields(logrus.Fields{
				"session_id":    c.SessionID,
				"subscriber_id": c.SubscriberID,
				"subscribers":   c.Game.Hub.SubscriberCount(),
			}).Info("Client disconnected")
		} else {
			close(c.Send)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: токен существующей партии или пусто
	var hello api.ClientCommand
	if err := c.Conn.ReadJSON(&hello); err != nil {
		logger.Log.WithError(err).Warn("Handshake failed")
		return
	}

	// 2. ПОИСК ИЛИ СОЗДАНИЕ ПАРТИИ + ПОДПИСКА НА ОБНОВЛЕНИЯ
	inst, updates, created, err := c.Game.Join(hello.Token, c.SubscriberID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to join session")
		return
	}
	c.SessionID = inst.ID
	subscribed = true

	logger.Log.WithFields(logrus.Fields{
		"session_id":    c.SessionID,
		"subscriber_id": c.SubscriberID,
		"created":       created,
		"subscribers":   c.Game.Hub.SubscriberCount(),
	}).Info("Client joined")

	// Пересылка из Hub в writePump. Если writePump уже умер, снимки теряются.
	go func() {
		for msg := range updates {
			select {
			case c.Send <- msg:
			default:
			}
		}
		close(c.Send)
	}()

	// INIT - триггер первой отрисовки
	c.dispatch(api.ClientCommand{Action: "INIT"})

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS Error")
			}
			break
		}
		c.dispatch(cmd)
	}
}

// dispatch отдает команду движку. Недоставленная команда возвращается только этому клиенту.
func (c *Client) dispatch(cmd api.ClientCommand) {
	err := c.Game.ProcessCommand(c.SessionID, cmd)
	if err == nil {
		return
	}

	c.Game.Hub.SendTo(c.SubscriberID, api.ServerResponse{
		Type:      "ERROR",
		SessionID: c.SessionID,
		Logs: []api.LogEntry{{
			ID:        fmt.Sprintf("%s_%d", c.SubscriberID, time.Now().UnixNano()),
			Text:      err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	})
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
