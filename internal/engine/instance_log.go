package engine

import (
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/logger"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет лог в историю партии. Вызывать под i.mu.
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", i.ID, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"session_id": i.ID,
		"component":  "game_log",
		"log_type":   logType,
	}).Info(text)
}
