package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlace
	ActionUnplace
	ActionEndTurn
	ActionHealth
	ActionReset
	ActionLoadLayout
	ActionRegenerate
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":        ActionInit,
	"PLACE":       ActionPlace,
	"UNPLACE":     ActionUnplace,
	"END_TURN":    ActionEndTurn,
	"HEALTH":      ActionHealth,
	"RESET":       ActionReset,
	"LOAD_LAYOUT": ActionLoadLayout,
	"REGENERATE":  ActionRegenerate,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionPlace:      "PLACE",
	ActionUnplace:    "UNPLACE",
	ActionEndTurn:    "END_TURN",
	ActionHealth:     "HEALTH",
	ActionReset:      "RESET",
	ActionLoadLayout: "LOAD_LAYOUT",
	ActionRegenerate: "REGENERATE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
