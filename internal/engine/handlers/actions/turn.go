package actions

import (
	"boardgame-server/internal/engine/handlers"
)

func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.AdvanceTurn()
	return handlers.Result{Msg: ctx.Session.Status, MsgType: "TURN"}, nil
}
