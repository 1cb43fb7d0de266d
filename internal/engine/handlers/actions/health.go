package actions

import (
	"boardgame-server/internal/domain"
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/pkg/api"
	"fmt"
)

// HandleHealth крутит счетчик здоровья фишки на delta
func HandleHealth(ctx handlers.Context, p api.HealthPayload) (handlers.Result, error) {
	piece, err := domain.ParsePieceID(p.PieceID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	hp, err := ctx.Session.ChangeHealth(piece, p.Delta)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s health: %d", piece, hp),
		MsgType: "INFO",
	}, nil
}
