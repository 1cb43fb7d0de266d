package actions

import (
	"boardgame-server/internal/domain"
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/pkg/api"
)

// HandlePlace ставит фишку на клетку. Смежность и зоны не проверяются.
func HandlePlace(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	piece, err := domain.ParsePieceID(p.PieceID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Session.Place(piece, p.CircleID); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.StatusResult(ctx.Session), nil
}

// HandleUnplace убирает фишку с поля
func HandleUnplace(ctx handlers.Context, p api.PiecePayload) (handlers.Result, error) {
	piece, err := domain.ParsePieceID(p.PieceID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Session.Unplace(piece); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.StatusResult(ctx.Session), nil
}
