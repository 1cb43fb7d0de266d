package actions

import (
	"boardgame-server/internal/domain"
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/pkg/api"
	"fmt"
)

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.StatusResult(ctx.Session), nil
}

// HandleReset - новая партия на текущем раскладе
func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.Reset()
	return handlers.StatusResult(ctx.Session), nil
}

// HandleLoadLayout переключает партию на другой слот из кэша
func HandleLoadLayout(ctx handlers.Context, p api.LayoutPayload) (handlers.Result, error) {
	layout, ok := ctx.Layouts.Get(p.Layout)
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("%w: %d", domain.ErrUnknownLayout, p.Layout)
	}

	ctx.Session.LoadLayout(p.Layout, layout)
	return handlers.StatusResult(ctx.Session), nil
}
