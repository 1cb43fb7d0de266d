package admin

import (
	"boardgame-server/internal/engine/handlers"
	"boardgame-server/pkg/api"
	"boardgame-server/pkg/utils"
	"fmt"
)

// HandleRegenerate пересобирает слот кэша с новым сидом и переводит на него партию.
// Другие партии на этом слоте продолжают играть на старом раскладе.
func HandleRegenerate(ctx handlers.Context, p api.RegeneratePayload) (handlers.Result, error) {
	seed := utils.StringToSeed(p.Seed)

	layout, err := ctx.Layouts.Regenerate(p.Layout, seed)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	ctx.Session.LoadLayout(p.Layout, layout)
	return handlers.Result{
		Msg:     fmt.Sprintf("Layout %d regenerated with seed %d | %d circles", p.Layout, seed, len(layout.Circles)),
		MsgType: "INFO",
	}, nil
}
