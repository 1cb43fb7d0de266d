package server

import (
	"boardgame-server/internal/engine"
	"boardgame-server/pkg/board"
	"boardgame-server/pkg/logger"
	"boardgame-server/pkg/utils"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// LayoutsHandler отдает расклады по REST
type LayoutsHandler struct {
	Presets *board.Presets
}

func NewLayoutsHandler(p *board.Presets) *LayoutsHandler {
	return &LayoutsHandler{Presets: p}
}

// RegisterRoutes регистрирует эндпоинты раскладов на подроутере /api
func (h *LayoutsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/layouts", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/layouts/{number:[0-9]+}", h.handleGet).Methods(http.MethodGet)
	// Без .Methods: иначе несовпадение метода сбрасывается следующим маршрутом
	// подроутера и вместо 405 получается 404. Метод проверяет сам хендлер.
	r.HandleFunc("/layouts/{number:[0-9]+}/regenerate", h.handleRegenerate)
	r.HandleFunc("/generate", h.handleGenerate).Methods(http.MethodGet)
}

// /api/layouts - сводка по слотам кэша
func (h *LayoutsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Presets.Summaries())
}

// /api/layouts/{number} - полный расклад слота
func (h *LayoutsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(mux.Vars(r)["number"])

	layout, ok := h.Presets.Get(number)
	if !ok {
		http.Error(w, "Layout not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, engine.NewLayoutView(number, layout))
}

// /api/layouts/{number}/regenerate?seed=N - пересобрать слот.
// seed может быть числом или любой строкой.
func (h *LayoutsHandler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	number, _ := strconv.Atoi(mux.Vars(r)["number"])

	raw := r.URL.Query().Get("seed")
	if raw == "" {
		http.Error(w, "seed is required", http.StatusBadRequest)
		return
	}
	seed := utils.StringToSeed(raw)

	layout, err := h.Presets.Regenerate(number, seed)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, board.ErrSlotOutOfRange) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"layout":  number,
		"seed":    seed,
		"circles": len(layout.Circles),
	}).Info("Layout regenerated")
	writeJSON(w, http.StatusOK, engine.NewLayoutView(number, layout))
}

// /api/generate?seed=N - расклад вне кэша. Без seed берется текущее время.
func (h *LayoutsHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed = utils.StringToSeed(raw)
	}

	layout := board.GenerateWith(h.Presets.Config(), seed)
	writeJSON(w, http.StatusOK, engine.NewLayoutView(0, layout))
}
