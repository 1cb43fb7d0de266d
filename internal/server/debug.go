package server

import (
	"boardgame-server/internal/engine"
	"net/http"

	"github.com/gorilla/mux"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/debug/sessions", h.handleListSessions).Methods(http.MethodGet)
	r.HandleFunc("/debug/sessions/{id}", h.handleDumpSession).Methods(http.MethodGet)
}

// /debug/sessions - список живых партий
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Sessions())
}

// /debug/sessions/{id} - полный снимок партии, как его видит клиент
func (h *DebugHandler) handleDumpSession(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Service.GetSession(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, inst.Snapshot())
}
