package server

import (
	"boardgame-server/internal/engine"
	"boardgame-server/internal/version"
	"boardgame-server/pkg/logger"
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/gorilla/mux"
)

type Server struct {
	Engine    *engine.GameService
	Port      string
	StaticDir string

	httpServer *http.Server
}

func New(engine *engine.GameService, port, staticDir string) *Server {
	return &Server{
		Engine:    engine,
		Port:      port,
		StaticDir: staticDir,
	}
}

// Router собирает все маршруты сервера
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/ws", s.handleWS)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)

	layouts := NewLayoutsHandler(s.Engine.Presets)
	layouts.RegisterRoutes(r.PathPrefix("/api").Subrouter())

	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(r)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	if s.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.StaticDir)))
	}

	return r
}

// Run запускает HTTP сервер. Возвращает http.ErrServerClosed после Shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Log.Infof("🎲 Board Layout Server running on :%s", s.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown останавливает прием соединений и ждет активные запросы
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		// Разрешаем заголовки, если фронт шлет что-то нестандартное
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Info())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Если data == nil, возвращаем пустой массив [], а не null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode response")
	}
}
