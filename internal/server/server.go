package server

import (
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"loucura/internal/config"
	"loucura/internal/engine"
	"loucura/internal/engine/abilities"
	"loucura/internal/session"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	port     int
	static   fs.FS
	log      *zap.Logger
}

// New builds a server. static is the root of the web assets.
func New(cfg config.Config, static fs.FS, log *zap.Logger) *Server {
	rules := engine.DefaultConfig()
	rules.Seed = cfg.Seed
	rules.MaxRounds = cfg.MaxRounds
	rules.LogLimit = cfg.LogLimit

	tables := session.NewManager(rules, abilities.NewRegistry())
	return &Server{
		handlers: NewHandlers(tables, log),
		port:     cfg.Port,
		static:   static,
		log:      log,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(s.static)))

	mux.HandleFunc("/api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/replay", s.handlers.HandleReplay)
	mux.HandleFunc("/health", s.handlers.HandleHealth)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server starting", zap.String("addr", "http://localhost"+addr))
	s.log.Info("open /api/create to open a new table", zap.String("url", "http://localhost"+addr+"/api/create"))
	return http.ListenAndServe(addr, s.Handler())
}
