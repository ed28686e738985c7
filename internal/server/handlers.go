package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	qr "loucura/internal/qrcode"
	"loucura/internal/session"
)

const maxSeats = 8

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu     sync.Mutex
	Tables *session.Manager
	Hubs   map[string]*Hub
	log    *zap.Logger
}

func NewHandlers(tables *session.Manager, log *zap.Logger) *Handlers {
	return &Handlers{
		Tables: tables,
		Hubs:   make(map[string]*Hub),
		log:    log,
	}
}

func (h *Handlers) hub(id string) (*Hub, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hub, ok := h.Hubs[id]
	return hub, ok
}

// HandleCreateGame opens a new table and redirects to its table screen.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Create()
	if err != nil {
		h.log.Error("create table", zap.Error(err))
		http.Error(w, "could not create table", http.StatusInternalServerError)
		return
	}
	hub := NewHub(table, h.log)
	h.mu.Lock()
	h.Hubs[table.ID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.log.Info("table created", zap.String("table", table.ID), zap.Uint64("seed", table.Seed))
	http.Redirect(w, r, fmt.Sprintf("/table.html?table=%s", table.ID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for joining a table at a seat.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	if _, ok := h.hub(tableID); !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}
	seat, err := parseSeat(r.URL.Query().Get("seat"))
	if err != nil || seat == TableSeat {
		http.Error(w, "invalid seat", http.StatusBadRequest)
		return
	}
	png, err := qr.Generate(qr.JoinURL(r.Host, tableID, seat))
	if err != nil {
		h.log.Error("qr generation failed", zap.Error(err))
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleReplay replays a table's command log from its seed.
func (h *Handlers) HandleReplay(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	table := h.Tables.Get(tableID)
	if table == nil {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}
	res, err := table.Replay()
	status := http.StatusOK
	if err != nil {
		h.log.Warn("replay diverged", zap.String("table", tableID), zap.Error(err))
		status = http.StatusConflict
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res)
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	hub, ok := h.hub(tableID)
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}
	seat, err := parseSeat(r.URL.Query().Get("seat"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	client := NewClient(hub, conn, seat)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// parseSeat reads a seat number. An empty value is the table screen.
func parseSeat(s string) (int, error) {
	if s == "" {
		return TableSeat, nil
	}
	seat, err := strconv.Atoi(s)
	if err != nil || seat < TableSeat || seat >= maxSeats {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	return seat, nil
}
