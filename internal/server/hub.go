package server

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"loucura/internal/engine"
	"loucura/internal/protocol"
	"loucura/internal/session"
)

var errTableOnly = errors.New("only the table screen may send this command")

// Hub manages WebSocket connections for one table. Commands from every client
// are funnelled through incoming so the table sees one writer.
type Hub struct {
	mu         sync.Mutex
	table      *session.Session
	log        *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(table *session.Session, log *zap.Logger) *Hub {
	return &Hub{
		table:      table,
		log:        log.With(zap.String("table", table.ID)),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			client.log.Info("client joined")
			client.SendEnvelope(protocol.MustEnvelope(protocol.MsgWelcome, protocol.Welcome{
				TableID:  h.table.ID,
				ClientID: client.ID,
				Seat:     client.Seat,
			}))
			h.sendState(client, h.table.Snapshot())

		case client := <-h.unregister:
			h.removeClient(client)
			client.log.Info("client left")

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

// removeClient drops a client and closes its outbox. Messages it queued before
// leaving may still be handled afterwards.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// connected reports whether client still has an open outbox.
func (h *Hub) connected(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients[client]
}

// Stop ends Run.
func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	log := msg.Client.log.With(zap.String("command", msg.Envelope.Type))

	cmd, err := parseCommand(msg.Envelope)
	if err != nil {
		log.Debug("bad command", zap.Error(err))
		h.sendError(msg.Client, msg.Envelope.Type, err)
		return
	}
	if err := authorize(msg.Client, cmd, h.table.Snapshot()); err != nil {
		log.Info("command refused", zap.Error(err))
		h.sendError(msg.Client, msg.Envelope.Type, err)
		return
	}
	if !msg.Client.IsTable() {
		cmd.Player = msg.Client.Seat
	}

	g, err := h.table.Submit(cmd)
	if err != nil {
		log.Info("command rejected", zap.Error(err))
		h.sendError(msg.Client, msg.Envelope.Type, err)
	} else if g.Phase == engine.PhaseGameOver {
		log.Info("game over", zap.String("winner", string(g.Winner)), zap.Int("round", g.Round))
	}
	h.broadcastState(g)
}

// authorize checks that a seat client only sends commands it owns. Seat-scoped
// commands act as the client's own seat; end_turn needs the turn; the rest
// belong to the table screen.
func authorize(c *Client, cmd engine.Command, g *engine.Game) error {
	if c.IsTable() {
		return nil
	}
	switch cmd.Type {
	case engine.CommandRevealCards, engine.CommandStand, engine.CommandUseAbility:
		return nil
	case engine.CommandEndTurn:
		if g.Phase == engine.PhaseAjahTurns && g.CurrentPlayer != c.Seat {
			return fmt.Errorf("%w: seat %d", engine.ErrNotYourTurn, c.Seat)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", errTableOnly, cmd.Type)
	}
}

// parseCommand decodes an envelope whose type names an engine command.
func parseCommand(env protocol.Envelope) (engine.Command, error) {
	var cmd engine.Command
	switch env.Type {
	case protocol.MsgStartGame, protocol.MsgRevealCards, protocol.MsgStand,
		protocol.MsgEndTurn, protocol.MsgSpendSaidar, protocol.MsgUseAbility,
		protocol.MsgDeclineReaction:
	default:
		return cmd, fmt.Errorf("unknown message type %q", env.Type)
	}
	if err := env.Decode(&cmd); err != nil {
		return engine.Command{}, err
	}
	cmd.Type = engine.CommandType(env.Type)
	return cmd, nil
}

func (h *Hub) broadcastState(g *engine.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.sendState(client, g)
	}
}

func (h *Hub) sendState(client *Client, g *engine.Game) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, g.ViewFor(client.Seat)))
}

func (h *Hub) sendError(client *Client, command string, err error) {
	if !h.connected(client) {
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{
		Message: err.Error(),
		Command: command,
	}))
}
