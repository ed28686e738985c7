package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"

	"loucura/internal/config"
	"loucura/internal/engine"
	"loucura/internal/protocol"
	"loucura/internal/session"
)

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	static := fstest.MapFS{"index.html": {Data: []byte("<html></html>")}}
	s := New(config.Config{Port: 8080, Seed: 5, MaxRounds: 10, LogLimit: 20}, static, zap.NewNop())
	return s, s.Handler()
}

func createTable(t *testing.T, s *Server, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/create", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	id := strings.TrimPrefix(loc, "/table.html?table=")
	if id == loc || s.handlers.Tables.Get(id) == nil {
		t.Fatalf("redirect %q does not name a table", loc)
	}
	t.Cleanup(func() {
		if hub, ok := s.handlers.hub(id); ok {
			hub.Stop()
		}
	})
	return id
}

func TestHealth(t *testing.T) {
	_, h := testServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestQR(t *testing.T) {
	s, h := testServer(t)
	id := createTable(t, s, h)

	tests := []struct {
		query string
		code  int
	}{
		{"", http.StatusBadRequest},
		{"?table=missing&seat=0", http.StatusNotFound},
		{"?table=" + id, http.StatusBadRequest},
		{"?table=" + id + "&seat=9", http.StatusBadRequest},
		{"?table=" + id + "&seat=2", http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr"+tt.query, nil))
		if rec.Code != tt.code {
			t.Errorf("%q: got %d, want %d", tt.query, rec.Code, tt.code)
		}
		if tt.code == http.StatusOK && rec.Header().Get("Content-Type") != "image/png" {
			t.Errorf("%q: expected a PNG", tt.query)
		}
	}
}

func TestReplayEndpoint(t *testing.T) {
	s, h := testServer(t)
	id := createTable(t, s, h)
	table := s.handlers.Tables.Get(id)
	if _, err := table.Submit(engine.StartGame(engine.AjahBlue, engine.AjahYellow)); err != nil {
		t.Fatalf("start: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/replay?table="+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res session.ReplayResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Identical || res.Commands != 1 {
		t.Fatalf("unexpected replay result %+v", res)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/replay?table=nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWSRequiresTable(t *testing.T) {
	s, h := testServer(t)
	id := createTable(t, s, h)
	for query, code := range map[string]int{
		"":                          http.StatusBadRequest,
		"?table=nope":               http.StatusNotFound,
		"?table=" + id + "&seat=x":  http.StatusBadRequest,
		"?table=" + id + "&seat=-2": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws"+query, nil))
		if rec.Code != code {
			t.Errorf("%q: got %d, want %d", query, rec.Code, code)
		}
	}
}

func TestParseSeat(t *testing.T) {
	for in, want := range map[string]int{"": TableSeat, "-1": TableSeat, "0": 0, "7": 7} {
		got, err := parseSeat(in)
		if err != nil || got != want {
			t.Errorf("parseSeat(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"8", "-2", "one"} {
		if _, err := parseSeat(in); err == nil {
			t.Errorf("parseSeat(%q) should fail", in)
		}
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand(protocol.Envelope{
		Type:    protocol.MsgStartGame,
		Payload: json.RawMessage(`{"ajahs":["Blue","Red"]}`),
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != engine.CommandStartGame || len(cmd.Ajahs) != 2 || cmd.Ajahs[1] != engine.AjahRed {
		t.Fatalf("unexpected command %+v", cmd)
	}

	cmd, err = parseCommand(protocol.Envelope{Type: protocol.MsgEndTurn})
	if err != nil || cmd.Type != engine.CommandEndTurn {
		t.Fatalf("end_turn without payload: %+v, %v", cmd, err)
	}

	if _, err := parseCommand(protocol.Envelope{Type: "join"}); err == nil {
		t.Fatal("unknown types should be rejected")
	}
	if _, err := parseCommand(protocol.Envelope{Type: protocol.MsgStand, Payload: json.RawMessage(`{"cards":"x"}`)}); err == nil {
		t.Fatal("malformed payloads should be rejected")
	}
	if _, err := parseCommand(protocol.Envelope{Type: protocol.MsgStartGame, Payload: json.RawMessage(`{"ajahs":["Purple"]}`)}); err == nil {
		t.Fatal("unknown ajahs should be rejected")
	}
}
