package playground

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/telemetry"
)

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func newTestServer(t *testing.T) (*Server, *httptest.Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	s := New(Options{
		Title:     "Test",
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Collector: telemetry.NewCollector(telemetry.WithRegistry(reg)),
		Gatherer:  reg,
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, reg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexPage(t *testing.T) {
	_, ts, _ := newTestServer(t)

	code, body := get(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !containsAll(body, "<!DOCTYPE html>", "<title>Test</title>", `<div id="root"><div class="app"`, "new WebSocket") {
		t.Errorf("unexpected page:\n%s", body)
	}
}

func TestTreeAndHealth(t *testing.T) {
	_, ts, _ := newTestServer(t)

	code, body := get(t, ts.URL+"/tree")
	if code != http.StatusOK || !strings.HasPrefix(body, `<div class="app"`) {
		t.Errorf("GET /tree = %d %q", code, body)
	}

	code, body = get(t, ts.URL+"/healthz")
	if code != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("GET /healthz = %d %q", code, body)
	}
}

var incButton = regexp.MustCompile(`id="inc" data-node="(\d+)"`)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func TestWebSocketSession(t *testing.T) {
	s, ts, reg := newTestServer(t)
	conn := dial(t, ts)

	first := readFrame(t, conn)
	if first.Type != FrameInit {
		t.Fatalf("first frame type = %q, want %q", first.Type, FrameInit)
	}
	if n := s.SessionCount(); n != 1 {
		t.Errorf("SessionCount() = %d, want 1", n)
	}

	m := incButton.FindStringSubmatch(first.HTML)
	if m == nil {
		t.Fatalf("inc button not found in %s", first.HTML)
	}
	id, _ := strconv.Atoi(m[1])

	if err := conn.WriteJSON(Event{Node: id, Type: "click"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	patch := readFrame(t, conn)
	if patch.Type != FramePatch {
		t.Fatalf("frame type = %q, want %q (error: %s)", patch.Type, FramePatch, patch.Error)
	}
	if len(patch.Ops) != 1 || patch.Ops[0].Op != dom.OpSetText || patch.Ops[0].Value != "1" {
		t.Errorf("Ops = %v, want one SetText \"1\"", patch.Ops)
	}
	if !strings.Contains(patch.HTML, `>1</span>`) {
		t.Errorf("HTML does not show the new count: %s", patch.HTML)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	bad := readFrame(t, conn)
	if bad.Type != FrameError || bad.Code != "S001" {
		t.Errorf("bad frame reply = %+v, want S001 error", bad)
	}

	if err := conn.WriteJSON(Event{Node: 9999, Type: "click"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if f := readFrame(t, conn); f.Code != "S002" {
		t.Errorf("unknown node reply code = %q, want S002", f.Code)
	}

	code, body := get(t, ts.URL+"/metrics")
	if code != http.StatusOK || !containsAll(body, "render_passes_total", "active_sessions 1") {
		t.Errorf("GET /metrics = %d\n%s", code, body)
	}
	if n, err := testutil.GatherAndCount(reg, "minidom_websocket_errors_total"); err != nil || n != 2 {
		t.Errorf("websocket error series = %d (%v), want 2", n, err)
	}
}

func TestSessionsCloseOnDisconnect(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	readFrame(t, conn)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for s.SessionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("SessionCount() = %d after disconnect, want 0", s.SessionCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCloseDropsSessions(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	readFrame(t, conn)

	s.Close()
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("ReadMessage() after Close succeeded, want error")
	}
}
