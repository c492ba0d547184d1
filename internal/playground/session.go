package playground

import (
	"slices"
	"strings"
	"sync"

	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/render"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// FrameType identifies a server frame.
type FrameType string

const (
	FrameInit  FrameType = "init"
	FramePatch FrameType = "patch"
	FrameError FrameType = "error"
)

// Event is a frame sent by the client.
type Event struct {
	Node  int    `json:"node"`
	Type  string `json:"event"`
	Value string `json:"value,omitempty"`
}

// Frame is a frame sent by the server.
type Frame struct {
	Type  FrameType    `json:"type"`
	Ops   []dom.Record `json:"ops,omitempty"`
	HTML  string       `json:"html,omitempty"`
	Error string       `json:"error,omitempty"`
	Code  string       `json:"code,omitempty"`
}

// errorFrame converts err into a frame the client can display.
func errorFrame(err error) Frame {
	return Frame{Type: FrameError, Error: err.Error(), Code: errors.CodeOf(err)}
}

// Session is one client's document and engine. Its methods are safe for
// concurrent use.
type Session struct {
	id       string
	mu       sync.Mutex
	doc      *dom.Document
	engine   *reconcile.Engine
	renderer *render.Renderer

	// failed holds the first pass error raised while an event is dispatched.
	failed error
}

// PassDone implements reconcile.Observer. Listeners cannot return errors, so
// the session collects failed passes here and Handle reports them.
func (s *Session) PassDone(stats reconcile.PassStats) {
	if stats.Err != nil && s.failed == nil {
		s.failed = stats.Err
	}
}

// NewSession mounts root into a fresh document.
func NewSession(id string, root *vdom.VNode, opts ...reconcile.Option) (*Session, error) {
	doc := dom.NewDocument()
	s := &Session{
		id:       id,
		doc:      doc,
		renderer: render.NewRenderer(render.RendererConfig{IncludeIDs: true}),
	}
	s.engine = reconcile.New(doc, append(slices.Clip(opts), reconcile.WithObserver(s))...)
	if err := s.engine.Render(root, doc.Root()); err != nil {
		return nil, err
	}
	doc.Journal().Reset()
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Document returns the session's document.
func (s *Session) Document() *dom.Document { return s.doc }

// Snapshot returns an init frame carrying the current tree.
func (s *Session) Snapshot() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	html, err := s.html()
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: FrameInit, HTML: html}, nil
}

// Handle dispatches ev and returns the mutations it caused. If a render pass
// started by a listener fails, Handle returns that error instead of a patch.
func (s *Session) Handle(ev Event) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.doc.Find(ev.Node)
	if !ok || !s.doc.Attached(n) {
		return Frame{}, errors.New("S002").WithDetailf("No attached node has ID %d.", ev.Node)
	}
	event := strings.ToLower(ev.Type)
	if len(n.Listeners(event)) == 0 {
		return Frame{}, errors.New("S003").WithDetailf("<%s> #%d has no %q listener.", n.Tag(), n.ID(), event)
	}

	journal := s.doc.Journal()
	journal.Reset()
	s.failed = nil
	s.doc.Dispatch(n, event, ev.Value)
	if err := s.failed; err != nil {
		s.failed = nil
		return Frame{}, err
	}

	html, err := s.html()
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: FramePatch, Ops: journal.Records(), HTML: html}, nil
}

func (s *Session) html() (string, error) {
	var b strings.Builder
	if err := s.renderer.RenderChildren(&b, s.doc.Root()); err != nil {
		return "", err
	}
	return b.String(), nil
}
