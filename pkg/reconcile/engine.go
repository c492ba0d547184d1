package reconcile

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

const tracerName = "github.com/vango-dev/minidom/pkg/reconcile"

// Pass triggers.
const (
	TriggerRender   = "render"
	TriggerSetState = "setState"
)

// record is the engine's bookkeeping for one host node it produced.
type record struct {
	vnode     *vdom.VNode // last virtual node rendered into the host node
	component *Instance   // outermost instance whose output is this node, if any
}

// PassStats describes one completed render pass.
type PassStats struct {
	Trigger   string         // TriggerRender or TriggerSetState
	Root      string         // Type name of the virtual node the pass started from
	Mutations int            // Host mutations applied
	Ops       map[string]int // Host mutations by operation
	Duration  time.Duration
	Err       error
}

// Observer is notified after every render pass, successful or not.
type Observer interface {
	PassDone(stats PassStats)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTracer sets the tracer used for pass spans.
// Default: the global OpenTelemetry tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithObserver registers an observer for pass statistics.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// Engine reconciles virtual trees against one host tree.
// It is not safe for concurrent use.
type Engine struct {
	host      *countingAdapter
	records   map[host.Node]*record
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
	rendering bool
	last      PassStats
}

// New creates an Engine driving the given host adapter.
func New(adapter host.Adapter, opts ...Option) *Engine {
	e := &Engine{
		host:    newCountingAdapter(adapter),
		records: make(map[host.Node]*record),
		logger:  slog.Default().With("component", "reconcile"),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render reconciles tree into container. The container's first child is
// taken as the host node previously rendered there; if it has none, the tree
// is mounted fresh.
func (e *Engine) Render(tree *vdom.VNode, container host.Node) error {
	return e.RenderContext(context.Background(), tree, container)
}

// RenderContext is Render with a parent context for tracing.
func (e *Engine) RenderContext(ctx context.Context, tree *vdom.VNode, container host.Node) error {
	if container == nil {
		return errors.New("R005").WithDetail("Render was called with a nil container.")
	}
	return e.runPass(ctx, TriggerRender, tree.TypeName(), func() error {
		_, err := e.diff(tree, container, host.FirstChild(e.host, container), nil)
		return err
	})
}

// LastPass returns statistics for the most recent pass.
func (e *Engine) LastPass() PassStats {
	return e.last
}

// VNode returns the virtual node last rendered into a host node.
func (e *Engine) VNode(node host.Node) *vdom.VNode {
	if rec := e.records[node]; rec != nil {
		return rec.vnode
	}
	return nil
}

// Component returns the outermost component instance whose rendered output
// is node, or nil.
func (e *Engine) Component(node host.Node) *Instance {
	if rec := e.records[node]; rec != nil {
		return rec.component
	}
	return nil
}

// Tracked returns the number of host nodes the engine keeps records for.
func (e *Engine) Tracked() int {
	return len(e.records)
}

// runPass runs fn as one render pass: it rejects nested passes, counts host
// mutations, and reports the outcome to the tracer, logger and observers.
func (e *Engine) runPass(ctx context.Context, trigger, root string, fn func() error) error {
	if e.rendering {
		e.logger.Warn("rejected nested render pass", "trigger", trigger, "root", root)
		return errors.New("R003").WithDetailf("%s of %s was requested while a pass was running.", trigger, root)
	}
	e.rendering = true
	defer func() { e.rendering = false }()

	_, span := e.tracer.Start(ctx, "minidom."+trigger,
		trace.WithAttributes(
			attribute.String("minidom.trigger", trigger),
			attribute.String("minidom.root", root),
		),
	)
	defer span.End()

	e.host.reset()
	start := time.Now()
	err := fn()

	stats := PassStats{
		Trigger:   trigger,
		Root:      root,
		Mutations: e.host.total(),
		Ops:       e.host.snapshot(),
		Duration:  time.Since(start),
		Err:       err,
	}
	e.last = stats

	span.SetAttributes(attribute.Int("minidom.mutations", stats.Mutations))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("render pass failed", "trigger", trigger, "root", root, "error", err)
	} else {
		e.logger.Debug("render pass",
			"trigger", trigger,
			"root", root,
			"mutations", stats.Mutations,
			"duration", stats.Duration,
		)
	}

	for _, o := range e.observers {
		o.PassDone(stats)
	}
	return err
}

// validate rejects nodes the engine cannot place.
func validate(v *vdom.VNode) error {
	if v == nil {
		return errors.New("R001")
	}
	if !v.Valid() {
		return errors.New("R002").WithDetailf("Node of kind %s (type %q) cannot be rendered.", v.Kind, v.TypeName())
	}
	return nil
}

// forget drops the records of a removed host subtree.
func (e *Engine) forget(node host.Node) {
	delete(e.records, node)
	for _, child := range e.host.ChildNodes(node) {
		e.forget(child)
	}
}
