package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/minidom/internal/config"
	"github.com/vango-dev/minidom/internal/demo"
	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/render"
	"github.com/vango-dev/minidom/pkg/telemetry"
)

type demoOptions struct {
	scenario string
	output   string
	delay    time.Duration
	click    bool
	pretty   bool
}

func demoCmd(g *globals) *cobra.Command {
	var (
		opts  demoOptions
		delay string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a tree, update it and show what changed",
		Long: `Render the initial demo tree into an empty document, then render the
scenario's second tree over it. Prints every host mutation of both passes,
the HTML before and after the update and a character diff between them.

Scenarios:
  update     drop the trailing heading and rebind the button (default)
  modified   change element types, attributes and the click handler
  showcase   add headings, an input, text and conditional children

Examples:
  minidom demo
  minidom demo --scenario modified --click
  minidom demo --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = g.cfg.Demo.Output
			}
			opts.delay = g.cfg.DemoDelay()
			if delay != "" {
				d, err := time.ParseDuration(delay)
				if err != nil {
					return errors.Newf(errors.CategoryCLI, "invalid --delay %q", delay).Wrap(err)
				}
				opts.delay = d
			}
			tracer := telemetry.Tracer(g.cfg.Tracing.Enabled, g.cfg.Tracing.TracerName)
			return runDemo(cmd.Context(), cmd.OutOrStdout(), g.logger, tracer, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", demo.ScenarioUpdate, "Scenario to run: "+strings.Join(demo.Scenarios(), ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json, yaml (default from config)")
	cmd.Flags().StringVar(&delay, "delay", "", "Pause between the two renders (default from config)")
	cmd.Flags().BoolVar(&opts.click, "click", false, "Click the first clickable element after the update")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the HTML in text output")

	return cmd
}

// demoPass is one render pass of the demo.
type demoPass struct {
	Mutations int            `json:"mutations" yaml:"mutations"`
	Ops       map[string]int `json:"ops,omitempty" yaml:"ops,omitempty"`
	Records   []dom.Record   `json:"records" yaml:"records"`
	HTML      string         `json:"html" yaml:"html"`
}

// demoReport is what the demo command prints.
type demoReport struct {
	Scenario string   `json:"scenario" yaml:"scenario"`
	Mount    demoPass `json:"mount" yaml:"mount"`
	Update   demoPass `json:"update" yaml:"update"`
	Alerts   []string `json:"alerts,omitempty" yaml:"alerts,omitempty"`
}

func runDemo(ctx context.Context, w io.Writer, logger *slog.Logger, tracer trace.Tracer, opts demoOptions) error {
	next, ok := demo.Lookup(opts.scenario)
	if !ok {
		return errors.Newf(errors.CategoryCLI, "unknown scenario %q", opts.scenario).
			WithSuggestion("Use one of " + strings.Join(demo.Scenarios(), ", "))
	}

	report := demoReport{Scenario: opts.scenario}
	alert := func(msg string) {
		report.Alerts = append(report.Alerts, msg)
		logger.Info("alert", "message", msg)
	}

	doc := dom.NewDocument()
	engine := reconcile.New(doc,
		reconcile.WithLogger(logger.With("component", "reconcile")),
		reconcile.WithTracer(tracer))
	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty && opts.output == config.OutputText})

	pass := func(p *demoPass) error {
		stats := engine.LastPass()
		html, err := renderContent(renderer, doc)
		if err != nil {
			return err
		}
		*p = demoPass{
			Mutations: stats.Mutations,
			Ops:       stats.Ops,
			Records:   doc.Journal().Records(),
			HTML:      html,
		}
		doc.Journal().Reset()
		return nil
	}

	if err := engine.RenderContext(ctx, demo.Initial(alert), doc.Root()); err != nil {
		return err
	}
	if err := pass(&report.Mount); err != nil {
		return err
	}

	if opts.delay > 0 {
		logger.Debug("waiting before update", "delay", opts.delay)
		select {
		case <-time.After(opts.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := engine.RenderContext(ctx, next(alert), doc.Root()); err != nil {
		return err
	}
	if err := pass(&report.Update); err != nil {
		return err
	}

	if opts.click {
		if n := findListener(doc.Root(), "click"); n != nil {
			doc.Dispatch(n, "click", "")
		}
	}

	return writeReport(w, report, opts.output)
}

func renderContent(r *render.Renderer, doc *dom.Document) (string, error) {
	var b strings.Builder
	if err := r.RenderChildren(&b, doc.Root()); err != nil {
		return "", err
	}
	return b.String(), nil
}

// findListener returns the first node in document order with a listener for
// event.
func findListener(n *dom.Node, event string) *dom.Node {
	if len(n.Listeners(event)) > 0 {
		return n
	}
	for _, c := range n.Children() {
		if found := findListener(c, event); found != nil {
			return found
		}
	}
	return nil
}

func writeReport(w io.Writer, report demoReport, output string) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case config.OutputYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return writeText(w, report)
	}
}

func writeText(w io.Writer, report demoReport) error {
	fmt.Fprintf(w, "%s %s\n\n", bold("Scenario:"), report.Scenario)

	for _, p := range []struct {
		title string
		pass  demoPass
	}{
		{"Mount", report.Mount},
		{"Update", report.Update},
	} {
		fmt.Fprintf(w, "%s (%d mutations)\n", bold(p.title), p.pass.Mutations)
		for _, r := range p.pass.Records {
			info(w, "%s", r)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n%s\n\n", bold("Before:"), report.Mount.HTML)
	fmt.Fprintf(w, "%s\n%s\n\n", bold("After:"), report.Update.HTML)
	fmt.Fprintf(w, "%s\n%s\n", bold("Diff:"), colorDiff(report.Mount.HTML, report.Update.HTML))

	for _, msg := range report.Alerts {
		fmt.Fprintln(w)
		success(w, "alert: %s", msg)
	}
	return nil
}

var (
	inserted = color.New(color.FgGreen, color.Underline).SprintFunc()
	deleted  = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// colorDiff returns a character diff of before and after. Without colors,
// insertions are wrapped in {+ +} and deletions in [- -].
func colorDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if color.NoColor {
				b.WriteString("{+" + d.Text + "+}")
			} else {
				b.WriteString(inserted(d.Text))
			}
		case diffmatchpatch.DiffDelete:
			if color.NoColor {
				b.WriteString("[-" + d.Text + "-]")
			} else {
				b.WriteString(deleted(d.Text))
			}
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
