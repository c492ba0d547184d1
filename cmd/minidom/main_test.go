package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/minidom/internal/config"
	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/dom"
)

// run executes the CLI with args against an empty directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func ops(records []dom.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Op.String()
	}
	return out
}

func TestDemoJSON(t *testing.T) {
	out, err := run(t, "demo", "--output", "json", "--click")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}

	var report demoReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}

	if report.Mount.Mutations != len(report.Mount.Records) {
		t.Errorf("mount mutations = %d, records = %d", report.Mount.Mutations, len(report.Mount.Records))
	}
	want := []string{"RemoveListener", "AddListener", "Remove"}
	if diff := cmp.Diff(want, ops(report.Update.Records)); diff != "" {
		t.Errorf("update ops mismatch (-want +got):\n%s", diff)
	}
	if report.Update.Mutations != 3 {
		t.Errorf("update mutations = %d, want 3", report.Update.Mutations)
	}
	if !strings.Contains(report.Mount.HTML, "<h1>1</h1>") || strings.Contains(report.Update.HTML, "<h1>1</h1>") {
		t.Errorf("trailing heading not removed:\nbefore %s\nafter  %s", report.Mount.HTML, report.Update.HTML)
	}
	if diff := cmp.Diff([]string{"Hi"}, report.Alerts); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestDemoModifiedClick(t *testing.T) {
	out, err := run(t, "demo", "-s", "modified", "-o", "json", "--click")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	var report demoReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if diff := cmp.Diff([]string{"你好"}, report.Alerts); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(report.Update.HTML, `<h3 data-title="world">`) {
		t.Errorf("after = %s", report.Update.HTML)
	}
}

func TestDemoYAML(t *testing.T) {
	out, err := run(t, "demo", "--output", "yaml")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	for _, want := range []string{"scenario: update", "op: RemoveListener", "op: Remove"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoText(t *testing.T) {
	color.NoColor = true
	out, err := run(t, "demo")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	for _, want := range []string{"Update (3 mutations)", "RemoveListener", "Before:", "After:", "[-"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestColorDiff(t *testing.T) {
	color.NoColor = true
	got := colorDiff("<p>abc</p>", "<p>xyz</p>")
	if !strings.Contains(got, "[-abc-]") || !strings.Contains(got, "{+xyz+}") {
		t.Errorf("colorDiff = %q", got)
	}
	if got := colorDiff("same", "same"); got != "same" {
		t.Errorf("colorDiff(same) = %q", got)
	}
}

func TestDemoUnknownScenario(t *testing.T) {
	_, err := run(t, "demo", "--scenario", "nope")
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error = %v", err)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "toml"} {
		cmd := newRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"--dir", dir, "init", "--format", format})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init --format %s: %v", format, err)
		}
	}

	for _, name := range []string{config.JSONFileName, config.TOMLFileName} {
		cfg, err := config.LoadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		if cfg.Server.Port != config.DefaultPort {
			t.Errorf("%s port = %d, want %d", name, cfg.Server.Port, config.DefaultPort)
		}
	}

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--dir", dir, "init"})
	if err := cmd.Execute(); err == nil {
		t.Error("init over an existing file succeeded without --force")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(path, []byte(`{"demo": {"output": "yaml"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", path, "demo"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("demo error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "scenario: update") {
		t.Errorf("output does not follow config demo.output:\n%s", out.String())
	}

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "demo")
	if code := errors.CodeOf(err); code != "C001" {
		t.Errorf("CodeOf(err) = %q, want C001", code)
	}
	_, err = run(t, "--log-level", "loud", "demo")
	if code := errors.CodeOf(err); code != "C003" {
		t.Errorf("CodeOf(err) = %q, want C003", code)
	}
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", "r003")
	if err != nil {
		t.Fatalf("explain error: %v", err)
	}
	if !strings.Contains(out, "State update during a render pass") {
		t.Errorf("explain output:\n%s", out)
	}

	out, err = run(t, "explain")
	if err != nil {
		t.Fatalf("explain error: %v", err)
	}
	for _, code := range errors.Codes() {
		if !strings.Contains(out, code) {
			t.Errorf("listing missing %s", code)
		}
	}

	if _, err := run(t, "explain", "Z999"); err == nil {
		t.Error("explain Z999 succeeded")
	}
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestNewPlaygroundMetrics(t *testing.T) {
	cfg := config.New()
	g := &globals{cfg: cfg, logger: newLogger(io.Discard, cfg.Log)}
	if srv := newPlayground(cfg, g); srv == nil {
		t.Fatal("newPlayground returned nil")
	}
	cfg.Metrics.Enabled = false
	if srv := newPlayground(cfg, g); srv == nil {
		t.Fatal("newPlayground returned nil")
	}
}
