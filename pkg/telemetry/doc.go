// Package telemetry exports render-pass statistics to Prometheus and builds
// the OpenTelemetry tracer used for pass spans.
//
// # Metrics
//
//	c := telemetry.NewCollector(telemetry.WithNamespace("myapp"))
//	engine := reconcile.New(doc, reconcile.WithObserver(c))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - minidom_render_passes_total: passes by trigger (render, setState)
//   - minidom_host_mutations_total: host mutations by operation
//   - minidom_render_pass_duration_seconds: pass duration by trigger
//   - minidom_render_errors_total: failed passes by trigger and error code
//   - minidom_active_sessions: open playground sessions
//   - minidom_websocket_errors_total: playground websocket errors by type
//
// # Tracing
//
//	engine := reconcile.New(doc, reconcile.WithTracer(telemetry.Tracer(true, "minidom")))
package telemetry
