// Package playground serves the demo application over HTTP.
//
// Every websocket connection gets its own Session: an in-memory document, a
// reconcile.Engine and the mounted application. The browser sends events
// addressed by node ID and receives the mutations they caused together with
// the re-serialized tree:
//
//	-> {"node": 7, "event": "click"}
//	<- {"type": "patch", "ops": [{"op": "SetText", "node": 9, "value": "1"}], "html": "..."}
//
// The server also exposes Prometheus metrics and a health check.
package playground
