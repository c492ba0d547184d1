// Package demo holds the virtual trees and components shown by the minidom
// CLI and the playground server.
//
// The scenario trees reproduce the classic two-step update: a container with
// a heading, a span, a button and a trailing heading, re-rendered without the
// trailing heading and with a new click handler. App is a small interactive
// application (a counter and a todo list) used by the playground.
package demo
