// Package logging holds the logger shared by the okdraw packages.
//
// Nothing is logged until a logger is installed with Set.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// silent is returned by Get while no logger is installed.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

// Set installs l for the parsers, the renderer and the surfaces.
// Passing nil makes them silent again. Set may be called while rendering.
func Set(l *slog.Logger) {
	current.Store(l)
}

// Get returns the installed logger, never nil.
func Get() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
