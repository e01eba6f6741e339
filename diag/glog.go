//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package diag

import (
	"strings"

	"github.com/google/logger"
)

// GLog is a Sink backed by a google/logger logger. Messages starting
// with "ERROR" are logged at the error level.
type GLog struct {
	l *logger.Logger
}

// NewGLog creates a new sink for the logger l.
func NewGLog(l *logger.Logger) *GLog {
	return &GLog{
		l: l,
	}
}

// Emit implements Sink.Emit.
func (g *GLog) Emit(msg string) {
	msg = Truncate(msg)
	if strings.HasPrefix(msg, "ERROR") {
		g.l.Error(msg)
	} else {
		g.l.Info(msg)
	}
}
