package audit

import (
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barberpro/internal/logging"
)

// Sink receives dispatched events.
type Sink interface {
	Log(ev Event) error
}

// Logger writes audit events as structured log lines.
type Logger struct {
	log zerolog.Logger
}

func New() *Logger {
	return &Logger{log: logging.Component(logging.ComponentAudit)}
}

func NewWithLogger(l zerolog.Logger) *Logger {
	return &Logger{log: l}
}

func (l *Logger) Log(ev Event) error {
	e := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity)

	if ev.EntityID != "" {
		e = e.Str("entity_id", ev.EntityID)
	}
	if ev.Actor != "" {
		e = e.Str("actor", ev.Actor)
	}
	if len(ev.Metadata) > 0 {
		e = e.Fields(ev.Metadata)
	}

	e.Msg("audit")
	return nil
}
