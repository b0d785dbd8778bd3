package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/gencache"
)

var _ gencache.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps a *logrus.Logger, tagging every line with component=gencache.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "gencache")}
}

func (l LogrusLogger) Debug(msg string, f gencache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f gencache.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f gencache.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f gencache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
