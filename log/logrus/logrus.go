package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/rmanyari/beam/log"
)

// Logger adapts a logrus.Entry to the module's log.Logger.
type Logger struct{ E *logrus.Entry }

var _ log.Logger = Logger{}

func (l Logger) Debug(msg string, f log.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f log.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f log.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f log.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
