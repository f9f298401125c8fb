package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *Logger
	once sync.Once
)

type Logger struct {
	*logrus.Logger
}

type Entry struct {
	Logger
	entry *logrus.Entry
}

func (l *Logger) Warn(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Errorf(format, args...)
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	entry := l.Logger.WithField(key, value)
	return &Entry{*l, entry}
}

func (l *Logger) WithFields(fields logrus.Fields) *Entry {
	entry := l.Logger.WithFields(fields)
	return &Entry{*l, entry}
}

func (l *Logger) WithError(err error) *Entry {
	entry := l.Logger.WithError(err)
	return &Entry{*l, entry}
}

func warnFatal(args ...interface{}) {
	if failFast != "" {
		log.Fatal(args...)
	}
}

func warnFatalf(format string, args ...interface{}) {
	if failFast != "" {
		log.Fatalf(format, args...)
	}
}

var failFast string

// InitializeLogger sets up the package logger exactly once. Logging is
// disabled unless DEBUG_APPENV is set; WARNFAIL_APPENV promotes warnings
// and errors to fatal for use in CI.
func InitializeLogger() {
	once.Do(func() {
		log = &Logger{}
		log.Logger = logrus.New()
		// We do not want to log by default
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		if logLevel := os.Getenv("DEBUG_APPENV"); logLevel != "" {
			failFast = os.Getenv("WARNFAIL_APPENV")
			if failFast != "" {
				logLevel = "debug"
			}
			log.SetOutput(os.Stdout)
			switch strings.ToLower(logLevel) {
			case "debug":
				log.SetLevel(logrus.DebugLevel)
			case "warn":
				log.SetLevel(logrus.WarnLevel)
			case "error":
				log.SetLevel(logrus.ErrorLevel)
			default:
				log.SetLevel(logrus.DebugLevel)
			}
			log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
		}
	})
}

// GetLogger returns the initialized Logger
func GetLogger() *Logger {
	if log == nil {
		InitializeLogger()
	}
	return log
}

func init() {
	InitializeLogger()
}
