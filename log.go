package snowflakeclient

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by a Client. It abstracts away the
// underlying logging mechanism; no implementation-specific logging details
// should be placed into this interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger is the logrus-backed Logger a Client falls back to when its
// Config does not supply one.
type DefaultLogger struct {
	inner *logrus.Logger
}

// NewDefaultLogger returns a new DefaultLogger writing text-formatted
// records to stderr. The default level is error.
func NewDefaultLogger() *DefaultLogger {
	inner := logrus.New()
	inner.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	inner.SetLevel(logrus.ErrorLevel)
	return &DefaultLogger{inner: inner}
}

// SetLogLevel updates the logging level. Levels are logrus level names such
// as "debug", "info", "warning" and "error".
func (l *DefaultLogger) SetLogLevel(level string) error {
	actual, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.inner.SetLevel(actual)
	return nil
}

// GetLogLevel returns the current logging level name.
func (l *DefaultLogger) GetLogLevel() string {
	return l.inner.GetLevel().String()
}

// SetOutput redirects log records to output.
func (l *DefaultLogger) SetOutput(output io.Writer) {
	l.inner.SetOutput(output)
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.inner.Debugf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.inner.Infof(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.inner.Warnf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.inner.Errorf(format, args...)
}

// secretMaskingLogger wraps a Logger and ensures all log messages have
// secrets masked before being passed to the inner logger.
type secretMaskingLogger struct {
	inner Logger
}

var _ Logger = (*secretMaskingLogger)(nil)

// wrapWithSecretMasking wraps inner with secret masking. Loggers supplied
// through Config are always wrapped, so custom implementations never see
// raw credential material.
func wrapWithSecretMasking(inner Logger) Logger {
	if _, ok := inner.(*secretMaskingLogger); ok {
		return inner
	}
	return &secretMaskingLogger{inner: inner}
}

func (l *secretMaskingLogger) Debugf(format string, args ...interface{}) {
	l.inner.Debugf("%s", maskSecrets(fmt.Sprintf(format, args...)))
}

func (l *secretMaskingLogger) Infof(format string, args ...interface{}) {
	l.inner.Infof("%s", maskSecrets(fmt.Sprintf(format, args...)))
}

func (l *secretMaskingLogger) Warnf(format string, args ...interface{}) {
	l.inner.Warnf("%s", maskSecrets(fmt.Sprintf(format, args...)))
}

func (l *secretMaskingLogger) Errorf(format string, args ...interface{}) {
	l.inner.Errorf("%s", maskSecrets(fmt.Sprintf(format, args...)))
}
