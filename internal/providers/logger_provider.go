package providers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"likability/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeOps
	TypeAudit
)

var logFileNames = map[TypeEnum]string{
	TypeApp:   "app.log",
	TypeOps:   "ops.log",
	TypeAudit: "audit.log",
}

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type ZeroLogger struct {
	loggers map[TypeEnum]*zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0o755); err != nil {
		return nil, err
	}

	l := &ZeroLogger{
		loggers: make(map[TypeEnum]*zerolog.Logger),
	}

	for t, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			l.Close()
			return nil, err
		}
		l.files = append(l.files, file)

		var w io.Writer = file
		if conf.Debug {
			w = io.MultiWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
		l.loggers[t] = &logger
	}

	return l, nil
}

func (l *ZeroLogger) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Debug().Msgf(format, args...)
}

func (l *ZeroLogger) Infof(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Info().Msgf(format, args...)
}

func (l *ZeroLogger) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Warn().Msgf(format, args...)
}

func (l *ZeroLogger) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Error().Msgf(format, args...)
}

func (l *ZeroLogger) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Fatal().Msgf(format, args...)
}

func (l *ZeroLogger) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}
