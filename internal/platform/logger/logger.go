package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case Debug:
		return logrus.DebugLevel
	case Warn:
		return logrus.WarnLevel
	case Error:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// entryLogger adapta logrus a la interfaz Logger (campos como map, igual que antes).
type entryLogger struct {
	entry *logrus.Entry
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto es stdout; en tests se pasa un buffer o io.Discard.
	Output io.Writer
}

func New(opts Options) Logger {
	l := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)
	l.SetLevel(opts.Level.logrus())

	switch opts.Format {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{logrus.FieldKeyTime: "ts"},
		})
	default:
		// Keys ordenadas para salida estable (útil en tests/logs).
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
			FieldMap:      logrus.FieldMap{logrus.FieldKeyTime: "ts"},
		})
	}

	entry := logrus.NewEntry(l)
	if app := strings.TrimSpace(opts.App); app != "" {
		entry = entry.WithField("app", app)
	}
	return &entryLogger{entry: entry}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=vet-clinic (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo. Útil en tests y como default cuando no se inyecta logger.
func Nop() Logger {
	return New(Options{Output: io.Discard, Level: Error})
}

func (l *entryLogger) With(fields map[string]any) Logger {
	clean := cleanFields(fields)
	if len(clean) == 0 {
		return l
	}
	return &entryLogger{entry: l.entry.WithFields(clean)}
}

func (l *entryLogger) Debug(msg string, fields map[string]any) {
	l.entry.WithFields(cleanFields(fields)).Debug(msg)
}

func (l *entryLogger) Info(msg string, fields map[string]any) {
	l.entry.WithFields(cleanFields(fields)).Info(msg)
}

func (l *entryLogger) Warn(msg string, fields map[string]any) {
	l.entry.WithFields(cleanFields(fields)).Warn(msg)
}

func (l *entryLogger) Error(msg string, fields map[string]any) {
	l.entry.WithFields(cleanFields(fields)).Error(msg)
}

func cleanFields(fields map[string]any) logrus.Fields {
	out := logrus.Fields{}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		// logrus serializa error como string solo si va bajo "error"
		if err, ok := v.(error); ok && err != nil {
			v = err.Error()
		}
		out[k] = v
	}
	return out
}
