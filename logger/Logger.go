package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

type Logger struct {
	mu      sync.RWMutex
	base    *logrus.Logger
	fields  logrus.Fields
	console io.Writer
	props   *viper.Viper
}

// Properties mirrors logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
}

func New() *Logger {
	return &Logger{
		base:    logrus.New(),
		fields:  logrus.Fields{},
		console: os.Stdout,
	}
}

// NewWithBase wraps an existing logrus logger, mostly for tests.
func NewWithBase(base *logrus.Logger) *Logger {
	l := New()
	l.base = base
	l.console = nil
	return l
}

func defaultProperties() Properties {
	return Properties{
		LogFilename: "pong.log",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    false,
		Level:       "Info",
	}
}

func readLoggerProperties(v *viper.Viper, dir string) (Properties, error) {
	p := defaultProperties()
	v.SetDefault("logFilename", p.LogFilename)
	v.SetDefault("maxSize", p.MaxSize)
	v.SetDefault("maxBackups", p.MaxBackups)
	v.SetDefault("maxAge", p.MaxAge)
	v.SetDefault("compress", p.Compress)
	v.SetDefault("level", p.Level)

	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return p, fmt.Errorf("read logger config: %w", err)
		}
	}

	p.LogFilename = cast.ToString(v.Get("logFilename"))
	p.MaxSize = cast.ToInt(v.Get("maxSize"))
	p.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	p.MaxAge = cast.ToInt(v.Get("maxAge"))
	p.Compress = cast.ToBool(v.Get("compress"))
	p.Level = cast.ToString(v.Get("level"))

	if !filepath.IsAbs(p.LogFilename) {
		p.LogFilename = filepath.Join(dir, p.LogFilename)
	}
	return p, nil
}

// Init reads dir/logger.properties and points the logger at a rotating file.
func (l *Logger) Init(dir string) error {
	v := viper.New()
	p, err := readLoggerProperties(v, dir)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   p.LogFilename,
		MaxSize:    p.MaxSize,
		MaxBackups: p.MaxBackups,
		MaxAge:     p.MaxAge,
		Compress:   p.Compress,
	}

	l.mu.Lock()
	l.props = v
	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(loggerConfig)
	l.mu.Unlock()

	l.SetLevel(p.Level)
	return nil
}

// Watch re-applies the level whenever logger.properties changes on disk.
func (l *Logger) Watch() {
	l.mu.RLock()
	v := l.props
	l.mu.RUnlock()
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		level := cast.ToString(v.Get("level"))
		l.SetLevel(level)
		l.Info(fmt.Sprintf(LevelReloadedMsg, level, e.Name))
	})
	v.WatchConfig()
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) SetLevel(level string) {
	l.base.SetLevel(ParseLevel(level))
}

// SetConsole controls the stdout echo. The terminal UI turns it off while
// it owns the screen.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	l.console = w
	l.mu.Unlock()
}

// SetMatch tags every following entry with the match id.
func (l *Logger) SetMatch(id string) {
	l.mu.Lock()
	l.fields = logrus.Fields{"match": id}
	l.mu.Unlock()
}

func (l *Logger) entry() (*logrus.Entry, io.Writer) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.base.WithFields(l.fields), l.console
}

func (l *Logger) echo(w io.Writer, prefix, message string) {
	if w != nil {
		fmt.Fprintln(w, prefix, message)
	}
}

func (l *Logger) Info(message string) {
	e, w := l.entry()
	e.Info(message)
	l.echo(w, "Info:", message)
}

func (l *Logger) Error(message string) {
	e, w := l.entry()
	e.Error(message)
	l.echo(w, "Error:", message)
}

func (l *Logger) Debug(message string) {
	e, w := l.entry()
	e.Debug(message)
	l.echo(w, "Debug:", message)
}

func (l *Logger) Warn(message string) {
	e, w := l.entry()
	e.Warn(message)
	l.echo(w, "Warn:", message)
}

func (l *Logger) Fatal(message string) {
	e, w := l.entry()
	l.echo(w, "Fatal:", message)
	e.Fatal(message)
}
