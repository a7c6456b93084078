package linelog

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrMalformedConfig   = errors.New("malformed config")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnknownKind       = errors.New("unknown kind")
	ErrWrite             = errors.New("write log line")
)

// LogFunc writes one line of a fixed kind.
type LogFunc func(msg string, args ...string) error

// Logger writes formatted lines for a fixed set of kinds. It is safe for
// concurrent use; lines are never interleaved.
type Logger struct {
	mu       sync.Mutex
	settings Settings
	style    styler
	out      *lineWriter
	clock    func() time.Time
	handlers map[string]LogFunc
}

// New resolves the configuration and returns a Logger. Layers apply in this
// order, later ones winning: defaults, the project file, then options.
func New(opts ...Option) (*Logger, error) {
	o := options{
		out:   os.Stdout,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.out == nil {
		o.out = os.Stdout
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	var layers []Config
	file, source, found, err := o.projectLayer()
	if err != nil {
		return nil, err
	}
	if found {
		if err := validateConfig(file, source); err != nil {
			return nil, err
		}
		layers = append(layers, file)
	}
	for _, c := range o.layers {
		if err := validateConfig(c, "options"); err != nil {
			return nil, err
		}
		layers = append(layers, c)
	}

	color := colorEnabled(o.out)
	if o.color != nil {
		color = *o.color
	}

	l := &Logger{
		settings: resolve(layers...),
		style:    styler{enabled: color},
		clock:    o.clock,
	}
	l.out = &lineWriter{w: o.out, interactive: l.settings.Interactive}
	l.handlers = make(map[string]LogFunc, len(l.settings.Kinds))
	for name := range l.settings.Kinds {
		l.handlers[name] = func(msg string, args ...string) error {
			return l.Log(name, msg, args...)
		}
	}
	return l, nil
}

func (o options) projectLayer() (cfg Config, source string, found bool, err error) {
	if o.configFile != "" {
		cfg, err = LoadConfigFile(o.configFile)
		return cfg, o.configFile, err == nil, err
	}
	if o.noProject {
		return Config{}, "", false, nil
	}
	dir := o.projectDir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return Config{}, "", false, fmt.Errorf("locate project dir: %w", err)
		}
	}
	return discoverConfig(dir)
}

// Log writes msg as a line of the named kind, replacing each "%a" in msg
// with the next argument.
func (l *Logger) Log(kind, msg string, args ...string) error {
	if _, ok := l.settings.Kinds[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	caller := ""
	if l.settings.Filename {
		caller = callerFile()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	text := l.settings.render(l.style, line{
		now:    l.clock(),
		caller: caller,
		kind:   kind,
		msg:    msg,
		args:   args,
	})
	return l.out.emit(text)
}

// Error writes a line of the "error" kind.
func (l *Logger) Error(msg string, args ...string) error {
	return l.Log(KindError, msg, args...)
}

// Debug writes a line of the "debug" kind.
func (l *Logger) Debug(msg string, args ...string) error {
	return l.Log(KindDebug, msg, args...)
}

// Success writes a line of the "success" kind.
func (l *Logger) Success(msg string, args ...string) error {
	return l.Log(KindSuccess, msg, args...)
}

// Warn writes a line of the "warn" kind.
func (l *Logger) Warn(msg string, args ...string) error {
	return l.Log(KindWarn, msg, args...)
}

// Kind returns the function writing lines of the named kind. Only kinds
// configured when the Logger was created exist.
func (l *Logger) Kind(name string) (LogFunc, error) {
	fn, ok := l.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return fn, nil
}

// HasKind reports whether name is a configured kind.
func (l *Logger) HasKind(name string) bool {
	_, ok := l.handlers[name]
	return ok
}

// Kinds returns the configured kind names, sorted.
func (l *Logger) Kinds() []string {
	return l.settings.kindNames()
}

// Settings returns a copy of the resolved configuration.
func (l *Logger) Settings() Settings {
	return l.settings.clone()
}
