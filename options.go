package linelog

import (
	"io"
	"time"
)

type options struct {
	layers     []Config
	out        io.Writer
	color      *bool
	clock      func() time.Time
	projectDir string
	configFile string
	noProject  bool
}

// Option configures a Logger at construction.
type Option func(*options)

// WithConfig adds an explicit configuration layer. Explicit layers take
// priority over the project file; among options, later ones win.
func WithConfig(c Config) Option {
	return func(o *options) { o.layers = append(o.layers, c) }
}

// WithTag sets the group label printed in every line.
func WithTag(tag string) Option {
	return WithConfig(Config{Tag: String(tag)})
}

// WithInteractive makes every line after the first replace the previous one.
// Only meaningful on a terminal.
func WithInteractive(on bool) Option {
	return WithConfig(Config{Interactive: Bool(on)})
}

// WithUppercaseTag controls whether the tag is printed in upper case.
func WithUppercaseTag(on bool) Option {
	return WithConfig(Config{UppercaseTag: Bool(on)})
}

// WithDate controls the [DD.MM.YY] segment.
func WithDate(on bool) Option {
	return WithConfig(Config{Date: Bool(on)})
}

// WithTimestamp controls the [HH:mm:ss] segment.
func WithTimestamp(on bool) Option {
	return WithConfig(Config{Timestamp: Bool(on)})
}

// WithFilename controls the caller file segment.
func WithFilename(on bool) Option {
	return WithConfig(Config{Filename: Bool(on)})
}

// WithTagLength pads the tag segment to n columns plus its brackets.
func WithTagLength(n int) Option {
	return WithConfig(Config{SetTagLength: Int(n)})
}

// WithFileLength pads the file segment to n columns plus its brackets.
func WithFileLength(n int) Option {
	return WithConfig(Config{SetFileLength: Int(n)})
}

// WithKind adds a kind, or replaces the kind of the same name.
func WithKind(name string, k Kind) Option {
	return WithConfig(Config{Loggers: map[string]Kind{name: k}})
}

// WithOutput sets the stream lines are written to. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithColor forces escape sequences on or off. Without it, color is used
// when the output is a terminal and NO_COLOR is unset.
func WithColor(on bool) Option {
	return func(o *options) { o.color = Bool(on) }
}

// WithClock sets the time source for the date and time segments.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithProjectDir sets the directory searched for a project configuration
// file. Default: the working directory.
func WithProjectDir(dir string) Option {
	return func(o *options) { o.projectDir = dir }
}

// WithConfigFile reads the project layer from path instead of searching for
// one. Unlike a searched file, a missing path is an error.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithoutProjectFile skips the project configuration layer.
func WithoutProjectFile() Option {
	return func(o *options) { o.noProject = true }
}
