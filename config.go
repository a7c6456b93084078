package linelog

import (
	"maps"
	"slices"
)

// bracketWidth is reserved on top of a configured field length for the
// surrounding "[" and "]".
const bracketWidth = 2

// Default values applied before any configuration layer.
const (
	DefaultTag          = "MAIN"
	DefaultUppercaseTag = true
	DefaultDate         = false
	DefaultTimestamp    = true
	DefaultFilename     = true
	DefaultInteractive  = false
)

// Names of the kinds every logger has.
const (
	KindError   = "error"
	KindDebug   = "debug"
	KindSuccess = "success"
	KindWarn    = "warn"
)

// Kind describes one category of log line.
type Kind struct {
	// Tag is the label printed in the line. Empty falls back to the kind name.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	// Color names the color of the label and of substituted arguments.
	// Unknown names are accepted and render unstyled.
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// DefaultKinds returns the kinds every logger starts with.
func DefaultKinds() map[string]Kind {
	return map[string]Kind{
		KindError:   {Tag: KindError, Color: "red"},
		KindDebug:   {Tag: KindDebug, Color: "magenta"},
		KindSuccess: {Tag: KindSuccess, Color: "green"},
		KindWarn:    {Tag: KindWarn, Color: "yellow"},
	}
}

// Config is one partial configuration layer. A nil field leaves the value of
// the layer below untouched, so an explicit false or 0 is honored.
type Config struct {
	Tag           *string         `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	Interactive   *bool           `json:"interactive,omitempty" yaml:"interactive,omitempty" toml:"interactive,omitempty"`
	UppercaseTag  *bool           `json:"uppercaseTag,omitempty" yaml:"uppercaseTag,omitempty" toml:"uppercaseTag,omitempty"`
	Date          *bool           `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	Timestamp     *bool           `json:"timestamp,omitempty" yaml:"timestamp,omitempty" toml:"timestamp,omitempty"`
	Filename      *bool           `json:"filename,omitempty" yaml:"filename,omitempty" toml:"filename,omitempty"`
	SetTagLength  *int            `json:"setTagLength,omitempty" yaml:"setTagLength,omitempty" toml:"setTagLength,omitempty" validate:"omitempty,gte=0"`
	SetFileLength *int            `json:"setFileLength,omitempty" yaml:"setFileLength,omitempty" toml:"setFileLength,omitempty" validate:"omitempty,gte=0"`
	Loggers       map[string]Kind `json:"loggers,omitempty" yaml:"loggers,omitempty" toml:"loggers,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
}

// String returns a pointer to v, for building Config literals.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building Config literals.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building Config literals.
func Int(v int) *int { return &v }

// Settings is a fully resolved configuration.
type Settings struct {
	Tag          string
	UppercaseTag bool
	Date         bool
	Timestamp    bool
	Filename     bool
	Interactive  bool
	// TagFieldWidth and FileFieldWidth include the two bracket columns.
	// Zero means no padding.
	TagFieldWidth  int
	FileFieldWidth int
	Kinds          map[string]Kind
}

func defaultSettings() Settings {
	return Settings{
		Tag:          DefaultTag,
		UppercaseTag: DefaultUppercaseTag,
		Date:         DefaultDate,
		Timestamp:    DefaultTimestamp,
		Filename:     DefaultFilename,
		Interactive:  DefaultInteractive,
		Kinds:        DefaultKinds(),
	}
}

// resolve applies layers over the defaults, lowest priority first.
func resolve(layers ...Config) Settings {
	s := defaultSettings()
	for _, layer := range layers {
		s.apply(layer)
	}
	return s
}

func (s *Settings) apply(c Config) {
	if c.Tag != nil && *c.Tag != "" {
		s.Tag = *c.Tag
	}
	setBool(&s.Interactive, c.Interactive)
	setBool(&s.UppercaseTag, c.UppercaseTag)
	setBool(&s.Date, c.Date)
	setBool(&s.Timestamp, c.Timestamp)
	setBool(&s.Filename, c.Filename)
	if c.SetTagLength != nil {
		s.TagFieldWidth = *c.SetTagLength + bracketWidth
	}
	if c.SetFileLength != nil {
		s.FileFieldWidth = *c.SetFileLength + bracketWidth
	}
	maps.Copy(s.Kinds, c.Loggers)
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Config returns a layer that resolves back to s when applied over the
// defaults. It is what WriteConfig should be given to persist a setup.
func (s Settings) Config() Config {
	c := Config{
		Tag:          String(s.Tag),
		Interactive:  Bool(s.Interactive),
		UppercaseTag: Bool(s.UppercaseTag),
		Date:         Bool(s.Date),
		Timestamp:    Bool(s.Timestamp),
		Filename:     Bool(s.Filename),
		Loggers:      maps.Clone(s.Kinds),
	}
	if s.TagFieldWidth > 0 {
		c.SetTagLength = Int(s.TagFieldWidth - bracketWidth)
	}
	if s.FileFieldWidth > 0 {
		c.SetFileLength = Int(s.FileFieldWidth - bracketWidth)
	}
	return c
}

func (s Settings) clone() Settings {
	s.Kinds = maps.Clone(s.Kinds)
	return s
}

// kindNames returns the configured kind names in sorted order.
func (s Settings) kindNames() []string {
	return slices.Sorted(maps.Keys(s.Kinds))
}
