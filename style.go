package linelog

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	sgrReset = "\033[0m"
	sgrBold  = "\033[1m"
)

var foreground = map[string]string{
	"black":         "\033[30m",
	"red":           "\033[31m",
	"green":         "\033[32m",
	"yellow":        "\033[33m",
	"blue":          "\033[34m",
	"magenta":       "\033[35m",
	"cyan":          "\033[36m",
	"white":         "\033[37m",
	"gray":          "\033[90m",
	"grey":          "\033[90m",
	"blackbright":   "\033[90m",
	"redbright":     "\033[91m",
	"greenbright":   "\033[92m",
	"yellowbright":  "\033[93m",
	"bluebright":    "\033[94m",
	"magentabright": "\033[95m",
	"cyanbright":    "\033[96m",
	"whitebright":   "\033[97m",
}

// KnownColor reports whether name maps to a terminal color. Names are matched
// case-insensitively, so "redBright" and "redbright" are the same color.
// Unknown names are still accepted by a Kind; they render unstyled.
func KnownColor(name string) bool {
	_, ok := foreground[strings.ToLower(name)]
	return ok
}

// styler wraps text in ANSI SGR sequences. The zero value renders plain text.
type styler struct {
	enabled bool
}

func (s styler) color(name, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	code, ok := foreground[strings.ToLower(name)]
	if !ok {
		return text
	}
	return code + text + sgrReset
}

func (s styler) bold(name, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	code := foreground[strings.ToLower(name)]
	return sgrBold + code + text + sgrReset
}

func (s styler) gray(text string) string {
	return s.color("gray", text)
}

// colorEnabled decides whether output to w gets escape sequences when the
// caller did not force a choice. NO_COLOR wins over FORCE_COLOR; otherwise
// only terminals are colored.
func colorEnabled(w io.Writer) bool {
	if v := os.Getenv("NO_COLOR"); v != "" {
		return false
	}
	if v := os.Getenv("FORCE_COLOR"); v != "" {
		return v != "0" && !strings.EqualFold(v, "false")
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
