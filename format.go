package linelog

import (
	"strings"
	"time"
)

// Placeholder is replaced, in order, by the arguments of a log call.
const Placeholder = "%a"

// Date and time layouts of the prefix segments.
const (
	dateLayout = "02.01.06"
	timeLayout = "15:04:05"
)

// substitute replaces each placeholder in msg with the next argument styled
// in color. Missing arguments become empty strings; extra arguments are
// ignored.
func substitute(st styler, color, msg string, args []string) string {
	if !strings.Contains(msg, Placeholder) {
		return msg
	}
	var sb strings.Builder
	sb.Grow(len(msg))
	next := 0
	for {
		i := strings.Index(msg, Placeholder)
		if i < 0 {
			sb.WriteString(msg)
			break
		}
		sb.WriteString(msg[:i])
		if next < len(args) {
			sb.WriteString(st.color(color, args[next]))
			next++
		}
		msg = msg[i+len(Placeholder):]
	}
	return sb.String()
}

// line holds what varies between two calls of the same logger.
type line struct {
	now    time.Time
	caller string
	kind   string
	msg    string
	args   []string
}

// render composes one complete output line without the trailing newline.
func (s Settings) render(st styler, l line) string {
	k := s.Kinds[l.kind]

	var prefix strings.Builder
	if s.Date {
		prefix.WriteString("[" + l.now.Format(dateLayout) + "] ")
	}
	if s.Timestamp {
		prefix.WriteString("[" + l.now.Format(timeLayout) + "] ")
	}
	if s.Filename {
		prefix.WriteString(padField("["+l.caller+"] ", s.FileFieldWidth))
	}
	tag := s.Tag
	if s.UppercaseTag {
		tag = strings.ToUpper(tag)
	}
	prefix.WriteString(padField("["+tag+"]", s.TagFieldWidth))
	prefix.WriteString(" ")

	label := k.Tag
	if label == "" {
		label = l.kind
	}
	label = padField(strings.ToUpper(label), kindLabelWidth)

	return st.gray(prefix.String()) +
		st.bold(k.Color, label) +
		": " + substitute(st, k.Color, l.msg, l.args)
}
