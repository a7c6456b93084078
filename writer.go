package linelog

import (
	"fmt"
	"io"
)

// Terminal control sequences used to replace the previous line.
const (
	cursorUp    = "\033[1A"
	clearLine   = "\033[2K"
	cursorStart = "\033[1G"
)

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// lineWriter emits complete lines. In interactive mode every line after the
// first replaces the one before it.
type lineWriter struct {
	w           io.Writer
	interactive bool
	written     bool
}

func (lw *lineWriter) emit(line string) error {
	buf := make([]byte, 0, len(cursorUp)+len(clearLine)+len(cursorStart)+len(line)+1)
	if lw.interactive && lw.written {
		buf = append(buf, cursorUp...)
		buf = append(buf, clearLine...)
		buf = append(buf, cursorStart...)
	}
	buf = append(buf, line...)
	buf = append(buf, '\n')

	if _, err := lw.w.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if f, ok := lw.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	lw.written = true
	return nil
}
