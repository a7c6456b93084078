package linelog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestPadFieldWideChars(t *testing.T) {
	t.Parallel()
	// "你好" occupies four columns, not two.
	assert.Equal(t, "[你好]  ", padField("[你好]", 8))
}

func TestPadFieldNoWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[MAIN]", padField("[MAIN]", 0))
}

func TestPadFieldTooNarrow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[SCHEDULER]", padField("[SCHEDULER]", 4))
}

func TestSubstituteDisabledStyle(t *testing.T) {
	t.Parallel()
	got := substitute(styler{}, "green", "%a and %a", []string{"x"})
	assert.Equal(t, "x and ", got)
}

func TestSubstituteStyled(t *testing.T) {
	t.Parallel()
	got := substitute(styler{enabled: true}, "cyan", "id=%a", []string{"7"})
	assert.Equal(t, "id=\033[36m7\033[0m", got)
}

func TestStylerSkipsEmptyText(t *testing.T) {
	t.Parallel()
	st := styler{enabled: true}
	assert.Equal(t, "", st.color("red", ""))
	assert.Equal(t, "", st.bold("red", ""))
}

func TestLineWriterStates(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lw := &lineWriter{w: &buf, interactive: true}

	assert.False(t, lw.written)
	require.NoError(t, lw.emit("one"))
	assert.True(t, lw.written)
	require.NoError(t, lw.emit("two"))
	assert.Equal(t, "one\n"+cursorUp+clearLine+cursorStart+"two\n", buf.String())
}

func TestLineWriterErrorKeepsState(t *testing.T) {
	t.Parallel()
	lw := &lineWriter{w: &errWriterInternal{}, interactive: true}

	err := lw.emit("x")
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, errInternalWrite)
	assert.False(t, lw.written)
}

func TestResolveMergesKindsAdditively(t *testing.T) {
	t.Parallel()
	s := resolve(
		Config{Loggers: map[string]Kind{"info": {Tag: "info", Color: "cyan"}}},
		Config{Loggers: map[string]Kind{"warn": {Tag: "caution", Color: "yellow"}}},
		Config{Loggers: map[string]Kind{"info": {Tag: "note", Color: "blue"}}},
	)
	assert.Len(t, s.Kinds, 5)
	assert.Equal(t, Kind{Tag: "note", Color: "blue"}, s.Kinds["info"])
	assert.Equal(t, Kind{Tag: "caution", Color: "yellow"}, s.Kinds["warn"])
	assert.Equal(t, Kind{Tag: "error", Color: "red"}, s.Kinds["error"])
}

func TestResolveNilFieldsFallThrough(t *testing.T) {
	t.Parallel()
	s := resolve(
		Config{Tag: String("file"), Date: Bool(true), SetTagLength: Int(3)},
		Config{Timestamp: Bool(false)},
	)
	assert.Equal(t, "file", s.Tag)
	assert.True(t, s.Date)
	assert.False(t, s.Timestamp)
	assert.Equal(t, 5, s.TagFieldWidth)
	assert.Equal(t, 0, s.FileFieldWidth)
}

func TestResolveDoesNotShareDefaults(t *testing.T) {
	t.Parallel()
	a := resolve(Config{Loggers: map[string]Kind{"x": {Color: "red"}}})
	b := resolve()
	assert.Contains(t, a.Kinds, "x")
	assert.NotContains(t, b.Kinds, "x")
}

func TestSettingsConfigRoundTrip(t *testing.T) {
	t.Parallel()
	want := resolve(Config{
		Tag:           String("svc"),
		Interactive:   Bool(true),
		SetFileLength: Int(9),
		Loggers:       map[string]Kind{"info": {Tag: "info", Color: "cyan"}},
	})
	assert.Equal(t, want, resolve(want.Config()))
	assert.Nil(t, want.Config().SetTagLength)
}

func TestCallerFileSkipsPackageFrames(t *testing.T) {
	t.Parallel()
	// Test functions of this package are skipped too, so the first outside
	// frame belongs to the testing package.
	assert.Equal(t, "testing.go", callerFile())
}

func TestPkgPrefix(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "github.com/bjaus/linelog.", pkgPrefix)
	assert.True(t, inPackage("github.com/bjaus/linelog.(*Logger).Log"))
	assert.False(t, inPackage("github.com/bjaus/linelog_test.TestDefaultPrefix"))
}

func TestColorEnabledNonTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	var buf bytes.Buffer
	assert.False(t, colorEnabled(&buf))
}

func TestColorEnvironment(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("FORCE_COLOR", "1")
	t.Setenv("NO_COLOR", "")
	assert.True(t, colorEnabled(&buf))

	t.Setenv("FORCE_COLOR", "0")
	assert.False(t, colorEnabled(&buf))

	t.Setenv("FORCE_COLOR", "1")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(&buf))
}
