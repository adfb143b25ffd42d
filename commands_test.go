package sq3

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCommand(t *testing.T) {
	t.Parallel()

	t.Run("no argument reports without changing", func(t *testing.T) {
		t.Parallel()

		s, _, stderr := newTestSession(t, nil)
		interpretAll(t, s, ".mode", ".m")
		assert.Equal(t, ";;; Mode: tabular\n;;; Mode: tabular\n", stderr.String())
		assert.Equal(t, RenderModeTabular, s.Mode())
	})

	t.Run("def and csv round trip", func(t *testing.T) {
		t.Parallel()

		s, _, _ := newTestSession(t, nil)
		interpretAll(t, s, ".mode def", ".mode csv")
		assert.Equal(t, RenderModeTabDelimited, s.Mode())
		interpretAll(t, s, ".mode")
		assert.Equal(t, RenderModeTabDelimited, s.Mode())
		interpretAll(t, s, ".mode def")
		assert.Equal(t, RenderModeTabular, s.Mode())
	})

	t.Run("long names", func(t *testing.T) {
		t.Parallel()

		s, _, stderr := newTestSession(t, nil)
		interpretAll(t, s, ".mode tab-delimited", ".mode")
		assert.Equal(t, ";;; Mode: tab-delimited\n", stderr.String())
		interpretAll(t, s, ".m tabular")
		assert.Equal(t, RenderModeTabular, s.Mode())
	})

	t.Run("unknown mode is a usage error", func(t *testing.T) {
		t.Parallel()

		s, _, stderr := newTestSession(t, nil)
		interpretAll(t, s, ".mode csv", ".mode json")
		assert.Equal(t, ";;; Usage: .mode tabular|tab-delimited\n", stderr.String())
		assert.Equal(t, RenderModeTabDelimited, s.Mode())
	})
}

func TestPageCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lines      []string
		wantPage   int
		wantStderr string
	}{
		{name: "default is disabled", lines: []string{".page"}, wantPage: 0, wantStderr: ";;; Page: disabled\n"},
		{name: "set and report", lines: []string{".page 20", ".p"}, wantPage: 20, wantStderr: ";;; Page: 20 lines\n"},
		{name: "dash disables", lines: []string{".page 20", ".page -", ".page"}, wantPage: 0, wantStderr: ";;; Page: disabled\n"},
		{name: "zero disables", lines: []string{".page 20", ".page 0"}, wantPage: 0, wantStderr: ""},
		{name: "not a number", lines: []string{".page 5", ".page many"}, wantPage: 5, wantStderr: ";;; Usage: .page number-of-rows\n"},
		{name: "negative", lines: []string{".page -3"}, wantPage: 0, wantStderr: ";;; Usage: .page number-of-rows\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, stderr := newTestSession(t, nil)
			interpretAll(t, s, tt.lines...)
			assert.Equal(t, tt.wantPage, s.PageSize())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestOutCommand(t *testing.T) {
	t.Parallel()

	s, _, stderr := newTestSession(t, nil)

	interpretAll(t, s, ".out")
	assert.Equal(t, ";;; Outfile: none\n", stderr.String())

	stderr.Reset()
	interpretAll(t, s, ".out results.tsv", ".o")
	assert.Equal(t, ";;; Outfile set to results.tsv\n;;; Outfile: results.tsv\n", stderr.String())
	assert.Equal(t, "results.tsv", s.OutFile())

	stderr.Reset()
	interpretAll(t, s, ".out -")
	assert.Equal(t, ";;; Outfile: none\n", stderr.String())
	assert.Equal(t, "", s.OutFile())
}

func TestAliasCommand(t *testing.T) {
	t.Parallel()

	s, _, stderr := newTestSession(t, nil)

	interpretAll(t, s, ".alias")
	assert.Empty(t, stderr.String())

	interpretAll(t, s,
		".alias nrows select count(*) from {0}",
		".a first select * from {0} limit 1",
	)
	assert.Empty(t, stderr.String())

	interpretAll(t, s, ".alias")
	assert.Equal(t, "first = select * from {0} limit 1\nnrows = select count(*) from {0}\n", stderr.String())

	stderr.Reset()
	interpretAll(t, s, ".alias nrows", ".alias undefined")
	assert.Equal(t, "nrows = select count(*) from {0}\n", stderr.String())
}

func TestEchoCommand(t *testing.T) {
	t.Parallel()

	s, stdout, stderr := newTestSession(t, nil)
	interpretAll(t, s, ".echo   hello    world", ".e", ".echo done")
	assert.Equal(t, "hello world\n\ndone\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	s, stdout, stderr := newTestSession(t, nil)
	interpretAll(t, s, ".help")
	assert.Empty(t, stdout.String())
	assert.Equal(t, helpText, stderr.String())

	stderr.Reset()
	interpretAll(t, s, ".h")
	assert.True(t, strings.HasPrefix(stderr.String(), "Commands start with a dot (.)"))
}

func TestQuitCommand(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestSession(t, nil)
	for _, line := range []string{".q", ".quit", "  .quit  "} {
		quit, err := s.Interpret(context.Background(), line)
		require.NoError(t, err)
		assert.True(t, quit, line)
	}

	quit, err := s.Interpret(context.Background(), ".QUIT")
	require.NoError(t, err)
	assert.False(t, quit, "commands are case-sensitive")
}

func TestSilentCommands(t *testing.T) {
	t.Parallel()

	for _, line := range []string{".zzz", ".set", ".s histlen 10", ".set anything at all", ".", ".Mode"} {
		t.Run(line, func(t *testing.T) {
			t.Parallel()

			s, stdout, stderr := newTestSession(t, nil)
			quit, err := s.Interpret(context.Background(), line)
			require.NoError(t, err)
			assert.False(t, quit)
			assert.Empty(t, stdout.String())
			assert.Empty(t, stderr.String())
			assert.Equal(t, DefaultHistoryLength, s.HistoryLength())
		})
	}
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	err := &usageError{Usage: ".page number-of-rows"}
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Equal(t, "sq3: usage error: .page number-of-rows", err.Error())
}
