package sq3

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceCursor is an in-memory Cursor
type sliceCursor struct {
	columns []string
	rows    [][]any
	pos     int
	err     error
}

func newSliceCursor(columns []string, rows ...[]any) *sliceCursor {
	return &sliceCursor{columns: columns, rows: rows}
}

func (c *sliceCursor) Columns() []string { return c.columns }

func (c *sliceCursor) Next() bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor) Values() ([]any, error) {
	return c.rows[c.pos-1], nil
}

func (c *sliceCursor) Err() error { return c.err }

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("columns widen to the longest value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cur := newSliceCursor([]string{"id", "name"},
			[]any{int64(1), "ab"},
			[]any{int64(2), "abcdefgh"},
		)

		n, err := renderTable(&buf, nil, 0, cur)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		want := "" +
			"+----+----------+\n" +
			"| id | name     |\n" +
			"+----+----------+\n" +
			"|  1 | ab       |\n" +
			"|  2 | abcdefgh |\n" +
			"+----+----------+\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("null and real values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cur := newSliceCursor([]string{"a", "b"},
			[]any{nil, 2.5},
			[]any{[]byte("xyz"), int64(10)},
		)

		_, err := renderTable(&buf, nil, 0, cur)
		require.NoError(t, err)

		want := "" +
			"+------+-----+\n" +
			"| a    | b   |\n" +
			"+------+-----+\n" +
			"| NULL | 2.5 |\n" +
			"| xyz  |  10 |\n" +
			"+------+-----+\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("rows after the sample do not widen columns", func(t *testing.T) {
		t.Parallel()

		rows := make([][]any, 0, widthSampleRows+1)
		for range widthSampleRows {
			rows = append(rows, []any{"a"})
		}
		rows = append(rows, []any{"abcdef"})

		var buf bytes.Buffer
		n, err := renderTable(&buf, nil, 0, newSliceCursor([]string{"v"}, rows...))
		require.NoError(t, err)
		assert.Equal(t, widthSampleRows+1, n)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Equal(t, "+---+", lines[0])
		assert.Equal(t, "+---+", lines[len(lines)-1])
		assert.Equal(t, "| abcdef |", lines[len(lines)-2])
	})

	t.Run("multibyte values are measured in characters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := renderTable(&buf, nil, 0, newSliceCursor([]string{"name"}, []any{"日本語テキスト"}))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "+---------+\n")
	})

	t.Run("empty result prints header only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := renderTable(&buf, nil, 0, newSliceCursor([]string{"id"}))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, "+----+\n| id |\n+----+\n+----+\n", buf.String())
	})

	t.Run("cursor error is returned", func(t *testing.T) {
		t.Parallel()

		cur := newSliceCursor([]string{"id"}, []any{int64(1)})
		cur.err = errors.New("disk I/O error")

		_, err := renderTable(&bytes.Buffer{}, nil, 0, cur)
		require.ErrorIs(t, err, cur.err)
	})
}

func TestPagerAfterRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answers     []string
		rows        int
		wantPrompts int
		wantShown   int
	}{
		{name: "continue", answers: []string{"", ""}, rows: 7, wantPrompts: 2, wantShown: 7},
		{name: "any text continues", answers: []string{"more", "x"}, rows: 7, wantPrompts: 2, wantShown: 7},
		{name: "quit", answers: []string{"q"}, rows: 7, wantPrompts: 1, wantShown: 3},
		{name: "quit at second page", answers: []string{"", "Q"}, rows: 7, wantPrompts: 2, wantShown: 6},
		{name: "disable", answers: []string{"e"}, rows: 7, wantPrompts: 1, wantShown: 7},
		{name: "exact multiple", answers: []string{"", ""}, rows: 6, wantPrompts: 2, wantShown: 6},
		{name: "short result", answers: nil, rows: 2, wantPrompts: 0, wantShown: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := newScriptedInput(tt.answers...)
			p := newPager(input, 3)

			shown := 0
			for n := 1; n <= tt.rows; n++ {
				if p.display {
					shown++
				}
				p.afterRow(n)
			}

			assert.Equal(t, tt.wantPrompts, input.pagerPrompts())
			assert.Equal(t, tt.wantShown, shown)
		})
	}
}

func TestNewPagerWithoutInput(t *testing.T) {
	t.Parallel()

	p := newPager(nil, 3)
	for n := 1; n <= 10; n++ {
		p.afterRow(n)
	}
	assert.True(t, p.display)
	assert.Equal(t, 0, p.pageSize)
}
