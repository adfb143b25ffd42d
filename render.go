package sq3

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// LineReader supplies one line of operator input at a time. It is used both
// for the main prompt and for the pager's continuation prompt.
// ReadLine returns io.EOF at end of input and ErrInterrupted when the
// operator cancels the current line.
// A prompt other than the session prompt belongs on the diagnostic stream.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// pager pauses tabular output every pageSize rows and asks the operator how
// to continue. Its state lives for one result set only.
type pager struct {
	input    LineReader
	pageSize int
	display  bool
}

// newPager creates a pager for one result set. A pageSize of zero or a nil
// input disables paging.
func newPager(input LineReader, pageSize int) *pager {
	if input == nil {
		pageSize = 0
	}
	return &pager{
		input:    input,
		pageSize: pageSize,
		display:  true,
	}
}

// pagerPrompt is shown after every full page
const pagerPrompt = "=== Row: %d ('enter' for next page, 'q' to quit, 'e' to disable paging) === "

// afterRow is called once row n (1-indexed) has been counted.
// On "q" or "Q" output stops but counting goes on; on "e" paging is turned off
// for the rest of the result set. Failing to read an answer acts like "q".
func (p *pager) afterRow(n int) {
	if p.pageSize <= 0 || n%p.pageSize != 0 {
		return
	}

	answer, err := p.input.ReadLine(fmt.Sprintf(pagerPrompt, n))
	if err != nil {
		p.display = false
		p.pageSize = 0
		return
	}

	switch strings.TrimSpace(answer) {
	case "q", "Q":
		p.display = false
		p.pageSize = 0
	case "e":
		p.pageSize = 0
	}
}

// textTable writes bordered, aligned rows and remembers the first write error
type textTable struct {
	w      io.Writer
	widths []int
	border string
	err    error
}

// newTextTable creates a table writer for the given column widths
func newTextTable(w io.Writer, widths []int) *textTable {
	var b strings.Builder
	for _, width := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", width+2))
	}
	b.WriteString("+\n")

	return &textTable{
		w:      w,
		widths: widths,
		border: b.String(),
	}
}

func (t *textTable) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}

func (t *textTable) writeBorder() {
	t.write(t.border)
}

func (t *textTable) writeHeader(h header) {
	var b strings.Builder
	for i, name := range h {
		fmt.Fprintf(&b, "| %-*s ", t.widths[i], name)
	}
	b.WriteString("|\n")
	t.write(b.String())
}

// writeRow writes one row; numbers are right aligned, everything else left aligned
func (t *textTable) writeRow(values []any) {
	var b strings.Builder
	for i, v := range values {
		width := 0
		if i < len(t.widths) {
			width = t.widths[i]
		}
		text := formatValue(v, nullDisplay)
		if isNumeric(v) {
			fmt.Fprintf(&b, "| %*s ", width, text)
		} else {
			fmt.Fprintf(&b, "| %-*s ", width, text)
		}
	}
	b.WriteString("|\n")
	t.write(b.String())
}

// renderTable writes cur as an aligned table and returns the number of rows
// iterated, whether they were displayed or suppressed by the pager.
//
// Column widths start at the header widths and grow to fit the first
// widthSampleRows rows only; later rows never widen the table.
func renderTable(w io.Writer, input LineReader, pageSize int, cur Cursor) (int, error) {
	h := header(cur.Columns())
	widths := make([]int, len(h))
	for i, name := range h {
		widths[i] = utf8.RuneCountInString(name)
	}

	buffered := make([][]any, 0, widthSampleRows)
	for len(buffered) < widthSampleRows && cur.Next() {
		values, err := cur.Values()
		if err != nil {
			return 0, err
		}
		for i, v := range values {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(formatValue(v, nullDisplay)))
			}
		}
		buffered = append(buffered, values)
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}

	table := newTextTable(w, widths)
	table.writeBorder()
	table.writeHeader(h)
	table.writeBorder()

	p := newPager(input, pageSize)
	count := 0
	emit := func(values []any) {
		if p.display {
			table.writeRow(values)
		}
		count++
		p.afterRow(count)
	}

	for _, values := range buffered {
		emit(values)
	}
	for cur.Next() {
		values, err := cur.Values()
		if err != nil {
			return count, err
		}
		emit(values)
	}
	if err := cur.Err(); err != nil {
		return count, err
	}

	table.writeBorder()
	return count, table.err
}
