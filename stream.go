package sq3

import (
	"bufio"
	"io"
	"strings"
)

// writeDelimited writes cur to w as a header line of column names followed by
// one line per row, fields separated by a single tab. NULL is written as an
// empty field. No pagination applies. It returns the number of rows written.
func writeDelimited(w io.Writer, cur Cursor) (int, error) {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(cur.Columns(), tabDelimiter) + "\n"); err != nil {
		return 0, err
	}

	count := 0
	for cur.Next() {
		values, err := cur.Values()
		if err != nil {
			return count, err
		}
		line := strings.Join(newRecord(values, ""), tabDelimiter) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return count, err
		}
		count++
	}
	if err := cur.Err(); err != nil {
		return count, err
	}

	return count, bw.Flush()
}
