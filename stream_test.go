package sq3

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteDelimited(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cursor  *sliceCursor
		want    string
		wantRow int
	}{
		{
			name: "header and rows",
			cursor: newSliceCursor([]string{"id", "name"},
				[]any{int64(1), "ab"},
				[]any{int64(2), "abcdefgh"},
			),
			want:    "id\tname\n1\tab\n2\tabcdefgh\n",
			wantRow: 2,
		},
		{
			name: "null is an empty field",
			cursor: newSliceCursor([]string{"a", "b", "c"},
				[]any{nil, 1.5, []byte("raw")},
			),
			want:    "a\tb\tc\n\t1.5\traw\n",
			wantRow: 1,
		},
		{
			name:    "no rows",
			cursor:  newSliceCursor([]string{"only"}),
			want:    "only\n",
			wantRow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := writeDelimited(&buf, tt.cursor)
			if err != nil {
				t.Fatalf("writeDelimited() error = %v", err)
			}
			if n != tt.wantRow {
				t.Errorf("writeDelimited() rows = %d, want %d", n, tt.wantRow)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("writeDelimited() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteDelimitedCursorError(t *testing.T) {
	t.Parallel()

	cur := newSliceCursor([]string{"id"}, []any{int64(1)})
	cur.err = errors.New("interrupted")

	if _, err := writeDelimited(&bytes.Buffer{}, cur); !errors.Is(err, cur.err) {
		t.Errorf("writeDelimited() error = %v, want %v", err, cur.err)
	}
}
