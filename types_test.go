package sq3

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		null  string
		want  string
	}{
		{name: "null in tables", value: nil, null: nullDisplay, want: "NULL"},
		{name: "null in files", value: nil, null: "", want: ""},
		{name: "text", value: "hello", want: "hello"},
		{name: "blob", value: []byte("raw"), want: "raw"},
		{name: "integer", value: int64(-42), want: "-42"},
		{name: "real", value: 2.5, want: "2.5"},
		{name: "whole real", value: 3.0, want: "3"},
		{name: "large real", value: 1e21, want: "1e+21"},
		{name: "bool", value: true, want: "1"},
		{name: "time", value: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: "2024-01-02 03:04:05+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.value, tt.null))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, isNumeric(int64(1)))
	assert.True(t, isNumeric(1.5))
	assert.False(t, isNumeric("1"))
	assert.False(t, isNumeric(nil))
	assert.False(t, isNumeric([]byte("1")))
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	r := newRecord([]any{int64(1), nil, "x"}, nullDisplay)
	assert.True(t, r.Equal(record{"1", "NULL", "x"}))
}
