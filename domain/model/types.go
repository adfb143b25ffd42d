// Package model provides domain model for sq3
package model

import "fmt"

// Header is the column name sequence of a result set.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record is one result row converted to text.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// ColumnType represents the SQL storage class observed for a result column
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
	// ColumnTypeBlob represents BLOB column type
	ColumnTypeBlob
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
	sqlTypeBlob    = "BLOB"
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeText:
		return sqlTypeText
	case ColumnTypeInteger:
		return sqlTypeInteger
	case ColumnTypeReal:
		return sqlTypeReal
	case ColumnTypeBlob:
		return sqlTypeBlob
	default:
		return sqlTypeText
	}
}

// ColumnInfo represents column information with name and inferred type
type ColumnInfo struct {
	Name string
	Type ColumnType
}

// RenderMode selects how query results are shown on the terminal.
type RenderMode int

const (
	// RenderModeTabular renders an aligned, bordered table (the default)
	RenderModeTabular RenderMode = iota
	// RenderModeTabDelimited renders a header line and tab separated rows
	RenderModeTabDelimited
)

// String returns the canonical name of the mode.
func (m RenderMode) String() string {
	switch m {
	case RenderModeTabular:
		return "tabular"
	case RenderModeTabDelimited:
		return "tab-delimited"
	default:
		return "tabular"
	}
}

// ParseRenderMode accepts the canonical mode names and their short forms
// "def" and "csv".
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "tabular", "def":
		return RenderModeTabular, nil
	case "tab-delimited", "csv":
		return RenderModeTabDelimited, nil
	default:
		return RenderModeTabular, fmt.Errorf("%w: %q", ErrUnknownRenderMode, s)
	}
}
