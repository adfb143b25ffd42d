package sq3

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nao1215/sq3/domain/model"
)

// Rendering constants
const (
	// widthSampleRows is how many leading rows are buffered to size table columns
	widthSampleRows = 100
	// nullDisplay is how NULL is shown in tabular output
	nullDisplay = "NULL"
	// timeLayout is the text layout for time values returned by the engine
	timeLayout = "2006-01-02 15:04:05.999999999-07:00"
	// tabDelimiter separates fields in tab-delimited output
	tabDelimiter = "\t"
)

// header is the column name sequence of a result set
type header = model.Header

// record is one result row as text
type record = model.Record

// Cursor is a forward-only result set, consumed exactly once.
// *engine.Rows implements it.
type Cursor interface {
	// Columns returns the result column names
	Columns() []string
	// Next advances to the next row
	Next() bool
	// Values returns the current row
	Values() ([]any, error)
	// Err returns the error that stopped iteration, if any
	Err() error
}

// formatValue converts a column value to its textual representation.
// NULL becomes null.
func formatValue(v any, null string) string {
	switch val := v.(type) {
	case nil:
		return null
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return val.Format(timeLayout)
	default:
		return fmt.Sprint(val)
	}
}

// isNumeric reports whether v is a number; numbers are right aligned in tables
func isNumeric(v any) bool {
	switch v.(type) {
	case int64, float64, int, int32:
		return true
	default:
		return false
	}
}

// newRecord converts a row to text using null for NULL values
func newRecord(values []any, null string) record {
	r := make(record, len(values))
	for i, v := range values {
		r[i] = formatValue(v, null)
	}
	return r
}
