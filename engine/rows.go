package engine

import "database/sql"

// Rows is a forward-only cursor over a query result.
// It is only valid inside the RowHandler it was passed to.
type Rows struct {
	rows    *sql.Rows
	columns []string
	values  []any
	ptrs    []any
}

// newRows wraps rows, preparing scan destinations for every column
func newRows(rows *sql.Rows, columns []string) *Rows {
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	return &Rows{
		rows:    rows,
		columns: columns,
		values:  values,
		ptrs:    ptrs,
	}
}

// Columns returns the result column names.
func (r *Rows) Columns() []string {
	return r.columns
}

// Next advances to the next row.
func (r *Rows) Next() bool {
	return r.rows.Next()
}

// Values returns the current row. The values are the driver's native
// types: int64, float64, string, []byte, time.Time or nil. The returned
// slice is owned by the caller.
func (r *Rows) Values() ([]any, error) {
	if err := r.rows.Scan(r.ptrs...); err != nil {
		return nil, err
	}
	row := make([]any, len(r.values))
	for i, v := range r.values {
		if b, ok := v.([]byte); ok {
			v = append([]byte(nil), b...)
		}
		row[i] = v
	}
	return row, nil
}

// Err returns the error, if any, that was encountered during iteration.
func (r *Rows) Err() error {
	return r.rows.Err()
}
